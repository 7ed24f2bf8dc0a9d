package migration

import (
	"fmt"
	"log"

	"Reel-Food-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodPartner{}); err != nil {
		log.Fatalf("Error migrating food partner database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodItem{}); err != nil {
		log.Fatalf("Error migrating food item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodLike{}); err != nil {
		log.Fatalf("Error migrating food like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodSave{}); err != nil {
		log.Fatalf("Error migrating food save database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
