package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateReelMeta = "reel metadata generated successfully"
	MessageFailedGenerateReelMeta  = "failed to generate reel metadata"

	ErrFoodTypeRequired       = errors.New("item name is required")
	ErrGeminiProcessingFailed = errors.New("gemini processing failed")
)

type (
	GenerateReelMetaRequest struct {
		FoodType  string `json:"foodType" validate:"required"`
		ExtraHint string `json:"extraHint" validate:"omitempty,max=200"`
	}

	// ReelMeta is the parsed form of the generator's two-line
	// "Title: ... / Description: ..." output. When a line is missing the
	// corresponding field falls back to the caller's input.
	ReelMeta struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	GenerateReelMetaResponse struct {
		Content string   `json:"content"`
		Meta    ReelMeta `json:"meta"`
	}
)
