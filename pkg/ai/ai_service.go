package ai

import (
	"context"
	"fmt"
	"strings"

	"Reel-Food-Backend/domain"
)

const reelMetaPromptTemplate = `Generate a catchy and short title and a short appetizing description for a food reel.
Food name: %s
Additional details: %s
Rules:
Title must be under 10 words
Description must be max 20 words
Do not exceed the word limit
Make it engaging, tasty, and social-media friendly
Do not use emojis
Output format strictly as:
Title: <title text>
Description: <description text>`

type (
	AIService interface {
		GenerateReelMeta(ctx context.Context, req domain.GenerateReelMetaRequest) (domain.GenerateReelMetaResponse, error)
	}

	aiService struct {
		generator TextGenerator
	}
)

func NewAIService(generator TextGenerator) AIService {
	return &aiService{generator: generator}
}

func (s *aiService) GenerateReelMeta(ctx context.Context, req domain.GenerateReelMetaRequest) (domain.GenerateReelMetaResponse, error) {
	if strings.TrimSpace(req.FoodType) == "" {
		return domain.GenerateReelMetaResponse{}, domain.ErrFoodTypeRequired
	}

	hint := req.ExtraHint
	if hint == "" {
		hint = "No additional details"
	}

	prompt := fmt.Sprintf(reelMetaPromptTemplate, req.FoodType, hint)

	content, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return domain.GenerateReelMetaResponse{}, err
	}

	return domain.GenerateReelMetaResponse{
		Content: content,
		Meta:    ParseReelMeta(content, req.FoodType),
	}, nil
}

// ParseReelMeta extracts the "Title:" and "Description:" lines from the
// generator output. A missing title degrades silently to the input food
// name instead of failing the request.
func ParseReelMeta(content string, fallbackName string) domain.ReelMeta {
	meta := domain.ReelMeta{}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Title:"):
			if meta.Title == "" {
				meta.Title = strings.TrimSpace(strings.TrimPrefix(line, "Title:"))
			}
		case strings.HasPrefix(line, "Description:"):
			if meta.Description == "" {
				meta.Description = strings.TrimSpace(strings.TrimPrefix(line, "Description:"))
			}
		}
	}

	if meta.Title == "" {
		meta.Title = fallbackName
	}
	return meta
}
