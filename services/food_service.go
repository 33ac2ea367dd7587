package services

import (
	"context"
	"fmt"

	"nutrifind/models"
)

// LabelDetector turns an image into candidate food labels. RekognitionService
// satisfies it; tests substitute fakes.
type LabelDetector interface {
	RecognizeLabels(ctx context.Context, base64Img string) ([]string, error)
}

// FoodService orchestrates text and photo search.
type FoodService struct {
	searcher FoodSearcher
	detector LabelDetector
}

func NewFoodService(searcher FoodSearcher, detector LabelDetector) *FoodService {
	return &FoodService{searcher: searcher, detector: detector}
}

func (s *FoodService) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
	return s.searcher.SearchFoods(ctx, query)
}

// Recognize searches by photo: the top detected label becomes the query.
func (s *FoodService) Recognize(ctx context.Context, base64Img string) ([]models.FoodItem, error) {
	if s.detector == nil {
		return nil, fmt.Errorf("photo recognition is not configured")
	}
	labels, err := s.detector.RecognizeLabels(ctx, base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels detected")
	}
	return s.searcher.SearchFoods(ctx, labels[0])
}
