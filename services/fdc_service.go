package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"nutrifind/config"
	"nutrifind/models"
)

// FDCService calls the USDA FoodData Central search endpoint.
type FDCService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewFDCService(cfg *config.Config, logger *zap.Logger) *FDCService {
	return &FDCService{
		baseURL: cfg.FDCBaseURL,
		apiKey:  cfg.FDCAPIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// foodSearchResponse is the wire shape of a search reply. brandOwner is
// deliberately not decoded, so FoodItem.BrandOwner always stays empty.
type foodSearchResponse struct {
	Foods []struct {
		FdcID         int64                 `json:"fdcId"`
		Description   string                `json:"description"`
		FoodNutrients []models.FoodNutrient `json:"foodNutrients"`
	} `json:"foods"`
}

// SearchFoods issues exactly one request per call: no retry, no rate limit.
func (s *FDCService) SearchFoods(ctx context.Context, query string) ([]models.FoodItem, error) {
	foodSearchesTotal.Inc()

	u := fmt.Sprintf("%s/v1/foods/search?query=%s&api_key=%s",
		s.baseURL, url.QueryEscape(query), url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		foodSearchErrorsTotal.Inc()
		return nil, &NetworkError{Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		foodSearchErrorsTotal.Inc()
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		foodSearchErrorsTotal.Inc()
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		foodSearchErrorsTotal.Inc()
		return nil, &NetworkError{Err: fmt.Errorf("food search API error %d: %s", resp.StatusCode, string(body))}
	}

	var fr foodSearchResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		foodSearchErrorsTotal.Inc()
		return nil, &DecodeError{Err: err}
	}

	results := make([]models.FoodItem, 0, len(fr.Foods))
	for _, f := range fr.Foods {
		results = append(results, models.FoodItem{
			FdcID:         f.FdcID,
			Description:   f.Description,
			FoodNutrients: f.FoodNutrients,
		})
	}
	s.logger.Debug("food search completed",
		zap.String("query", query), zap.Int("count", len(results)))
	return results, nil
}
