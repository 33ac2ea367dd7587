package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"nutrifind/models"
)

// FoodFinder is the search surface handlers need. FoodService satisfies it.
type FoodFinder interface {
	Search(ctx context.Context, query string) ([]models.FoodItem, error)
	Recognize(ctx context.Context, base64Img string) ([]models.FoodItem, error)
}

type FoodController struct {
	Foods FoodFinder
}

func NewFoodController(foods FoodFinder) *FoodController {
	return &FoodController{Foods: foods}
}

// FoodResponse is the display shape of a search hit: nutrients are filtered
// to the ones worth rendering, the item itself keeps them all.
type FoodResponse struct {
	FdcID       int64                 `json:"fdcId"`
	Description string                `json:"description"`
	BrandOwner  string                `json:"brandOwner"`
	Nutrients   []models.FoodNutrient `json:"nutrients"`
}

func ToFoodResponses(items []models.FoodItem) []FoodResponse {
	out := make([]FoodResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FoodResponse{
			FdcID:       it.FdcID,
			Description: it.Description,
			BrandOwner:  it.BrandOwner,
			Nutrients:   it.DisplayNutrients(),
		})
	}
	return out
}

// GET /food/search?q=apple
func (fc *FoodController) SearchFoods(c *gin.Context) {
	out, err := fc.Foods.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ToFoodResponses(out))
}

// POST /food/recognize  { "image_base64": "data:…"}
func (fc *FoodController) RecognizeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	out, err := fc.Foods.Recognize(c.Request.Context(), req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ToFoodResponses(out))
}
