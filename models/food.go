package models

// FoodItem is one search hit from the FoodData Central API.
// BrandOwner is never populated by the search decode and stays empty.
type FoodItem struct {
	FdcID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	BrandOwner    string         `json:"brandOwner"`
	FoodNutrients []FoodNutrient `json:"foodNutrients"`
}

type FoodNutrient struct {
	NutrientID     int64   `json:"nutrientId"`
	NutrientName   string  `json:"nutrientName"`
	NutrientNumber string  `json:"nutrientNumber"`
	UnitName       string  `json:"unitName"`
	Value          float64 `json:"value"`
}

// DisplayNutrients filters out trace nutrients (value below 1) for rendering.
// The item itself keeps every nutrient as received.
func (f FoodItem) DisplayNutrients() []FoodNutrient {
	out := make([]FoodNutrient, 0, len(f.FoodNutrients))
	for _, n := range f.FoodNutrients {
		if n.Value >= 1 {
			out = append(out, n)
		}
	}
	return out
}
