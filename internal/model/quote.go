package model

import (
	"fmt"

	"github.com/google/uuid"
)

// RegionEstimate describes the stock rectangle priced for one closed
// profile of the schema. Width and Height already include the padding
// margin on both dimensions.
type RegionEstimate struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Area   float64 `json:"area"`
}

// Quote is the priced result for one schema.
type Quote struct {
	ID           string           `json:"id"`
	Schema       string           `json:"schema"`
	CutCost      float64          `json:"cut_cost"`
	MaterialCost float64          `json:"material_cost"`
	Regions      []RegionEstimate `json:"regions"`
	Total        float64          `json:"total"`
}

// NewQuote creates an empty quote for the named schema.
func NewQuote(schema string) Quote {
	return Quote{
		ID:     uuid.New().String()[:8],
		Schema: schema,
	}
}

// FormatPrice renders the total as a currency string with two decimals.
// Internal arithmetic stays full precision; rounding happens only here.
func (q Quote) FormatPrice() string {
	return fmt.Sprintf("$%.2f", q.Total)
}
