package model

// CostConfig holds the pricing constants for one estimation run. It is
// passed into the pipeline at invocation time; the core keeps no global
// pricing state.
type CostConfig struct {
	MaterialCostPerArea float64 `json:"material_cost_per_area"` // currency per square unit of stock
	NominalLaserSpeed   float64 `json:"nominal_laser_speed"`    // cut length per second on straight cuts
	TimeUnitCost        float64 `json:"time_unit_cost"`         // currency per second of cutting
	PaddingMargin       float64 `json:"padding_margin"`         // additive margin on both rectangle dimensions
}

// DefaultCostConfig returns the stock pricing constants.
func DefaultCostConfig() CostConfig {
	return CostConfig{
		MaterialCostPerArea: 0.75,
		NominalLaserSpeed:   0.5,
		TimeUnitCost:        0.07,
		PaddingMargin:       0.1,
	}
}
