package dto

type PlanTourRequest struct {
	// UseStored plans over the persisted location set instead of
	// fetching from the configured source.
	UseStored bool `json:"use_stored"`
	// Closed appends the return leg to the starting location.
	Closed bool `json:"closed"`
}

type TourLegResponse struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Miles float64 `json:"miles"`
}

type MatrixStatsResponse struct {
	Pairs int     `json:"pairs"`
	Min   float64 `json:"min_miles"`
	Max   float64 `json:"max_miles"`
	Mean  float64 `json:"mean_miles"`
}

type TourResponse struct {
	TourID     string              `json:"tour_id"`
	Closed     bool                `json:"closed"`
	Order      []string            `json:"order"`
	Legs       []TourLegResponse   `json:"legs"`
	TotalMiles float64             `json:"total_miles"`
	Stats      MatrixStatsResponse `json:"stats"`
}
