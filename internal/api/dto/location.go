package dto

type LocationResponse struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
