package dto

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
