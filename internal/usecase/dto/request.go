package dto

// Request bodies keep the camelCase field names of the historical JSON API;
// responses are the persisted rows with their snake_case column names.

// StationRequest is shared by station create and update.
type StationRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	// PrefectureID, when omitted, is derived from Location via the static
	// municipality mapping.
	PrefectureID *int `json:"prefectureId"`
}

// PlaceRequest is shared by create and update across all three place kinds.
// Location is intentionally absent: it is always derived server-side from
// Station.
type PlaceRequest struct {
	Name          string `json:"name" validate:"required"`
	GoogleMapsURL string `json:"googleMapsUrl" validate:"required"`
	Station       string `json:"station" validate:"required"`
	// WalkingTime is minutes as a string; must parse as an integer in [1,60]
	// when present.
	WalkingTime string `json:"walkingTime"`
}
