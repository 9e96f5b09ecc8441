package dto

import "time"

// HealthResponse reports liveness plus per-table row counts. Counts are
// omitted when the store is unreachable; the endpoint itself stays up.
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Counts    map[string]int `json:"counts,omitempty"`
}

// BannerResponse is the service root body.
type BannerResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Description string `json:"description"`
}
