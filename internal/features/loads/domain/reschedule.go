package domain

import "time"

// RescheduleRequest asks to move a load's pickup. Exactly one of
// NewPickupDateTime and NewPickupWindowHours must be set.
type RescheduleRequest struct {
	LoadID               string
	NewPickupDateTime    *time.Time
	NewPickupWindowHours *float64
}

// RescheduleResult is the tolerance decision.
type RescheduleResult struct {
	LoadID                  string  `json:"load_id"`
	Approved                bool    `json:"approved"`
	CurrentPickupDateTime   string  `json:"current_pickup_datetime"`
	RequestedPickupDateTime string  `json:"requested_pickup_datetime"`
	DifferenceHours         float64 `json:"difference_hours"`
	Reason                  string  `json:"reason"`
}
