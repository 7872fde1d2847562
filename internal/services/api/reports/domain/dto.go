// Package domain holds DTOs for report submission
package domain

// SubmitInput is the submission payload for a flag sighting
type SubmitInput struct {
	Date        string `json:"date" validate:"required,localdate" example:"2026-06-03"`
	Time        string `json:"time" validate:"required,max=16" example:"14:05"`
	FlagType    string `json:"flag_type" validate:"required,max=64" example:"red"`
	Description string `json:"description" validate:"required,max=2000" example:"Red flag posted at the county pier"`
	Email       string `json:"email,omitempty" validate:"omitempty,email" example:"visitor@example.com"`
}

// SubmitResult acknowledges a stored report
type SubmitResult struct {
	ID     string `json:"id" example:"0d9af8a2-1f6c-4b44-9df1-2f0e5a3c7b1e"`
	Status string `json:"status" example:"pending"`
}
