package dto

import "github.com/Alwanly/service-runblock-gateway/internal/runblock"

// AdmissionResponse is returned for a configuration that passed validation.
type AdmissionResponse struct {
	AdmissionID   string      `json:"admission_id" example:"rba_550e8400-e29b-41d4-a716-446655440000"`
	RunBlockType  string      `json:"run_block_type" example:"login"`
	Configuration interface{} `json:"configuration"`
}

// RejectionResponse lists every violated constraint of a rejected payload.
type RejectionResponse struct {
	Errors []*runblock.FieldError `json:"errors"`
}
