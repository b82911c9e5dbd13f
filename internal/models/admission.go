package models

import (
	"encoding/json"
	"time"
)

// Run block types accepted by the gateway.
const (
	RunBlockRun           = "run"
	RunBlockLogin         = "login"
	RunBlockDownloadFiles = "download_files"
)

// AdmissionNotice is published to the orchestrator channel for every
// admitted run configuration.
type AdmissionNotice struct {
	AdmissionID   string          `json:"admission_id"`
	RunBlockType  string          `json:"run_block_type"`
	AdmittedAt    time.Time       `json:"admitted_at"`
	Configuration json.RawMessage `json:"configuration"`
}
