package dbhealth

import "time"

// Overall probe outcomes.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusOffline  = "offline"
	StatusError    = "error"
)

// ProbeLatencyBudget marks a collection probe as slow when exceeded.
const ProbeLatencyBudget = 500 * time.Millisecond

// ConnState reports one backing service's connectivity.
type ConnState struct {
	Connected bool    `json:"connected"`
	LatencyMs float64 `json:"latencyMs"`
	Error     string  `json:"error,omitempty"`
}

// CollectionState reports one collection probe.
type CollectionState struct {
	Name      string  `json:"name"`
	Count     int64   `json:"count"`
	LatencyMs float64 `json:"latencyMs"`
	Slow      bool    `json:"slow,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// Report is the full health probe result.
type Report struct {
	Status      string            `json:"status"`
	Mongo       ConnState         `json:"mongo"`
	Redis       ConnState         `json:"redis"`
	Collections []CollectionState `json:"collections"`
	CheckedAt   time.Time         `json:"checkedAt"`
}
