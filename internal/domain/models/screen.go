package models

import "time"

// ScreenOutcome is the verdict of one screen for one symbol.
type ScreenOutcome struct {
	Screen      string    `json:"screen"`
	Ticker      string    `json:"ticker"`
	CacheIndex  int       `json:"cacheIndex"`
	Passed      bool      `json:"passed"`
	FailedStep  int       `json:"failedStep,omitempty"`
	StepName    string    `json:"stepName,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	EvaluatedAt time.Time `json:"evaluatedAt"`
}
