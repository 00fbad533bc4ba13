package domain

import "time"

// RangeSource indica de onde vieram os registros de uma consulta por período
type RangeSource string

const (
	RangeSourceStore     RangeSource = "store"
	RangeSourceSynthetic RangeSource = "synthetic"
	RangeSourceCache     RangeSource = "cache"
)

type RangeResult struct {
	StartDate time.Time
	EndDate   time.Time
	Records   []*DailyMetric
	Source    RangeSource
	Persisted int // linhas gravadas no fallback sintético
}

// BackfillResult resume o preenchimento das datas ausentes de um período
type BackfillResult struct {
	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
	Requested int       `json:"requested"`
	Existing  int       `json:"existing"`
	Inserted  int       `json:"inserted"`
}
