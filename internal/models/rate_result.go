package models

import "math"

// RateResult is the sole externally visible output of one aggregation run.
//
// LogsPerSecond is computed over every record that carried a timestamp,
// regardless of status class. The three class rates share a denominator of
// classified records only (2xx+4xx+5xx); "other" records match no bucket.
// All four values are rounded to 4 decimal places, half away from zero.
type RateResult struct {
	LogsPerSecond float64 `json:"logs_per_second"`
	Rate2xx       float64 `json:"rate_2xx"`
	Rate4xx       float64 `json:"rate_4xx"`
	Rate5xx       float64 `json:"rate_5xx"`
}

// Round4 rounds to 4 decimal places, half away from zero.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
