package aggregators

import (
	"logbench/internal/models"
)

// RateAccumulator folds extracted records into the running state needed for
// a RateResult: a record count with min/max timestamps for throughput, and
// per-class counts for the status distribution. It is a single-pass, O(1)
// memory reduction.
//
// Merge is associative and commutative, so per-worker accumulators can be
// combined in any order; no synchronization is needed beyond the final
// merges. An individual accumulator is not safe for concurrent Add calls.
type RateAccumulator struct {
	timestamped int64 // records that carried a timestamp
	minTS       float64
	maxTS       float64

	count2xx   int64
	count4xx   int64
	count5xx   int64
	countOther int64
}

func NewRateAccumulator() *RateAccumulator {
	return &RateAccumulator{}
}

// Add folds one record in.
func (a *RateAccumulator) Add(record models.ExtractedRecord) {
	switch record.Class {
	case models.Status2xx:
		a.count2xx++
	case models.Status4xx:
		a.count4xx++
	case models.Status5xx:
		a.count5xx++
	default:
		a.countOther++
	}

	if !record.HasTimestamp {
		return
	}
	if a.timestamped == 0 || record.Timestamp < a.minTS {
		a.minTS = record.Timestamp
	}
	if a.timestamped == 0 || record.Timestamp > a.maxTS {
		a.maxTS = record.Timestamp
	}
	a.timestamped++
}

// Merge folds other into a. other is left untouched.
func (a *RateAccumulator) Merge(other *RateAccumulator) {
	a.count2xx += other.count2xx
	a.count4xx += other.count4xx
	a.count5xx += other.count5xx
	a.countOther += other.countOther

	if other.timestamped == 0 {
		return
	}
	if a.timestamped == 0 {
		a.minTS = other.minTS
		a.maxTS = other.maxTS
	} else {
		if other.minTS < a.minTS {
			a.minTS = other.minTS
		}
		if other.maxTS > a.maxTS {
			a.maxTS = other.maxTS
		}
	}
	a.timestamped += other.timestamped
}

// RecordCount returns the number of records folded in so far, with or
// without timestamps.
func (a *RateAccumulator) RecordCount() int64 {
	return a.count2xx + a.count4xx + a.count5xx + a.countOther
}

// Result computes the final statistics.
//
// Throughput is records-with-timestamps over the observed time span; fewer
// than two such records, or a zero span, yields 0.0 rather than a division
// by zero. Class rates share a denominator of classified records only; zero
// classified records yields all-zero rates. Every value is rounded to 4
// decimal places, half away from zero.
func (a *RateAccumulator) Result() *models.RateResult {
	result := &models.RateResult{}

	if a.timestamped >= 2 && a.maxTS > a.minTS {
		result.LogsPerSecond = models.Round4(float64(a.timestamped) / (a.maxTS - a.minTS))
	}

	classified := a.count2xx + a.count4xx + a.count5xx
	if classified == 0 {
		return result
	}

	result.Rate2xx = models.Round4(float64(a.count2xx) / float64(classified))
	result.Rate4xx = models.Round4(float64(a.count4xx) / float64(classified))
	result.Rate5xx = models.Round4(float64(a.count5xx) / float64(classified))
	return result
}
