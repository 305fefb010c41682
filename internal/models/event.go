package models

// Event is one synthetic log record. The generator emits events one at a
// time with strictly non-decreasing timestamps; once assembled into a batch
// an event is never mutated.
//
// Example JSON:
//
//	{
//	  "service": "inference",
//	  "timestamp": 1767033600.0,
//	  "message": "HTTP Status Code: 404"
//	}
type Event struct {
	Service   string  `json:"service"`
	Timestamp float64 `json:"timestamp"` // seconds since epoch, fractional allowed
	Message   string  `json:"message"`
}

// StatusClass buckets a 3-digit HTTP status code embedded in an event
// message. StatusOther covers codes outside the three tracked ranges as well
// as messages with no extractable code.
type StatusClass string

const (
	Status2xx   StatusClass = "2xx"
	Status4xx   StatusClass = "4xx"
	Status5xx   StatusClass = "5xx"
	StatusOther StatusClass = "other"
)

// ClassifyStatusCode maps a status code to its class.
// Boundaries are inclusive: 200-299, 400-499, 500-599.
func ClassifyStatusCode(code int) StatusClass {
	switch {
	case code >= 200 && code <= 299:
		return Status2xx
	case code >= 400 && code <= 499:
		return Status4xx
	case code >= 500 && code <= 599:
		return Status5xx
	default:
		return StatusOther
	}
}

// ExtractedRecord is the transient per-record shape the aggregation side
// works with. It exists only between decoding a stored object and folding
// into the accumulator; it is never persisted.
//
// HasTimestamp is false when the source record carried no numeric timestamp
// field. Such records still contribute to the status class distribution but
// are excluded from the throughput window.
type ExtractedRecord struct {
	Timestamp    float64
	HasTimestamp bool
	Class        StatusClass
}
