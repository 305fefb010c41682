package extractors

import (
	"regexp"
	"strconv"

	"github.com/goccy/go-json"

	"logbench/internal/models"
)

// statusCodePattern is the fixed extraction pattern applied to the message
// field. The first match wins; exactly three ASCII digits must follow the
// literal prefix.
var statusCodePattern = regexp.MustCompile(`HTTP Status Code: (\d{3})`)

// rawEvent mirrors the stored object record shape. Pointer fields
// distinguish absent from zero-valued.
type rawEvent struct {
	Service   string   `json:"service"`
	Timestamp *float64 `json:"timestamp"`
	Message   *string  `json:"message"`
}

// RecordExtractor parses one stored object's bytes into a sequence of
// extracted records. It is stateless and safe for concurrent use.
type RecordExtractor struct{}

func NewRecordExtractor() *RecordExtractor {
	return &RecordExtractor{}
}

// Extract decodes data as a JSON array of event-shaped records. A record
// whose message has no extractable code, or whose code falls outside the
// 2xx/4xx/5xx ranges, classifies as other; a record with no message field at
// all does too. A decode failure means the whole object contributes zero
// records; the caller counts it and moves on.
func (e *RecordExtractor) Extract(data []byte) ([]models.ExtractedRecord, error) {
	var raw []rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	records := make([]models.ExtractedRecord, 0, len(raw))
	for _, event := range raw {
		record := models.ExtractedRecord{Class: models.StatusOther}

		if event.Timestamp != nil {
			record.Timestamp = *event.Timestamp
			record.HasTimestamp = true
		}

		if event.Message != nil {
			if match := statusCodePattern.FindStringSubmatch(*event.Message); match != nil {
				code, _ := strconv.Atoi(match[1])
				record.Class = models.ClassifyStatusCode(code)
			}
		}

		records = append(records, record)
	}
	return records, nil
}
