package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// eventRecord is the persisted shape of one event. Field order and names are
// the storage layout: {id, title, type, startTime, endTime, day, description?}
type eventRecord struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=course event dayoff"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Day         int    `json:"day" validate:"min=0,max=6"`
	Description string `json:"description,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		rec := sl.Current().Interface().(eventRecord)
		if strings.TrimSpace(rec.Title) == "" {
			sl.ReportError(rec.Title, "Title", "title", "notblank", "")
		}
		if models.SlotIndex(rec.StartTime, rec.EndTime) < 0 {
			sl.ReportError(rec.StartTime, "StartTime", "startTime", "timeslot", "")
		}
	}, eventRecord{})
	return v
}

func toRecord(e models.Event) eventRecord {
	return eventRecord{
		ID:          e.ID.String(),
		Title:       e.Title,
		Type:        string(e.Type),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Day:         e.Day,
		Description: e.Description,
	}
}

func (r eventRecord) toEvent() models.Event {
	return models.Event{
		ID:          types.EventID(r.ID),
		Title:       r.Title,
		Description: r.Description,
		Type:        models.EventType(r.Type),
		Day:         r.Day,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

// Encode serializes the whole collection as a JSON array
func Encode(evts []models.Event) ([]byte, error) {
	records := make([]eventRecord, len(evts))
	for i, e := range evts {
		records[i] = toRecord(e)
	}
	return json.Marshal(records)
}

// Decode parses a stored snapshot. Content that is not a JSON array fails
// with ErrMalformedSnapshot. Individual records that fail validation, or that
// repeat an earlier id, are dropped and logged.
func Decode(data []byte) ([]models.Event, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []models.Event{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	out := make([]models.Event, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, msg := range raw {
		rec, err := decodeRecord(msg)
		if err != nil {
			slog.Warn("dropping stored schedule event", "index", i, "error", err)
			continue
		}
		if seen[rec.ID] {
			slog.Warn("dropping duplicate stored schedule event", "index", i, "event_id", rec.ID)
			continue
		}
		seen[rec.ID] = true
		out = append(out, rec.toEvent())
	}
	return out, nil
}

func decodeRecord(msg json.RawMessage) (eventRecord, error) {
	var rec eventRecord
	if err := json.Unmarshal(msg, &rec); err != nil {
		return eventRecord{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if err := validate.Struct(rec); err != nil {
		return eventRecord{}, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return rec, nil
}
