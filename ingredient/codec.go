package ingredient

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateOnlyLayout is accepted on decode for expiration dates entered by hand.
const dateOnlyLayout = "2006-01-02"

// record is the persisted representation of an Ingredient. Dates are kept as
// ISO-8601 strings and parsed explicitly on decode.
type record struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand,omitempty"`
	Category       string          `json:"category,omitempty"`
	Location       string          `json:"location,omitempty"`
	ConfectionType string          `json:"confectionType,omitempty"`
	ExpirationDate string          `json:"expirationDate,omitempty"`
	DateAdded      string          `json:"dateAdded"`
	Ripeness       *ripenessRecord `json:"ripeness,omitempty"`
	IsOpen         bool            `json:"isOpen"`
}

type ripenessRecord struct {
	Status      string `json:"status"`
	LastChecked string `json:"lastChecked"`
}

// Encode serializes the collection as a JSON array.
func Encode(items []Ingredient) ([]byte, error) {
	records := make([]record, 0, len(items))
	for _, item := range items {
		records = append(records, toRecord(item))
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode ingredients: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array produced by Encode, reconstructing every date.
func Decode(data []byte) ([]Ingredient, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode ingredients: %w", err)
	}

	items := make([]Ingredient, 0, len(records))
	for i, rec := range records {
		item, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("decode ingredient %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func toRecord(item Ingredient) record {
	rec := record{
		ID:             item.ID,
		Name:           item.Name,
		Brand:          item.Brand,
		Category:       string(item.Category),
		Location:       string(item.Location),
		ConfectionType: string(item.ConfectionType),
		DateAdded:      formatTime(item.DateAdded),
		IsOpen:         item.IsOpen,
	}
	if item.ExpirationDate != nil {
		rec.ExpirationDate = formatTime(*item.ExpirationDate)
	}
	if item.Ripeness != nil {
		rec.Ripeness = &ripenessRecord{
			Status:      string(item.Ripeness.Status),
			LastChecked: formatTime(item.Ripeness.LastChecked),
		}
	}
	return rec
}

func fromRecord(rec record) (Ingredient, error) {
	item := Ingredient{
		ID:             rec.ID,
		Name:           rec.Name,
		Brand:          rec.Brand,
		Category:       Category(rec.Category),
		Location:       Location(rec.Location),
		ConfectionType: ConfectionType(rec.ConfectionType),
		IsOpen:         rec.IsOpen,
	}

	dateAdded, err := ParseTime(rec.DateAdded)
	if err != nil {
		return Ingredient{}, fmt.Errorf("dateAdded: %w", err)
	}
	item.DateAdded = dateAdded

	if rec.ExpirationDate != "" {
		expiration, err := ParseTime(rec.ExpirationDate)
		if err != nil {
			return Ingredient{}, fmt.Errorf("expirationDate: %w", err)
		}
		item.ExpirationDate = &expiration
	}

	if rec.Ripeness != nil {
		lastChecked, err := ParseTime(rec.Ripeness.LastChecked)
		if err != nil {
			return Ingredient{}, fmt.Errorf("ripeness.lastChecked: %w", err)
		}
		item.Ripeness = &Ripeness{
			Status:      RipenessStatus(rec.Ripeness.Status),
			LastChecked: lastChecked,
		}
	}

	return item, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime parses an ISO-8601 timestamp or a bare YYYY-MM-DD date. Bare
// dates are read as midnight in the local time zone.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateOnlyLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return t, nil
}
