package pedidos

import (
	"strconv"
	"strings"
	"time"
)

const displayDateFormat = "02/01/2006"

// Stubbed in tests; the resolver falls back to the current instant when the
// creation timestamp is present but unparseable.
var timeNow = time.Now

var createdAtLayouts = []string{
	"02/01/2006, 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseCreatedAt attempts the known creation-timestamp formats in order:
// the marketplace display format, a numeric epoch (seconds), then ISO-8601
// variants.
func parseCreatedAt(createdAt any) (time.Time, bool) {
	switch v := createdAt.(type) {
	case float64:
		return time.Unix(int64(v), 0).UTC(), true
	case int:
		return time.Unix(int64(v), 0).UTC(), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		if parsed, err := time.Parse(createdAtLayouts[0], s); err == nil {
			return parsed, true
		}
		if epoch, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Unix(int64(epoch), 0).UTC(), true
		}
		for _, layout := range createdAtLayouts[1:] {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// fallbackDueDate applies the production scheduling rule to the order
// creation instant: orders placed Monday or late on Tuesday-Thursday ship
// next day, late Friday orders after the weekend, weekend orders on Tuesday,
// everything else same day.
func fallbackDueDate(createdAt time.Time) string {
	addDays := 0
	hour := createdAt.Hour()
	switch createdAt.Weekday() {
	case time.Monday:
		addDays = 1
	case time.Tuesday, time.Wednesday, time.Thursday:
		if hour >= 11 {
			addDays = 1
		}
	case time.Friday:
		if hour >= 11 {
			addDays = 3
		}
	case time.Saturday, time.Sunday:
		addDays = 2
	}
	return createdAt.AddDate(0, 0, addDays).Format(displayDateFormat)
}

func isEmptyCreatedAt(createdAt any) bool {
	if createdAt == nil {
		return true
	}
	if s, ok := createdAt.(string); ok && strings.TrimSpace(s) == "" {
		return true
	}
	return false
}

// ResolveDeliveryDate derives the shipping due date, DD/MM/YYYY. The
// marketplace's ship-by timestamp wins when present; otherwise the due date
// is computed from the order creation instant, and only when that is absent
// too does the result stay empty.
func ResolveDeliveryDate(shipByAt string, createdAt any) string {
	if strings.TrimSpace(shipByAt) != "" {
		head := strings.TrimSpace(strings.SplitN(shipByAt, ",", 2)[0])
		if parsed, err := time.Parse("2006-01-02", head); err == nil {
			return parsed.Format(displayDateFormat)
		}
		return head
	}

	if isEmptyCreatedAt(createdAt) {
		return ""
	}

	created, ok := parseCreatedAt(createdAt)
	if !ok {
		created = timeNow()
	}
	return fallbackDueDate(created)
}
