package sync

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"hotel-backoffice/internal/domain/client"
	"hotel-backoffice/internal/infra/pms"
)

// Field extraction against loosely-typed remote records. The PMS reports the
// same logical field under different names depending on endpoint and version,
// so every lookup walks a fallback chain of candidate keys. These functions
// are pure so the chains are testable without a remote.

// StringField returns the first non-empty string value among keys. Numeric
// values are rendered as strings because some endpoints report identifiers
// as JSON numbers.
func StringField(rec pms.Record, keys ...string) string {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			if v == math.Trunc(v) {
				return strconv.FormatInt(int64(v), 10)
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

// FloatField returns the first parseable numeric value among keys.
func FloatField(rec pms.Record, keys ...string) (float64, bool) {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// IntField returns the first parseable integer value among keys.
func IntField(rec pms.Record, keys ...string) (int, bool) {
	if f, ok := FloatField(rec, keys...); ok {
		return int(f), true
	}
	return 0, false
}

// timeLayouts are the timestamp renderings seen across PMS endpoints, most
// specific first.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// TimeField parses the first parseable timestamp among keys. The bare
// layouts are interpreted in loc, the zone the PMS reports in.
func TimeField(rec pms.Record, loc *time.Location, keys ...string) (time.Time, bool) {
	for _, key := range keys {
		s, ok := rec[key].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		for _, layout := range timeLayouts {
			if layout == time.RFC3339 {
				if t, err := time.Parse(layout, s); err == nil {
					return t, true
				}
				continue
			}
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// FullName assembles a display name from whichever name fields the record
// carries.
func FullName(rec pms.Record) string {
	first := StringField(rec, "guestFirstName", "firstName", "first_name")
	last := StringField(rec, "guestLastName", "lastName", "last_name")
	if full := client.CollapseWhitespace(first + " " + last); full != "" {
		return full
	}
	return client.CollapseWhitespace(StringField(rec, "guestName", "name", "fullName"))
}

// normalize prepares a string for change comparison: trimmed, inner
// whitespace collapsed. Case is preserved so genuine renames still count.
func normalize(s string) string {
	return client.CollapseWhitespace(s)
}

// fieldDiff accumulates per-field change summaries while deciding whether an
// update is needed at all.
type fieldDiff struct {
	changes []string
}

// Str records a change when the normalized values differ. Returns the value
// that should be stored.
func (d *fieldDiff) Str(field, oldVal, newVal string) string {
	if newVal == "" {
		return oldVal
	}
	if normalize(oldVal) == normalize(newVal) {
		return oldVal
	}
	d.changes = append(d.changes, fmt.Sprintf("%s: %s → %s", field, valueOrEmpty(oldVal), newVal))
	return newVal
}

// Int records a change when the values differ. A zero remote value is
// treated as absent.
func (d *fieldDiff) Int(field string, oldVal, newVal int) int {
	if newVal == 0 || oldVal == newVal {
		return oldVal
	}
	d.changes = append(d.changes, fmt.Sprintf("%s: %d → %d", field, oldVal, newVal))
	return newVal
}

// Cents compares money amounts in integer cents.
func (d *fieldDiff) Cents(field string, oldVal, newVal int64) int64 {
	if newVal == 0 || oldVal == newVal {
		return oldVal
	}
	d.changes = append(d.changes, fmt.Sprintf("%s: %.2f → %.2f",
		field, float64(oldVal)/100, float64(newVal)/100))
	return newVal
}

// Strs compares string slices element-wise after normalization.
func (d *fieldDiff) Strs(field string, oldVal, newVal []string) []string {
	if len(newVal) == 0 || equalNormalized(oldVal, newVal) {
		return oldVal
	}
	d.changes = append(d.changes, fmt.Sprintf("%s: %s → %s",
		field, strings.Join(oldVal, ", "), strings.Join(newVal, ", ")))
	return newVal
}

func (d *fieldDiff) Changed() bool { return len(d.changes) > 0 }

func (d *fieldDiff) Changes() []string { return d.changes }

func equalNormalized(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if normalize(a[i]) != normalize(b[i]) {
			return false
		}
	}
	return true
}

func valueOrEmpty(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}
