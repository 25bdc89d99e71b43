// Package validation provides declarative field checks for request payloads.
// Handlers collect violations into a map and reject the request before any
// business logic runs.
package validation

import (
	"fmt"
	"strings"
	"time"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records a violation unless the field already has one; the first
// failing rule wins.
func (v Violations) Add(field, message string) {
	if _, ok := v[field]; !ok {
		v[field] = message
	}
}

// Basic validators

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
	}
}

func MinLen(field, value string, min int, v Violations) {
	if len(value) < min {
		v.Add(field, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
}

func MaxLen(field, value string, max int, v Violations) {
	if len(value) > max {
		v.Add(field, field+" is too long")
	}
}

// OneOf checks enum membership against the allowed string values.
func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
}

// HexColor accepts #RGB and #RRGGBB style color strings.
func HexColor(field, value string, v Violations) {
	if len(value) < 4 || len(value) > 7 || !strings.HasPrefix(value, "#") {
		v.Add(field, field+" must be a hex color like #RRGGBB")
		return
	}
	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			v.Add(field, field+" must be a hex color like #RRGGBB")
			return
		}
	}
}

// Future rejects timestamps already in the past at submission time.
func Future(field string, t time.Time, now time.Time, v Violations) {
	if t.IsZero() {
		v.Add(field, field+" is required")
		return
	}
	if t.Before(now) {
		v.Add(field, field+" must not be in the past")
	}
}

// AtLeastOne enforces the partial-update rule: an update carrying none of
// the recognized fields is rejected.
func AtLeastOne(v Violations, present ...bool) {
	for _, p := range present {
		if p {
			return
		}
	}
	v.Add("body", "at least one field must be provided")
}
