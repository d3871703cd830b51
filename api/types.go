// Package api provides the WordPress REST API client.
package api

import (
	"fmt"
	"time"
)

// Post represents a WordPress post or page.
type Post struct {
	ID       int      `json:"id"`
	Type     string   `json:"type"`
	Status   string   `json:"status"`
	Slug     string   `json:"slug"`
	Link     string   `json:"link"`
	DateGMT  Time     `json:"date_gmt"`
	Modified Time     `json:"modified_gmt"`
	Title    Rendered `json:"title"`
	Content  Rendered `json:"content"`
}

// Rendered holds a field in its stored and rendered forms. Raw is only
// returned when the request uses context=edit.
type Rendered struct {
	Raw      string `json:"raw,omitempty"`
	Rendered string `json:"rendered"`
}

// Source returns the stored text, falling back to the rendered form when
// the raw text was not returned.
func (r Rendered) Source() string {
	if r.Raw != "" {
		return r.Raw
	}
	return r.Rendered
}

// User represents a WordPress user.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Time is a wrapper around time.Time for WordPress dates.
type Time struct {
	time.Time
}

// wpTimeLayout is the layout of the *_gmt fields, always UTC with no zone.
const wpTimeLayout = "2006-01-02T15:04:05"

// UnmarshalJSON parses WordPress's zone-less ISO 8601 format.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	// Handle null or empty
	if s == "null" || s == `""` || s == "" {
		return nil
	}

	// Remove quotes if present
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		return nil
	}

	parsed, err := time.ParseInLocation(wpTimeLayout, s, time.UTC)
	if err != nil {
		// Try a zoned format
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}

	t.Time = parsed
	return nil
}

// MarshalJSON formats time in the WordPress layout.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(wpTimeLayout) + `"`), nil
}

// ErrorResponse represents a WordPress REST error.
type ErrorResponse struct {
	StatusCode int       `json:"-"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Data       ErrorData `json:"data"`
}

// ErrorData carries the status WordPress reports for the error.
type ErrorData struct {
	Status int `json:"status"`
}

func (e *ErrorResponse) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}
