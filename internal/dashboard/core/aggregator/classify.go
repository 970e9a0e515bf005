package aggregator

import (
	"net/url"
	"strings"
	"time"
)

const (
	labelUnknown      = "Unknown"
	labelDirect       = "Direct / None"
	utmLabelSeparator = " / "
)

// utmParams are read in this order when building the UTM label.
var utmParams = []string{"utm_source", "utm_campaign", "utm_medium"}

// timestampLayouts covers RFC3339 as written by the collector, the Postgres
// text form and the SQLite default form.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// firstPresent returns the first candidate that is non-nil and not blank.
func firstPresent(candidates ...*string) (string, bool) {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if v := strings.TrimSpace(*c); v != "" {
			return v, true
		}
	}
	return "", false
}

// visitorKey resolves an anonymous visitor identity: visit, then session,
// then the event itself.
func visitorKey(visitID, sessionID *string, eventID string) string {
	if key, ok := firstPresent(visitID, sessionID); ok {
		return key
	}
	return eventID
}

func parseURL(raw *string) *url.URL {
	v, ok := firstPresent(raw)
	if !ok {
		return nil
	}
	u, err := url.Parse(v)
	if err != nil {
		return nil
	}
	return u
}

func stripWWW(host string) string {
	host = strings.ToLower(host)
	return strings.TrimPrefix(host, "www.")
}

func pageLabel(path *string, u *url.URL) string {
	if p, ok := firstPresent(path); ok {
		return p
	}
	// A scheme-less "example.com/pricing" parses as one relative path.
	if u != nil && u.Path != "" && (u.IsAbs() || strings.HasPrefix(u.Path, "/")) {
		return u.Path
	}
	return "/"
}

func hostnameLabel(u *url.URL) string {
	if u == nil || u.Hostname() == "" {
		return labelUnknown
	}
	return stripWWW(u.Hostname())
}

func referrerLabel(referrer *string) string {
	raw, ok := firstPresent(referrer)
	if !ok {
		return labelDirect
	}
	if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
		return stripWWW(u.Hostname())
	}
	return raw
}

func countryLabel(country *string) string {
	if c, ok := firstPresent(country); ok {
		return c
	}
	return labelUnknown
}

// utmLabel joins the UTM values present on the URL. It reports false when the
// URL carries none of them.
func utmLabel(u *url.URL) (string, bool) {
	if u == nil {
		return "", false
	}
	query := u.Query()
	var parts []string
	for _, key := range utmParams {
		if v := strings.TrimSpace(query.Get(key)); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, utmLabelSeparator), true
}
