// Package wire translates between the client-canonical schema and the school
// service's wire schema. The service's field naming drifted over time (Mongo
// _id, Portuguese names for people fields, posts whose description travels as
// "subject"), so every client field is decoded through an ordered list of
// candidate wire keys and encoded through a single write-canonical key.
package wire

import (
	"strconv"
	"time"
)

// Record is a raw JSON object received from or sent to the service.
type Record map[string]any

// readRule is the ordered list of wire keys tried when decoding one client
// field. The first key holding a non-empty value wins.
type readRule []string

// resolve returns the first non-empty value among the rule's keys.
func (r Record) resolve(rule readRule) (string, bool) {
	for _, key := range rule {
		if s, ok := stringValue(r[key]); ok {
			return s, true
		}
	}
	return "", false
}

// str resolves a rule to its value or "".
func (r Record) str(rule readRule) string {
	s, _ := r.resolve(rule)
	return s
}

// set stores value under key only when value is non-empty, keeping write
// payloads sparse.
func (r Record) set(key, value string) {
	if value != "" {
		r[key] = value
	}
}

// setPtr stores a patch field only when it was supplied.
func (r Record) setPtr(key string, value *string) {
	if value != nil {
		r[key] = *value
	}
}

// stringValue coerces a decoded JSON value to a non-empty string. Numeric
// identifiers are accepted because older service records carried them.
func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

// today is the display-continuity default for records the service returns
// without a creation date.
func today() string {
	return time.Now().Format("2006-01-02")
}
