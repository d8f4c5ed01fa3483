package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

const (
	TraceParentHeader = "traceparent"
	B3TraceIDHeader   = "X-B3-TraceId"
)

var (
	// version-traceid-parentid-flags, future versions may append fields.
	reTraceParent = regexp.MustCompile(`^([0-9a-f]{2})-([0-9a-f]{32})-([0-9a-f]{16})-([0-9a-f]{2})(?:-.*)?$`)
	reB3TraceID   = regexp.MustCompile(`^(?:[0-9a-f]{16}|[0-9a-f]{32})$`)
)

// ExtractTraceID pulls a trace ID from propagation headers.
// A valid W3C traceparent wins over X-B3-TraceId; otherwise the result is empty.
func ExtractTraceID(h http.Header) string {
	if tp := h.Get(TraceParentHeader); tp != "" {
		if id := ParseTraceParent(tp); id != "" {
			return id
		}
	}
	if b3 := strings.TrimSpace(h.Get(B3TraceIDHeader)); b3 != "" && reB3TraceID.MatchString(b3) {
		return b3
	}
	return ""
}

// ParseTraceParent returns the 32-hex trace-id of a W3C traceparent value, or
// "" when the value is malformed, uses the reserved version ff, or carries an
// all-zero trace or parent id.
func ParseTraceParent(v string) string {
	m := reTraceParent.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return ""
	}
	version, traceID, parentID := m[1], m[2], m[3]
	if version == "ff" || allZeros(traceID) || allZeros(parentID) {
		return ""
	}
	// Version 00 has exactly four fields.
	if version == "00" && len(strings.TrimSpace(v)) != 55 {
		return ""
	}
	return traceID
}

func allZeros(s string) bool {
	for _, r := range s {
		if r != '0' {
			return false
		}
	}
	return true
}
