package reqschema

import (
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FormatFunc reports whether a string satisfies a named semantic format.
type FormatFunc func(s string) bool

var (
	formatMu sync.RWMutex
	formats  = map[string]FormatFunc{
		"date":      isDate,
		"date-time": isDateTime,
		"uuid":      isUUID,
	}
)

// RegisterFormat installs (or replaces) a named format validator. Nil
// functions are ignored. Registration is intended for program init, before
// schemas referencing the format are loaded.
func RegisterFormat(name string, fn FormatFunc) {
	if fn == nil {
		return
	}
	formatMu.Lock()
	formats[name] = fn
	formatMu.Unlock()
}

// HasFormat reports whether a named format validator is registered. Loaders
// use it to reject schemas that reference unknown formats.
func HasFormat(name string) bool {
	_, ok := lookupFormat(name)
	return ok
}

func lookupFormat(name string) (FormatFunc, bool) {
	formatMu.RLock()
	fn, ok := formats[name]
	formatMu.RUnlock()
	return fn, ok
}

// dateShape guards zero-padding; time.Parse alone accepts "1978-1-1".
var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// isDate accepts exactly YYYY-MM-DD calendar-valid dates.
func isDate(s string) bool {
	if !dateShape.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// isDateTime accepts RFC3339 timestamps.
func isDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
