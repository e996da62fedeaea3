package status

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

// MaxLabelLen bounds label values in bytes
const MaxLabelLen = 32

// Label is a short text metric, such as the hovered planet name
// Stored values are always valid UTF-8 so they can be exported as prometheus label values
type Label struct {
	ptr atomic.Pointer[string]
}

// Set stores val, replacing invalid bytes and cutting on a rune boundary at MaxLabelLen
func (l *Label) Set(val string) {
	val = labelValue(val)
	l.ptr.Store(&val)
}

// Value returns the stored text, empty before the first Set
func (l *Label) Value() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

func labelValue(val string) string {
	val = strings.ToValidUTF8(val, string(utf8.RuneError))
	if len(val) <= MaxLabelLen {
		return val
	}
	n := MaxLabelLen
	for n > 0 && !utf8.RuneStart(val[n]) {
		n--
	}
	return val[:n]
}
