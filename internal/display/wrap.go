package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the column at which room descriptions are wrapped.
const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth.
func Wrap(text string) string {
	return WrapTo(text, DefaultWidth)
}

// WrapTo word-wraps text to width columns. Words longer than width are left
// intact. A width below one disables wrapping.
func WrapTo(text string, width int) string {
	text = strings.TrimSpace(text)
	if width < 1 {
		return text
	}
	return wordwrap.String(text, width)
}
