package canvasui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label is a widget label with an optional keyboard shortcut. In the source
// string an ampersand marks the character after it as the shortcut:
// "&Quit" has shortcut 'Q'. Only the first marker followed by a character
// counts; a trailing ampersand is kept as text.
type Label struct {
	HasShortcut bool
	Shortcut    rune
	Before      string // Text before the shortcut
	After       string // Text after the shortcut
}

// ParseLabel parses a label string.
func ParseLabel(s string) Label {
	i := strings.IndexByte(s, '&')
	if i < 0 || i == len(s)-1 {
		return Label{Before: s}
	}
	r, size := utf8.DecodeRuneInString(s[i+1:])
	return Label{
		HasShortcut: true,
		Shortcut:    r,
		Before:      s[:i],
		After:       s[i+1+size:],
	}
}

// Text returns the label as displayed, without the marker.
func (l Label) Text() string {
	if !l.HasShortcut {
		return l.Before
	}
	return l.Before + string(l.Shortcut) + l.After
}

// Matches reports whether key triggers the shortcut, ignoring case.
func (l Label) Matches(key int) bool {
	if !l.HasShortcut || key < 0 {
		return false
	}
	return unicode.ToLower(l.Shortcut) == unicode.ToLower(rune(key))
}
