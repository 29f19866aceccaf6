package canvasui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/canvasui"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in   string
		want canvasui.Label
		text string
	}{
		{"Quit", canvasui.Label{Before: "Quit"}, "Quit"},
		{"&Quit", canvasui.Label{HasShortcut: true, Shortcut: 'Q', After: "uit"}, "Quit"},
		{"Save &as", canvasui.Label{HasShortcut: true, Shortcut: 'a', Before: "Save ", After: "s"}, "Save as"},
		{"A&&B", canvasui.Label{HasShortcut: true, Shortcut: '&', Before: "A", After: "B"}, "A&B"},
		{"Fish & chips &now", canvasui.Label{HasShortcut: true, Shortcut: ' ', Before: "Fish ", After: "chips &now"}, "Fish  chips &now"},
		{"End&", canvasui.Label{Before: "End&"}, "End&"},
		{"&Ünïcode", canvasui.Label{HasShortcut: true, Shortcut: 'Ü', After: "nïcode"}, "Ünïcode"},
		{"", canvasui.Label{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := canvasui.ParseLabel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.Text())
		})
	}
}

func TestLabel_Matches(t *testing.T) {
	l := canvasui.ParseLabel("&Quit")

	assert.True(t, l.Matches('q'))
	assert.True(t, l.Matches('Q'))
	assert.False(t, l.Matches('u'))
	assert.False(t, l.Matches(-1))
	assert.False(t, canvasui.ParseLabel("Quit").Matches('Q'))
}
