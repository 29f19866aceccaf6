package canvasui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ParseStyle decodes a TOML style document. Keys that are absent keep their
// DefaultStyle value; unknown keys are an error so typos do not go unnoticed.
//
//	font_scale = 0.5
//	button_color = "0x3A3A6A"
//	sparkline_color = "orange"
func ParseStyle(data []byte) (Style, error) {
	s := DefaultStyle()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Style{}, fmt.Errorf("decode style: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// LoadStyle reads and decodes a TOML style file.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style: %w", err)
	}
	s, err := ParseStyle(data)
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// EncodeStyle writes s as TOML, e.g. to seed a style file from DefaultStyle.
func EncodeStyle(w io.Writer, s Style) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode style: %w", err)
	}
	return nil
}

// Validate rejects metrics that would break widget geometry.
func (s Style) Validate() error {
	if s.FontScale <= 0 {
		return fmt.Errorf("style: font_scale must be positive, got %g", s.FontScale)
	}
	if s.TrackbarMarginX < 0 {
		return fmt.Errorf("style: trackbar_margin_x must not be negative, got %d", s.TrackbarMarginX)
	}
	return nil
}
