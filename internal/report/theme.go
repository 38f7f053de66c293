package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RGB is a 0-255 color triple.
type RGB struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// Theme controls the visual treatment of the rendered plan. The zero
// config matches the original document: goldenrod on black tables on a
// white page.
type Theme struct {
	Margin          float64 `yaml:"margin"` // page margin, points
	HeaderSize      float64 `yaml:"header_size"`
	TableHeaderSize float64 `yaml:"table_header_size"`
	BodySize        float64 `yaml:"body_size"`
	FooterSize      float64 `yaml:"footer_size"`

	Fill       RGB `yaml:"fill"`        // table background
	HeaderText RGB `yaml:"header_text"` // document header and table headers
	BodyText   RGB `yaml:"body_text"`   // table rows
	Grid       RGB `yaml:"grid"`        // table rules

	Website string `yaml:"website"`
}

var (
	black     = RGB{0, 0, 0}
	white     = RGB{255, 255, 255}
	goldenrod = RGB{218, 165, 32}
)

// DefaultTheme returns the original black/gold look.
func DefaultTheme() Theme {
	return Theme{
		Margin:          20,
		HeaderSize:      16,
		TableHeaderSize: 12,
		BodySize:        10,
		FooterSize:      10,
		Fill:            black,
		HeaderText:      goldenrod,
		BodyText:        white,
		Grid:            goldenrod,
		Website:         "HTTPS://CAP-SHADOW.NETLIFY.APP/",
	}
}

// LoadTheme overlays a YAML file onto the defaults, so partial files
// only override what they name.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("read theme: %w", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return theme, fmt.Errorf("parse theme: %w", err)
	}
	return theme, nil
}
