package svgtemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		name   string
		svg    string
		width  float64
		height float64
		unit   string
	}{
		{
			name:   "pixels sem unidade",
			svg:    `<svg xmlns="http://www.w3.org/2000/svg" width="1122" height="794"></svg>`,
			width:  1122,
			height: 794,
			unit:   "px",
		},
		{
			name:   "milimetros",
			svg:    `<svg width="297mm" height="210mm"></svg>`,
			width:  297,
			height: 210,
			unit:   "mm",
		},
		{
			name:   "fracionario",
			svg:    `<svg width="100.5" height="80.25"></svg>`,
			width:  100.5,
			height: 80.25,
			unit:   "px",
		},
		{
			name: "sem atributos",
			svg:  `<svg viewBox="0 0 100 100"></svg>`,
			unit: "px",
		},
		{
			name: "sem tag svg",
			svg:  `<rect width="10" height="10"/>`,
			unit: "px",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height, unit := ParseDimensions(tt.svg)
			assert.Equal(t, tt.width, width)
			assert.Equal(t, tt.height, height)
			assert.Equal(t, tt.unit, unit)
		})
	}
}

func TestParseFonts(t *testing.T) {
	svg := `<svg>
  <text font-family="Playfair Display, serif">a</text>
  <text style="font-family: 'Open Sans', sans-serif">b</text>
  <text font-family="Playfair Display, serif">c</text>
  <text font-family="Roboto Mono">d</text>
</svg>`

	fonts := ParseFonts(svg)

	// sem duplicatas, na ordem da primeira ocorrência
	assert.Equal(t, []string{"Playfair Display", "serif", "Open Sans", "sans-serif", "Roboto Mono"}, fonts)
}

func TestParseFontsNone(t *testing.T) {
	assert.Empty(t, ParseFonts(`<svg><rect/></svg>`))
}
