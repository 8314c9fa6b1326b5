// Package format holds the presentation helpers shared by the storefront:
// currency formatting and the color-name-to-hex mapping used for swatches.
package format

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.French)

// Price renders a price the way the shop displays it: French number
// formatting, three fraction digits, TND suffix.
func Price(v float64) string {
	return printer.Sprintf("%.3f TND", v)
}

var (
	hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(`)
)

var colorMap = map[string]string{
	"Noir":     "#000000",
	"Blanc":    "#FFFFFF",
	"Gris":     "#808080",
	"Marine":   "#000080",
	"Rouge":    "#FF0000",
	"Bleu":     "#0000FF",
	"Rose":     "#FFC0CB",
	"Lavande":  "#E6E6FA",
	"Jaune":    "#FFFF00",
	"Menthe":   "#98FB98",
	"Beige":    "#F5F5DC",
	"Vert":     "#008000",
	"Orange":   "#FFA500",
	"Violet":   "#8A2BE2",
	"Kaki":     "#F0E68C",
	"Marron":   "#A52A2A",
	"Bordeaux": "#800020",
}

// ColorHex maps a color label to a hex code for rendering a swatch. Hex and
// rgb()/rgba() values pass through unchanged; unknown names fall back to a
// neutral grey.
func ColorHex(color string) string {
	if hexPattern.MatchString(color) || rgbPattern.MatchString(color) {
		return color
	}
	if hex, ok := colorMap[color]; ok {
		return hex
	}
	// Retry with canonical capitalization (noir, NOIR -> Noir).
	if len(color) > 0 {
		cap := strings.ToUpper(color[:1]) + strings.ToLower(color[1:])
		if hex, ok := colorMap[cap]; ok {
			return hex
		}
	}
	return "#CCCCCC"
}
