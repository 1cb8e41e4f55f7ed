package model

import "math/rand"

// Style selects the crash screen rendering.
type Style string

const (
	StyleGradient  Style = "gradient"
	StyleMountains Style = "mountains"
	StylePaperclip Style = "paperclip"
	StyleGlyphs    Style = "glyphs"
	StyleRandom    Style = "random"
)

var concreteStyles = []Style{StyleGradient, StyleMountains, StylePaperclip, StyleGlyphs}

// Styles returns the concrete styles, excluding StyleRandom.
func Styles() []Style {
	return append([]Style(nil), concreteStyles...)
}

// Valid reports whether the style is known.
func (style Style) Valid() bool {
	if style == StyleRandom {
		return true
	}
	for _, candidate := range concreteStyles {
		if candidate == style {
			return true
		}
	}
	return false
}

// Label returns a menu label for the style.
func (style Style) Label() string {
	switch style {
	case StyleGradient:
		return "Gradient"
	case StyleMountains:
		return "Wireframe mountains"
	case StylePaperclip:
		return "Melting paperclips"
	case StyleGlyphs:
		return "Corrupted glyphs"
	case StyleRandom:
		return "Random"
	default:
		return string(style)
	}
}

// ResolveStyle turns StyleRandom or an unknown value into a concrete style.
func ResolveStyle(style Style, rng *rand.Rand) Style {
	if style != StyleRandom && style.Valid() {
		return style
	}
	return concreteStyles[rng.Intn(len(concreteStyles))]
}
