package text

// Weight is the visual thickness of a typeface, on the usual 100-900
// scale. The zero value selects WeightNormal.
type Weight uint16

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// String returns the string representation of the weight.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "ExtraLight"
	case WeightLight:
		return "Light"
	case 0, WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightSemibold:
		return "Semibold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "ExtraBold"
	case WeightBlack:
		return "Black"
	default:
		return unknownStr
	}
}

// Style is the slant of a typeface.
type Style int

const (
	// StyleNormal is upright text.
	StyleNormal Style = iota
	// StyleItalic is cursive-slanted text.
	StyleItalic
	// StyleOblique is mechanically slanted text. Fonts rarely carry a
	// separate oblique face; matching falls back to italic.
	StyleOblique
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	case StyleOblique:
		return "Oblique"
	default:
		return unknownStr
	}
}

// Stretch is the width class of a typeface.
type Stretch int

const (
	StretchNormal Stretch = iota
	StretchUltraCondensed
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

// ratio returns the CSS width ratio for the stretch class.
func (s Stretch) ratio() float32 {
	switch s {
	case StretchUltraCondensed:
		return 0.5
	case StretchExtraCondensed:
		return 0.625
	case StretchCondensed:
		return 0.75
	case StretchSemiCondensed:
		return 0.875
	case StretchSemiExpanded:
		return 1.125
	case StretchExpanded:
		return 1.25
	case StretchExtraExpanded:
		return 1.5
	case StretchUltraExpanded:
		return 2.0
	default:
		return 1.0
	}
}

// Generic family names understood by every FontSystem.
const (
	FamilySansSerif = "sans-serif"
	FamilySerif     = "serif"
	FamilyMonospace = "monospace"
)

// Font selects a typeface by family name and attributes. The zero value
// is the default sans-serif font at normal weight.
//
// Family is either a generic name (FamilySansSerif, FamilySerif,
// FamilyMonospace) or the family name of a font registered with
// FontSystem.Load. Matching is case-insensitive.
type Font struct {
	Family  string
	Weight  Weight
	Style   Style
	Stretch Stretch
}

// SansSerif returns the default sans-serif font.
func SansSerif() Font {
	return Font{Family: FamilySansSerif}
}

// Serif returns the default serif font.
func Serif() Font {
	return Font{Family: FamilySerif}
}

// Monospace returns the default monospace font.
func Monospace() Font {
	return Font{Family: FamilyMonospace}
}

// WithFamily returns the font with the family replaced.
func (f Font) WithFamily(family string) Font {
	f.Family = family
	return f
}

// Bold returns the font at bold weight.
func (f Font) Bold() Font {
	f.Weight = WeightBold
	return f
}

// Italic returns the font with an italic style.
func (f Font) Italic() Font {
	f.Style = StyleItalic
	return f
}
