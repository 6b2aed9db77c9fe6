// Package colormath derives canonical perceptual properties from a color
// input and measures the distance between two parsed colors.
package colormath

import (
	"encoding/json"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Canonical property names.
const (
	Red          = "red"
	Green        = "green"
	Blue         = "blue"
	RGB          = "rgb"
	HTMLHex      = "htmlHex"
	HSHue        = "hsHue"
	HSSaturation = "hsSaturation"
	HSLightness  = "hsLightness"
	HSVValue     = "hsvValue"
	LabL         = "labL"
	LabA         = "labA"
	LabB         = "labB"
	Luminance    = "luminance"
)

var propertyNames = []string{
	Red, Green, Blue, RGB, HTMLHex,
	HSHue, HSSaturation, HSLightness, HSVValue,
	LabL, LabA, LabB, Luminance,
}

// Properties is the immutable property record of one parsed color.
type Properties struct {
	red, green, blue int
	htmlHex          string
	hue, sat, light  float64
	value            float64
	l, a, b          float64
	luminance        float64
}

// fromChannels is the single constructor: every property is computed from
// the integer channels so equal channels always yield identical records.
func fromChannels(r, g, b int) Properties {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, s, l := c.Hsl()
	_, _, v := c.Hsv()
	labL, labA, labB := c.Lab()
	lr, lg, lb := c.LinearRgb()

	return Properties{
		red:       r,
		green:     g,
		blue:      b,
		htmlHex:   c.Hex(),
		hue:       normalizeHue(h),
		sat:       s,
		light:     l,
		value:     v,
		l:         labL,
		a:         labA,
		b:         labB,
		luminance: 0.2126*lr + 0.7152*lg + 0.0722*lb,
	}
}

// normalizeHue folds the hue into [0, 360) and maps NaN to 0.
func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func (p Properties) Red() int { return p.red }
func (p Properties) Green() int { return p.green }
func (p Properties) Blue() int { return p.blue }
func (p Properties) RGB() int { return p.red<<16 | p.green<<8 | p.blue }
func (p Properties) HTMLHex() string { return p.htmlHex }
func (p Properties) Hue() float64 { return p.hue }
func (p Properties) Saturation() float64 { return p.sat }
func (p Properties) Lightness() float64 { return p.light }
func (p Properties) Luminance() float64 { return p.luminance }
func (p Properties) Lab() (l, a, b float64) { return p.l, p.a, p.b }

// Colorful returns the go-colorful representation of the color.
func (p Properties) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(p.red) / 255.0,
		G: float64(p.green) / 255.0,
		B: float64(p.blue) / 255.0,
	}
}

// Equal reports whether both records describe the same color.
func (p Properties) Equal(other Properties) bool {
	return p.htmlHex == other.htmlHex
}

// GetProperty returns the named canonical property.
func (p Properties) GetProperty(name string) (Value, error) {
	switch name {
	case Red:
		return numberValue(float64(p.red)), nil
	case Green:
		return numberValue(float64(p.green)), nil
	case Blue:
		return numberValue(float64(p.blue)), nil
	case RGB:
		return numberValue(float64(p.RGB())), nil
	case HTMLHex:
		return textValue(p.htmlHex), nil
	case HSHue:
		return numberValue(p.hue), nil
	case HSSaturation:
		return numberValue(p.sat), nil
	case HSLightness:
		return numberValue(p.light), nil
	case HSVValue:
		return numberValue(p.value), nil
	case LabL:
		return numberValue(p.l), nil
	case LabA:
		return numberValue(p.a), nil
	case LabB:
		return numberValue(p.b), nil
	case Luminance:
		return numberValue(p.luminance), nil
	}
	return Value{}, &UnknownPropertyError{Name: name}
}

// HasProperty reports whether name is a canonical property.
func HasProperty(name string) bool {
	for _, n := range propertyNames {
		if n == name {
			return true
		}
	}
	return false
}

// PropertyNames lists the canonical property names.
func PropertyNames() []string {
	names := make([]string, len(propertyNames))
	copy(names, propertyNames)
	return names
}

func (p Properties) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Red          int     `json:"red"`
		Green        int     `json:"green"`
		Blue         int     `json:"blue"`
		RGB          int     `json:"rgb"`
		HTMLHex      string  `json:"htmlHex"`
		HSHue        float64 `json:"hsHue"`
		HSSaturation float64 `json:"hsSaturation"`
		HSLightness  float64 `json:"hsLightness"`
		HSVValue     float64 `json:"hsvValue"`
		LabL         float64 `json:"labL"`
		LabA         float64 `json:"labA"`
		LabB         float64 `json:"labB"`
		Luminance    float64 `json:"luminance"`
	}{
		Red:          p.red,
		Green:        p.green,
		Blue:         p.blue,
		RGB:          p.RGB(),
		HTMLHex:      p.htmlHex,
		HSHue:        p.hue,
		HSSaturation: p.sat,
		HSLightness:  p.light,
		HSVValue:     p.value,
		LabL:         p.l,
		LabA:         p.a,
		LabB:         p.b,
		Luminance:    p.luminance,
	})
}
