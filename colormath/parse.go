package colormath

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxRGB is the largest packed 0xRRGGBB value.
const MaxRGB = 0xFFFFFF

// Parse converts a hex string ("#rrggbb", "rrggbb" or "#rgb") or a packed
// 0xRRGGBB number into its canonical properties.
func Parse(input any) (Properties, error) {
	switch v := input.(type) {
	case Properties:
		return v, nil
	case string:
		return parseHex(v)
	case int:
		return parsePacked(input, int64(v))
	case int8:
		return parsePacked(input, int64(v))
	case int16:
		return parsePacked(input, int64(v))
	case int32:
		return parsePacked(input, int64(v))
	case int64:
		return parsePacked(input, v)
	case uint:
		return parseUnsigned(input, uint64(v))
	case uint8:
		return parsePacked(input, int64(v))
	case uint16:
		return parsePacked(input, int64(v))
	case uint32:
		return parsePacked(input, int64(v))
	case uint64:
		return parseUnsigned(input, v)
	case float32:
		return parseFloat(input, float64(v))
	case float64:
		return parseFloat(input, v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return Properties{}, &InvalidColorError{Input: input, Reason: err.Error()}
		}
		return parseFloat(input, n)
	case nil:
		return Properties{}, &InvalidColorError{Input: input, Reason: "empty value"}
	}
	return Properties{}, &InvalidColorError{Input: input, Reason: "not a hex string or packed rgb value"}
}

// MustParse is like Parse but panics on invalid input.
func MustParse(input any) Properties {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}

// IsHex reports whether s is syntactically a hex color.
func IsHex(s string) bool {
	_, ok := expandHex(s)
	return ok
}

func parseHex(s string) (Properties, error) {
	hex, ok := expandHex(s)
	if !ok {
		return Properties{}, &InvalidColorError{Input: s, Reason: "not a hex color"}
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Properties{}, &InvalidColorError{Input: s, Reason: err.Error()}
	}
	r, g, b := c.RGB255()
	return fromChannels(int(r), int(g), int(b)), nil
}

// expandHex strips the optional sigil and returns six lowercase hex digits.
func expandHex(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return "", false
		}
	}
	return strings.ToLower(s), true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func parseFloat(input any, f float64) (Properties, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Properties{}, &InvalidColorError{Input: input, Reason: "packed value must be an integer"}
	}
	if f < 0 || f > MaxRGB {
		return Properties{}, &InvalidColorError{Input: input, Reason: "packed value out of range"}
	}
	return parsePacked(input, int64(f))
}

func parseUnsigned(input any, n uint64) (Properties, error) {
	if n > MaxRGB {
		return Properties{}, &InvalidColorError{Input: input, Reason: "packed value out of range"}
	}
	return parsePacked(input, int64(n))
}

func parsePacked(input any, n int64) (Properties, error) {
	if n < 0 || n > MaxRGB {
		return Properties{}, &InvalidColorError{Input: input, Reason: "packed value out of range"}
	}
	return fromChannels(int(n>>16&0xff), int(n>>8&0xff), int(n&0xff)), nil
}
