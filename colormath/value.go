package colormath

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a single property value, either numeric or textual.
type Value struct {
	Number float64
	Text   string
	IsText bool
}

func numberValue(n float64) Value { return Value{Number: n} }

func textValue(s string) Value { return Value{Text: s, IsText: true} }

// Compare orders numbers ascending, text lexicographically, and numbers
// before text when the kinds differ.
func (v Value) Compare(other Value) int {
	switch {
	case v.IsText && other.IsText:
		return strings.Compare(v.Text, other.Text)
	case v.IsText:
		return 1
	case other.IsText:
		return -1
	case v.Number < other.Number:
		return -1
	case v.Number > other.Number:
		return 1
	default:
		return 0
	}
}

func (v Value) String() string {
	if v.IsText {
		return v.Text
	}
	return strconv.FormatFloat(v.Number, 'g', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsText {
		return json.Marshal(v.Text)
	}
	return json.Marshal(v.Number)
}
