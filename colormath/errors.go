package colormath

import "fmt"

// InvalidColorError is returned when an input cannot be turned into RGB channels.
type InvalidColorError struct {
	Input  any
	Reason string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %v: %s", e.Input, e.Reason)
}

// UnknownPropertyError is returned when a property name is not one of the
// canonical properties.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("sortby property %s is not a known sort order", e.Name)
}

type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return fmt.Sprintf("unknown distance metric %q", e.Name)
}
