package colormath

import "math"

// Metric names a distance function between two colors.
type Metric string

const (
	// MetricRGB is the Euclidean distance over the 0..255 channels.
	MetricRGB Metric = "rgb"
	// MetricLab is the CIE76 distance in L*a*b* space.
	MetricLab Metric = "lab"
	// MetricHSL mixes the circular hue difference with saturation and
	// lightness differences, each scaled to [0, 1].
	MetricHSL Metric = "hsl"

	DefaultMetric = MetricRGB
)

// ParseMetric maps a name to a Metric. The empty name selects DefaultMetric.
func ParseMetric(name string) (Metric, error) {
	switch Metric(name) {
	case "":
		return DefaultMetric, nil
	case MetricRGB, MetricLab, MetricHSL:
		return Metric(name), nil
	}
	return "", &UnknownMetricError{Name: name}
}

// DistanceTo returns the DefaultMetric distance between p and other. It is
// symmetric, zero only for equal colors, and never decreases when a single
// channel difference grows.
func (p Properties) DistanceTo(other Properties) float64 {
	dr := float64(p.red - other.red)
	dg := float64(p.green - other.green)
	db := float64(p.blue - other.blue)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DistanceWith returns the distance between p and other under metric m.
func (p Properties) DistanceWith(other Properties, m Metric) (float64, error) {
	switch m {
	case "", MetricRGB:
		return p.DistanceTo(other), nil
	case MetricLab:
		return p.Colorful().DistanceLab(other.Colorful()), nil
	case MetricHSL:
		return p.hslDistance(other), nil
	}
	return 0, &UnknownMetricError{Name: string(m)}
}

func (p Properties) hslDistance(other Properties) float64 {
	if p.Equal(other) {
		return 0
	}
	dh := math.Abs(p.hue - other.hue)
	if dh > 180 {
		dh = 360 - dh
	}
	dh /= 180
	ds := p.sat - other.sat
	dl := p.light - other.light
	return math.Sqrt(dh*dh + ds*ds + dl*dl)
}
