// Package ranker orders a list of colors either by one canonical property or
// by a nearest-neighbour chain starting from a seed color.
package ranker

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/color-game/ranker/colormath"
)

// DefaultSortBy is used when Options.SortBy is empty.
const DefaultSortBy = colormath.HSHue

// Options controls a ranking call. A SortBy starting with "#" is a seed
// color and selects chain mode; anything else names a property.
type Options struct {
	SortBy string           `json:"sortBy"`
	Metric colormath.Metric `json:"metric,omitempty"`
}

// InvalidShapeError is returned when a composite element does not hold
// exactly one color.
type InvalidShapeError struct {
	Index int
	Size  int
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("can only sort on one column - colors array is invalid shape (element %d has %d values)", e.Index, e.Size)
}

// entry is the per-call arena record for one input color.
type entry struct {
	index  int
	props  colormath.Properties
	value  colormath.Value
	rank   int
	placed bool
}

// IsChain reports whether opts selects chain mode.
func (opts Options) IsChain() bool {
	return strings.HasPrefix(opts.SortBy, "#")
}

func (opts Options) withDefaults() Options {
	if opts.SortBy == "" {
		opts.SortBy = DefaultSortBy
	}
	return opts
}

// Result holds every view of one ranking call.
type Result struct {
	// Ranks[i] is the rank of input i.
	Ranks []int
	// Order[r] is the input index holding rank r.
	Order []int
	// Sorted[r] is the parsed color holding rank r.
	Sorted []colormath.Properties
}

// Run ranks colors and returns the rank, order and sorted views.
func Run(colors []any, opts Options) (Result, error) {
	entries, err := run(colors, opts)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Ranks:  make([]int, len(entries)),
		Order:  make([]int, len(entries)),
		Sorted: make([]colormath.Properties, len(entries)),
	}
	for _, e := range entries {
		res.Ranks[e.index] = e.rank
		res.Order[e.rank] = e.index
		res.Sorted[e.rank] = e.props
	}
	return res, nil
}

// Rank returns, for each input color, its 0-based position in the chosen
// order. The result is aligned with colors.
func Rank(colors []any, opts Options) ([]int, error) {
	res, err := Run(colors, opts)
	return res.Ranks, err
}

// Order returns the input indexes listed in rank order.
func Order(colors []any, opts Options) ([]int, error) {
	res, err := Run(colors, opts)
	return res.Order, err
}

// Sorted returns the parsed colors in rank order.
func Sorted(colors []any, opts Options) ([]colormath.Properties, error) {
	res, err := Run(colors, opts)
	return res.Sorted, err
}

// run ranks every entry. The returned slice is not in any particular order;
// callers project it through index and rank.
func run(colors []any, opts Options) ([]entry, error) {
	if len(colors) == 0 {
		return nil, nil
	}
	opts = opts.withDefaults()
	metric, err := colormath.ParseMetric(string(opts.Metric))
	if err != nil {
		return nil, err
	}
	if opts.IsChain() {
		return rankChain(colors, opts.SortBy, metric)
	}
	return rankDirect(colors, opts.SortBy)
}

// flatten unwraps single-value rows such as [["#ff0000"], ["#00ff00"]].
func flatten(colors []any) ([]any, error) {
	column := make([]any, len(colors))
	for i, c := range colors {
		size := 1
		if row := reflect.ValueOf(c); row.Kind() == reflect.Slice || row.Kind() == reflect.Array {
			size = row.Len()
			if size == 1 {
				c = row.Index(0).Interface()
			}
		}
		if size != 1 {
			return nil, &InvalidShapeError{Index: i, Size: size}
		}
		column[i] = c
	}
	return column, nil
}

func parseAll(colors []any) ([]entry, error) {
	column, err := flatten(colors)
	if err != nil {
		return nil, err
	}
	entries := make([]entry, len(column))
	for i, c := range column {
		props, err := colormath.Parse(c)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{index: i, props: props, rank: -1}
	}
	return entries, nil
}

func rankDirect(colors []any, sortBy string) ([]entry, error) {
	if !colormath.HasProperty(sortBy) {
		return nil, &colormath.UnknownPropertyError{Name: sortBy}
	}

	entries, err := parseAll(colors)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		v, err := entries[i].props.GetProperty(sortBy)
		if err != nil {
			return nil, err
		}
		entries[i].value = v
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value.Compare(entries[j].value) < 0
	})
	for i := range entries {
		entries[i].rank = i
	}
	return entries, nil
}

func rankChain(colors []any, sortBy string, metric colormath.Metric) ([]entry, error) {
	seed, err := colormath.Parse(sortBy)
	if err != nil {
		return nil, err
	}
	entries, err := parseAll(colors)
	if err != nil {
		return nil, err
	}

	anchor, anchorRank := seed, -1
	for remaining := len(entries); remaining > 0; remaining-- {
		best, bestDistance := -1, 0.0
		for i := range entries {
			if entries[i].placed {
				continue
			}
			d, err := anchor.DistanceWith(entries[i].props, metric)
			if err != nil {
				return nil, err
			}
			if best == -1 || d < bestDistance {
				best, bestDistance = i, d
			}
		}

		entries[best].rank = anchorRank + 1
		entries[best].placed = true
		anchor, anchorRank = entries[best].props, entries[best].rank
	}
	return entries, nil
}
