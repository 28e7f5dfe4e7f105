package generators

import (
	"fmt"
	"strconv"
	"strings"

	"go.eggybyte.com/scaffold/core/errors"
)

// Series describes a run of numbered class names such as Exercise01..Exercise05.
type Series struct {
	Prefix string `yaml:"prefix" json:"prefix" validate:"required"`
	Start  int    `yaml:"start,omitempty" json:"start,omitempty" validate:"gte=0"`
	Count  int    `yaml:"count" json:"count" validate:"gt=0,lte=1000"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty" validate:"gte=0,lte=9"`
}

// MaxSeriesCount bounds the number of names a single series may expand to.
// Keep in sync with the lte rule on Series.Count.
const MaxSeriesCount = 1000

const (
	defaultSeriesStart = 1
	defaultSeriesWidth = 2
)

// Names expands the series. Start defaults to 1 and Width to 2.
// A count outside 1..MaxSeriesCount expands to nothing.
func (s Series) Names() []string {
	if s.Count <= 0 || s.Count > MaxSeriesCount {
		return nil
	}
	start, width := s.Start, s.Width
	if start == 0 {
		start = defaultSeriesStart
	}
	if width == 0 {
		width = defaultSeriesWidth
	}

	names := make([]string, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		names = append(names, fmt.Sprintf("%s%0*d", s.Prefix, width, start+i))
	}
	return names
}

// ParseSeries parses "Prefix:count" or "Prefix:first-last".
//
//	Exercise:5      -> Exercise01 .. Exercise05
//	Exercise:3-7    -> Exercise03 .. Exercise07
func ParseSeries(s string) (Series, error) {
	prefix, spec, ok := strings.Cut(s, ":")
	if !ok || prefix == "" || spec == "" {
		return Series{}, errors.Newf(errors.CodeInvalidArgument, "invalid series %q: want Prefix:count or Prefix:first-last", s)
	}

	if first, last, isRange := strings.Cut(spec, "-"); isRange {
		from, err1 := strconv.Atoi(first)
		to, err2 := strconv.Atoi(last)
		// Start 0 means "default" in the struct form, so ranges begin at 1.
		if err1 != nil || err2 != nil || from < 1 || to < from {
			return Series{}, errors.Newf(errors.CodeInvalidArgument, "invalid series range %q", spec)
		}
		if to-from >= MaxSeriesCount {
			return Series{}, errors.Newf(errors.CodeInvalidArgument, "series range %q exceeds %d names", spec, MaxSeriesCount)
		}
		return Series{Prefix: prefix, Start: from, Count: to - from + 1}, nil
	}

	count, err := strconv.Atoi(spec)
	if err != nil || count <= 0 {
		return Series{}, errors.Newf(errors.CodeInvalidArgument, "invalid series count %q", spec)
	}
	if count > MaxSeriesCount {
		return Series{}, errors.Newf(errors.CodeInvalidArgument, "series count %d exceeds %d", count, MaxSeriesCount)
	}
	return Series{Prefix: prefix, Count: count}, nil
}

// ExpandClasses appends the names of every series to explicit class names.
func ExpandClasses(classes []string, series []Series) []string {
	out := append([]string{}, classes...)
	for _, s := range series {
		out = append(out, s.Names()...)
	}
	return out
}
