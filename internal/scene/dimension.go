package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-imlayout/internal/layout"
)

// ErrInvalidDimension is returned for a dimension string that cannot be parsed.
var ErrInvalidDimension = errors.New("scene: invalid dimension")

// ParseSize parses a size. An empty string yields def.
func ParseSize(s Dim, def layout.Size) (layout.Size, error) {
	str := strings.TrimSpace(string(s))
	switch {
	case str == "":
		return def, nil
	case strings.EqualFold(str, "max"):
		return layout.Max(), nil
	}
	frac, px, percent, err := parseDim(str)
	if err != nil {
		return layout.Size{}, err
	}
	if !percent {
		return layout.Pixels(px), nil
	}
	return layout.PercentOffset(frac, px), nil
}

// ParseOffset parses a position, padding or margin. An empty string is zero.
func ParseOffset(s Dim) (layout.Offset, error) {
	str := strings.TrimSpace(string(s))
	if str == "" {
		return layout.OffsetPixels(0), nil
	}
	frac, px, percent, err := parseDim(str)
	if err != nil {
		return layout.Offset{}, err
	}
	if !percent {
		return layout.OffsetPixels(px), nil
	}
	return layout.OffsetPercentPixels(frac, px), nil
}

// parseDim splits "P%", "P%+N", "P%-N", "N" and "Npx" into a fraction
// and a pixel offset.
func parseDim(str string) (frac, px float64, percent bool, err error) {
	head, tail, percent := strings.Cut(str, "%")
	if !percent {
		px, err = parsePixels(head)
		return 0, px, false, err
	}

	p, err := strconv.ParseFloat(strings.TrimSpace(head), 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w %q", ErrInvalidDimension, str)
	}
	tail = strings.TrimSpace(tail)
	if tail != "" {
		if tail[0] != '+' && tail[0] != '-' {
			return 0, 0, false, fmt.Errorf("%w %q", ErrInvalidDimension, str)
		}
		sign := 1.0
		if tail[0] == '-' {
			sign = -1
		}
		px, err = parsePixels(tail[1:])
		if err != nil {
			return 0, 0, false, fmt.Errorf("%w %q", ErrInvalidDimension, str)
		}
		px *= sign
	}
	return p / 100, px, true, nil
}

func parsePixels(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidDimension, s)
	}
	return v, nil
}
