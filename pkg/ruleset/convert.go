package ruleset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// pointerTo lifts conv to *T so nil scalars become nil pointers.
func pointerTo[T any](conv func(any) (T, error)) func(any) (*T, error) {
	return func(v any) (*T, error) {
		if v == nil {
			return nil, nil
		}
		out, err := conv(v)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		// Accepts NaN and ±Inf, which JSON cannot express as numbers.
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		return f, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func toString(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected a string, got %T", v)
}

func toBool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("expected a bool, got %T", v)
}

func toUUID(v any) (uuid.UUID, error) {
	s, err := toString(v)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(s)
}

func toTime(v any) (time.Time, error) {
	s, err := toString(v)
	if err != nil {
		return time.Time{}, err
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither RFC 3339 nor YYYY-MM-DD", s)
	}
	return t, nil
}

// toWeekday accepts English day names in any case or an integer. Integers
// outside 0-6 are kept so range rules can reject them.
func toWeekday(v any) (time.Weekday, error) {
	if s, ok := v.(string); ok {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.EqualFold(d.String(), s) {
				return d, nil
			}
		}
		return 0, fmt.Errorf("%q is not a weekday", s)
	}
	n, err := toInt(v)
	if err != nil {
		return 0, err
	}
	return time.Weekday(n), nil
}

func toInt(v any) (int, error) {
	f, err := toNumber(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int(f), nil
}
