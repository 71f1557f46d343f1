package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Stringify renders any decoded literal as its string form. Identifiers
// coming out of a dump may be numeric or quoted text; the document key
// is always their string form.
func Stringify(val interface{}) string {
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", val)
}

// ToInt converts a decoded literal to int.
func ToInt(val interface{}) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// ToFloat converts a decoded literal to float64. Prices and amounts are
// stored as reals regardless of how the dump spelled them.
func ToFloat(val interface{}) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float", val)
	}
}

// ToDate converts a decoded order-date literal to a date-time at
// midnight UTC. Accepted shapes: a text literal of form YYYY-MM-DD, or
// an already date-typed value. Anything else is an error.
func ToDate(val interface{}) (time.Time, error) {
	switch v := val.(type) {
	case time.Time:
		return time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC), nil
	case string:
		parts := strings.Split(v, "-")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("unsupported date literal: %q", v)
		}
		y, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		d, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, fmt.Errorf("unsupported date literal: %q", v)
		}
		return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported date literal: %v (%T)", val, val)
	}
}
