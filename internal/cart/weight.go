package cart

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseWeight normalizes a weight from a decoded JSON value or URL
// parameter into grams. Line identity is (slug, weight), so a string
// "250" and the number 250 must land on the same line.
func ParseWeight(v interface{}) (int, error) {
	switch w := v.(type) {
	case int:
		return w, nil
	case int64:
		return int(w), nil
	case float64:
		return int(w), nil
	case json.Number:
		n, err := w.Int64()
		if err != nil {
			return 0, fmt.Errorf("invalid weight %q", w.String())
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil {
			return 0, fmt.Errorf("invalid weight %q", w)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("invalid weight type %T", v)
	}
}
