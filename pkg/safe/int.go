// Package safe provides helpers for strict numeric parsing and conversions.
package safe

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Int64 parses a JSON number as an int64, rejecting fractional and
// out-of-range values. Protocol identifier lists must be exact integers, so a
// value like 3.5 or 1e20 is an error rather than a truncation.
func Int64(n json.Number) (int64, error) {
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not an int64", n.String())
	}
	return v, nil
}

// Int64Slice parses a list of JSON numbers via Int64, failing on the first
// non-integer entry.
func Int64Slice(ns []json.Number) ([]int64, error) {
	if len(ns) == 0 {
		return nil, nil
	}

	out := make([]int64, 0, len(ns))
	for _, n := range ns {
		v, err := Int64(n)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
