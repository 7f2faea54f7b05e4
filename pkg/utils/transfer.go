package utils

import (
	"encoding/json"
	"strconv"
)

// Transfer coerces a loosely typed value (JWT claims come back as float64,
// json.Number or string depending on the decoder) into an int64 user id.
// Returns -1 when the value has no integer form.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		if intValue, err := v.Int64(); err == nil {
			return intValue
		}
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	res, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1, err
	}
	return res, nil
}
