package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// StringAs parses a string into the target type T.
//
// Primitive targets (string, bool, int, uint, float) use direct conversion.
// Complex targets (structs, maps, slices) use JSON unmarshaling; when the
// input is not valid JSON, the string is repaired with jsonrepair and the
// unmarshal is retried. Language models routinely emit single-quoted or
// unquoted-key JSON, so the repair pass recovers a large share of otherwise
// failed tool calls.
func StringAs[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(content)
		if err != nil {
			return result, fmt.Errorf("parse: content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return result, fmt.Errorf("parse: content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("parse: content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(content, 10, 64)
		if err != nil {
			return result, fmt.Errorf("parse: content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	default:
		if err := json.Unmarshal([]byte(content), &result); err != nil {
			repaired, repairErr := jsonrepair.JSONRepair(content)
			if repairErr != nil {
				return result, fmt.Errorf("parse: content as %T and repair failed: unmarshal error: %w, repair error: %v", result, err, repairErr)
			}
			if err = json.Unmarshal([]byte(repaired), &result); err != nil {
				return result, fmt.Errorf("parse: repaired JSON as %T: %w", result, err)
			}
		}
		return result, nil
	}
}
