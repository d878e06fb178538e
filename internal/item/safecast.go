package item

import (
	"fmt"
	"log/slog"
	"math"
)

// Decode-safety helpers. Both encodings hand back weakly typed trees, so
// every downstream reader reinterprets them through these views. A shape
// mismatch yields a missing signal, never a panic.

// asStringMap views a decoded value as a string-keyed map.
func asStringMap(v any, log *slog.Logger) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok && log != nil {
		log.Warn("Expected map in decoded data", "got", typeName(v))
	}
	return m, ok
}

// asList views a decoded value as an ordered list. Nil elements are skipped
// with a warning rather than aborting the whole list.
func asList(v any, log *slog.Logger) ([]any, bool) {
	raw, ok := v.([]any)
	if !ok {
		if log != nil {
			log.Warn("Expected list in decoded data", "got", typeName(v))
		}
		return nil, false
	}

	result := make([]any, 0, len(raw))
	for _, elem := range raw {
		if elem == nil {
			if log != nil {
				log.Warn("Skipping nil element in decoded list")
			}
			continue
		}
		result = append(result, elem)
	}
	return result, true
}

// asMapList views a decoded value as a list of string-keyed maps. Elements
// that are nil or not maps are skipped with a warning.
func asMapList(v any, log *slog.Logger) ([]map[string]any, bool) {
	raw, ok := asList(v, log)
	if !ok {
		return nil, false
	}

	result := make([]map[string]any, 0, len(raw))
	for _, elem := range raw {
		m, ok := elem.(map[string]any)
		if !ok {
			if log != nil {
				log.Warn("Skipping non-map element in decoded list", "got", typeName(elem))
			}
			continue
		}
		result = append(result, m)
	}
	return result, true
}

// asString views a decoded value as a string.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asBool views a decoded value as a bool.
func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asInt views a decoded value as an integer. YAML yields int, CBOR yields
// uint64 or int64, and some sources hand back integral floats; all are
// accepted as long as the value is whole and fits.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		if n == float32(int64(n)) {
			return int64(n), true
		}
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

// asFloat views a decoded value as a float, accepting integers.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

// asBytes views a decoded value as a byte slice. YAML !!binary and CBOR byte
// strings both decode to []byte; a list of small integers is accepted too.
func asBytes(v any) ([]byte, bool) {
	if b, ok := v.([]byte); ok {
		return b, true
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	result := make([]byte, len(raw))
	for i, elem := range raw {
		n, ok := asInt(elem)
		if !ok || n < 0 || n > math.MaxUint8 {
			return nil, false
		}
		result[i] = byte(n)
	}
	return result, true
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
