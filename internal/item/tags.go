package item

import (
	"math"

	"github.com/TavstalDev/MineCoreLib/internal/domain"
)

// NormalizeTags coerces tag values that arrived through a weakly typed
// decode, such as a JSON request body, into their canonical Go types.
// Entries that cannot carry their declared tag are dropped.
func NormalizeTags(it *domain.Item) {
	for key, tag := range it.Tags {
		if tag.Matches() {
			continue
		}
		if v, ok := decodeTagValue(tag.Type, tag.Value); ok {
			it.Tags[key] = domain.TaggedValue{Type: tag.Type, Value: v}
		} else {
			delete(it.Tags, key)
		}
	}
}

// decodeTagValue coerces a decoded tag value into the canonical Go type for
// its discriminant. Returns false when the value cannot carry that tag.
func decodeTagValue(tag domain.TagType, v any) (any, bool) {
	switch tag {
	case domain.TagString:
		return asString(v)
	case domain.TagInteger:
		if n, ok := asInt(v); ok && n >= math.MinInt32 && n <= math.MaxInt32 {
			return int32(n), true
		}
	case domain.TagDouble:
		return asFloat(v)
	case domain.TagFloat:
		if f, ok := asFloat(v); ok {
			return float32(f), true
		}
	case domain.TagLong:
		return asInt(v)
	case domain.TagByte:
		if n, ok := asInt(v); ok && n >= 0 && n <= math.MaxUint8 {
			return byte(n), true
		}
	case domain.TagByteArray:
		return asBytes(v)
	case domain.TagIntegerArray:
		return decodeInt32Slice(v)
	case domain.TagLongArray:
		return decodeInt64Slice(v)
	case domain.TagShort:
		if n, ok := asInt(v); ok && n >= math.MinInt16 && n <= math.MaxInt16 {
			return int16(n), true
		}
	case domain.TagBoolean:
		return asBool(v)
	}
	return nil, false
}

func decodeInt32Slice(v any) ([]int32, bool) {
	if typed, ok := v.([]int32); ok {
		return typed, true
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	result := make([]int32, len(raw))
	for i, elem := range raw {
		n, ok := asInt(elem)
		if !ok || n < math.MinInt32 || n > math.MaxInt32 {
			return nil, false
		}
		result[i] = int32(n)
	}
	return result, true
}

func decodeInt64Slice(v any) ([]int64, bool) {
	if typed, ok := v.([]int64); ok {
		return typed, true
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	result := make([]int64, len(raw))
	for i, elem := range raw {
		n, ok := asInt(elem)
		if !ok {
			return nil, false
		}
		result[i] = n
	}
	return result, true
}
