package queue

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"unicode/utf8"
)

// KeyPath is the record field that identifies an item.
const KeyPath = "id"

// Item is one pending upload. Apart from KeyPath the store does not look at
// its fields; they only need to be JSON-encodable.
type Item map[string]any

// ID returns the item's key value and whether it is set.
func (i Item) ID() (any, bool) {
	if i == nil {
		return nil, false
	}
	v, ok := i[KeyPath]
	return v, ok
}

// IDString renders the key for display and logging.
func (i Item) IDString() string {
	v, ok := i.ID()
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// encodeKey maps an id value to the text stored in the primary key column.
// Strings and numbers live in separate namespaces so "1" and 1 differ, while
// numerically equal values (1, 1.0, json.Number("1")) share a key. Numbers
// are keyed by their exact rational value, so large integers never collide.
func encodeKey(v any) (string, error) {
	switch k := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: %q is missing", ErrInvalidKey, KeyPath)
	case string:
		// Invalid UTF-8 would be rewritten by the JSON encoder and no longer
		// match the stored key.
		if !utf8.ValidString(k) {
			return "", fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidKey, k)
		}
		return "s:" + k, nil
	case json.Number:
		return decimalKey(string(k))
	case float64:
		return floatKey(k, 64)
	case float32:
		return floatKey(float64(k), 32)
	case int:
		return intKey(int64(k)), nil
	case int8:
		return intKey(int64(k)), nil
	case int16:
		return intKey(int64(k)), nil
	case int32:
		return intKey(int64(k)), nil
	case int64:
		return intKey(k), nil
	case uint:
		return uintKey(uint64(k)), nil
	case uint8:
		return uintKey(uint64(k)), nil
	case uint16:
		return uintKey(uint64(k)), nil
	case uint32:
		return uintKey(uint64(k)), nil
	case uint64:
		return uintKey(k), nil
	default:
		return "", fmt.Errorf("%w: unsupported %T value", ErrInvalidKey, v)
	}
}

func intKey(n int64) string {
	return "n:" + strconv.FormatInt(n, 10)
}

func uintKey(n uint64) string {
	return "n:" + strconv.FormatUint(n, 10)
}

// floatKey uses the shortest decimal form for the value's own precision,
// which is also what the JSON encoder writes, so a float id and the
// json.Number read back share a key.
func floatKey(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v is not a finite number", ErrInvalidKey, f)
	}
	return decimalKey(strconv.FormatFloat(f, 'g', -1, bitSize))
}

func decimalKey(text string) (string, error) {
	// ParseFloat bounds the exponent before big.Rat expands it.
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return "", fmt.Errorf("%w: %q is not a finite number", ErrInvalidKey, text)
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a number", ErrInvalidKey, text)
	}
	return "n:" + r.RatString(), nil
}
