package helpers

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func TempEnvVars(vars map[string]string) (reset func()) {
	current := map[string]string{}
	for key, val := range vars {
		current[key] = os.Getenv(key)
		os.Setenv(key, val)
	}
	return func() {
		for key, val := range current {
			os.Setenv(key, val)
		}
	}
}

func traverse[T any](obj any, key any, keys []any, fallback T) (T, error) {
	reflectedObj := reflect.ValueOf(obj)
	switch reflectedObj.Kind() {
	case reflect.Slice, reflect.Array:
		typedKey, ok := key.(int)
		if !ok {
			return fallback, fmt.Errorf("expected int key for %T, got %T", obj, key)
		}
		if typedKey >= reflectedObj.Len() {
			return fallback, fmt.Errorf("index %v out of range %v", typedKey, reflectedObj.Len()-1)
		}
		val := reflectedObj.Index(typedKey).Interface()
		if len(keys) > 0 {
			return traverse(val, keys[0], keys[1:], fallback)
		}
		typedVal, ok := val.(T)
		if !ok {
			var empty T
			return fallback, fmt.Errorf("could not type assert final value %T into %T", val, empty)
		}
		return typedVal, nil
	case reflect.Map:
		typedKey, ok := key.(string)
		if !ok {
			return fallback, fmt.Errorf("expected string key for %T, got %T (%v)", obj, key, key)
		}
		res := reflectedObj.MapIndex(reflect.ValueOf(typedKey))
		if !res.IsValid() {
			return fallback, fmt.Errorf("key %s not found", typedKey)
		}
		val := res.Interface()
		if len(keys) > 0 {
			return traverse(val, keys[0], keys[1:], fallback)
		}
		typedVal, ok := val.(T)
		if !ok {
			var empty T
			return fallback, fmt.Errorf("could not type assert final value %T into %T", val, empty)
		}
		return typedVal, nil
	}
	return fallback, fmt.Errorf("cannot traverse object of type %T", obj)
}

func TraverseWithError[T any](obj any, keys []any, fallback T) (T, error) {
	return traverse(obj, keys[0], keys[1:], fallback)
}

func Traverse[T any](obj any, keys []any, fallback T) T {
	res, _ := TraverseWithError(obj, keys, fallback)
	return res
}

// SafeFloat coerces a decoded JSON value into a float64, returning fallback
// when the value is absent, non-numeric, or an unparseable string.
func SafeFloat(val any, fallback float64) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fallback
		}
		return f
	}
	return fallback
}

// SafeInt coerces a decoded JSON value into an int, returning fallback when
// the value is absent or not a whole number.
func SafeInt(val any, fallback int) int {
	switch v := val.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fallback
		}
		return i
	}
	return fallback
}

// normalizeString removes diacritics/accents and converts the string to lowercase.
func normalizeString(s string) (string, error) {
	// The transform.Chain combines several transformers.
	// norm.NFD: Decomposes characters (e.g., 'é' becomes 'e' + '´').
	// runes.Remove(runes.In(unicode.Mn)): Removes non-spacing marks (the accents).
	// norm.NFC: Recomposes characters back to their pre-composed form.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("error normalizing string\nERROR=%w", err)
	}
	return result, nil
}

// CompareStrings checks if two strings are equal, ignoring case and accents.
func CompareStrings(s1, s2 string) (bool, error) {
	n1, err := normalizeString(s1)
	if err != nil {
		return false, fmt.Errorf("could not normalize s1\nERROR=%w", err)
	}
	n2, err := normalizeString(s2)
	if err != nil {
		return false, fmt.Errorf("could not normalize s2\nERROR=%w", err)
	}
	return strings.EqualFold(n1, n2), nil
}

// StringInSlice checks if s is in l, ignoring case and accents.
func StringInSlice(s string, l []string) (bool, error) {
	n, err := normalizeString(s)
	if err != nil {
		return false, fmt.Errorf("error normalizing string\nERROR=%w", err)
	}
	for _, sl := range l {
		nl, err := normalizeString(sl)
		if err != nil {
			return false, fmt.Errorf("error normalizing string from slice\nERROR=%w", err)
		}
		if strings.EqualFold(n, nl) {
			return true, nil
		}
	}
	return false, nil
}
