package jsonschema

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"

	"github.com/goccy/go-json"
)

// fingerprint returns a stable hex digest of s, used to detect structurally
// identical schemas during cycle-breaking and $defs deduplication. Unlike
// the reference implementation's json.dumps (which preserves a Python
// dict's insertion order and so can assign two different fingerprints to
// the same schema depending on how it was built), this sorts object keys
// before hashing so that fingerprints are independent of construction
// order.
func fingerprint(s *Schema) (string, error) {
	canon, err := canonicalize(s)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(canon)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalize renders s to JSON with every object's keys sorted, recursing
// through arrays and nested objects so the result is deterministic
// regardless of the order fields were populated in.
func canonicalize(s *Schema) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return canonicalizeValue(generic)
}

func canonicalizeValue(v any) ([]byte, error) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf := []byte{'{'}
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			keyJSON, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf = append(buf, keyJSON...)
			buf = append(buf, ':')
			valJSON, err := canonicalizeValue(val[k])
			if err != nil {
				return nil, err
			}
			buf = append(buf, valJSON...)
		}
		buf = append(buf, '}')
		return buf, nil

	case []any:
		buf := []byte{'['}
		for i, elem := range val {
			if i > 0 {
				buf = append(buf, ',')
			}
			elemJSON, err := canonicalizeValue(elem)
			if err != nil {
				return nil, err
			}
			buf = append(buf, elemJSON...)
		}
		buf = append(buf, ']')
		return buf, nil

	default:
		return json.Marshal(val)
	}
}
