package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// checkDuplicateKeys rejects objects that repeat a key. encoding/json keeps
// the last value, and the next Save would drop the others.
// b must already be syntactically valid JSON.
func checkDuplicateKeys(path string, b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dup, loc, err := walkValue(dec, "")
	if err != nil {
		return &MalformedError{Path: path, Err: fmt.Errorf("json token: %w", err)}
	}
	if dup != "" {
		return &MalformedError{Path: path, Location: loc, Err: fmt.Errorf("duplicate key %q", dup)}
	}
	return nil
}

// walkValue consumes one JSON value and returns the first repeated key and
// the location of the object holding it.
func walkValue(dec *json.Decoder, loc string) (string, string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", "", err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return "", "", nil
	}

	switch delim {
	case '{':
		seen := make(map[string]struct{})
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return "", "", err
			}
			k, _ := kt.(string)
			if _, exists := seen[k]; exists {
				return k, loc, nil
			}
			seen[k] = struct{}{}
			if dup, at, err := walkValue(dec, joinKey(loc, k)); err != nil || dup != "" {
				return dup, at, err
			}
		}
	case '[':
		for i := 0; dec.More(); i++ {
			if dup, at, err := walkValue(dec, fmt.Sprintf("%s[%d]", loc, i)); err != nil || dup != "" {
				return dup, at, err
			}
		}
	}

	// closing delimiter
	if _, err := dec.Token(); err != nil {
		return "", "", err
	}
	return "", "", nil
}

func joinKey(loc, key string) string {
	if loc == "" {
		return key
	}
	return loc + "." + key
}
