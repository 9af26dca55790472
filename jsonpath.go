package ffufgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FindJSONPath searches a JSON document depth-first for the first key matching param
// and returns its path in the dotted/bracket notation ffuf's -json flag expects,
// e.g. "user.id" or "items[2].id".
// Object keys are visited in document order, which is why this walks the token stream
// instead of decoding into a map (Go maps do not preserve key order).
// A body that is not valid JSON is reported as not found.
func FindJSONPath(body, param string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	path, found, err := searchJSONValue(dec, param, "")
	if err != nil {
		return "", false
	}
	return path, found
}

// searchJSONValue consumes the next JSON value from the decoder, recursing into
// objects and arrays. It returns as soon as a matching key is seen.
func searchJSONValue(dec *json.Decoder, param, path string) (string, bool, error) {
	token, err := dec.Token()
	if err != nil {
		return "", false, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		// Scalar value, nothing to descend into.
		return "", false, nil
	}

	switch delim {
	case '{':
		for dec.More() {
			keyToken, err := dec.Token()
			if err != nil {
				return "", false, err
			}

			key, _ := keyToken.(string)
			keyPath := key
			if path != "" {
				keyPath = path + "." + key
			}

			if key == param {
				return keyPath, true, nil
			}

			foundPath, found, err := searchJSONValue(dec, param, keyPath)
			if err != nil || found {
				return foundPath, found, err
			}
		}
		// Closing brace.
		if _, err := dec.Token(); err != nil {
			return "", false, err
		}
	case '[':
		for index := 0; dec.More(); index++ {
			elementPath := fmt.Sprintf("%s[%d]", path, index)
			foundPath, found, err := searchJSONValue(dec, param, elementPath)
			if err != nil || found {
				return foundPath, found, err
			}
		}
		// Closing bracket.
		if _, err := dec.Token(); err != nil {
			return "", false, err
		}
	}

	return "", false, nil
}
