// ABOUTME: Decoding of response bodies into typed results
// ABOUTME: Required fields are checked with gjson paths before encoding/json fills the value

package marshal

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/tidwall/gjson"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/models"
)

var errNotJSON = errors.New("body is not valid JSON")

// Decode parses body into a new T. Unknown fields are ignored. When *T
// implements models.Schema, every required path must be present and non-null.
func Decode[T any](body []byte) (*T, error) {
	out := new(T)
	typeName := reflect.TypeFor[T]().String()

	if !gjson.ValidBytes(body) {
		return nil, &apierror.DeserializationError{Type: typeName, Err: errNotJSON}
	}
	if err := checkRequired(typeName, out, gjson.ParseBytes(body)); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, &apierror.DeserializationError{Type: typeName, Err: err}
	}
	return out, nil
}

// DecodeList parses a JSON array, checking each element like Decode.
func DecodeList[T any](body []byte) ([]T, error) {
	typeName := "[]" + reflect.TypeFor[T]().String()
	if !gjson.ValidBytes(body) {
		return nil, &apierror.DeserializationError{Type: typeName, Err: errNotJSON}
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, &apierror.DeserializationError{Type: typeName, Err: errors.New("expected a JSON array")}
	}

	out := make([]T, 0, len(root.Array()))
	for _, item := range root.Array() {
		v, err := Decode[T]([]byte(item.Raw))
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// DecodeMap parses a JSON object whose values are T, checking each value
// like Decode.
func DecodeMap[T any](body []byte) (map[string]T, error) {
	typeName := "map[string]" + reflect.TypeFor[T]().String()
	if !gjson.ValidBytes(body) {
		return nil, &apierror.DeserializationError{Type: typeName, Err: errNotJSON}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, &apierror.DeserializationError{Type: typeName, Err: errors.New("expected a JSON object")}
	}

	out := make(map[string]T)
	var decodeErr error
	root.ForEach(func(key, value gjson.Result) bool {
		v, err := Decode[T]([]byte(value.Raw))
		if err != nil {
			decodeErr = err
			return false
		}
		out[key.String()] = *v
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return out, nil
}

func checkRequired(typeName string, target any, root gjson.Result) error {
	schema, ok := target.(models.Schema)
	if !ok {
		return nil
	}

	var missing []string
	for _, path := range schema.RequiredFields() {
		r := root.Get(path)
		if !r.Exists() || r.Type == gjson.Null {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return &apierror.DeserializationError{Type: typeName, Missing: missing}
	}
	return nil
}
