// Package serializer converts between JSON wire payloads and domain records.
//
// Decoding happens in two passes. The first walks the declared fields of the
// payload struct and decodes each one on its own, so that a missing or
// mistyped field is reported against its name instead of aborting the whole
// body. The second runs the govalidator struct tags for content rules.
package serializer

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"clinic/domain"

	"github.com/asaskevich/govalidator"
	"github.com/bytedance/sonic"
)

const msgRequired = "This field is required."

// invalidMessager lets a field type describe its own decode failure.
type invalidMessager interface {
	InvalidMessage() string
}

// FromWire validates body against the payload type P and returns the record it describes.
func FromWire[T any, P domain.Payload[T]](body []byte) (*T, error) {
	var payload P
	if verr := Decode(body, &payload); verr != nil {
		return nil, verr
	}
	rec := payload.ToRecord()
	return &rec, nil
}

// ToWire encodes a record as its wire payload.
func ToWire(rec any) ([]byte, error) {
	b, err := sonic.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("could not encode payload: %w", err)
	}
	return b, nil
}

// Decode fills dst, a pointer to a struct, from the JSON object in body.
// Fields of bool or pointer type are optional, every other declared field is required.
// String fields carrying valid tags are trimmed before their rules run, so a
// whitespace-only value counts as blank. Unknown keys are ignored. It returns
// nil when dst is valid.
func Decode(body []byte, dst any) domain.ValidationError {
	verr := domain.ValidationError{}

	var raw map[string]json.RawMessage
	if err := sonic.Unmarshal(body, &raw); err != nil || raw == nil {
		verr.Add(domain.NonFieldErrors, invalidBodyMessage(body))
		return verr
	}

	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	names := make(map[string]string, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := wireName(field)
		if name == "" {
			continue
		}
		names[field.Name] = name

		value, ok := raw[name]
		if !ok || isNull(value) {
			if !optional(field.Type) {
				verr.Add(name, msgRequired)
			}
			continue
		}

		target := v.Field(i).Addr().Interface()
		if err := sonic.Unmarshal(value, target); err != nil {
			verr.Add(name, invalidMessage(field.Type))
			continue
		}
		if field.Type.Kind() == reflect.String && validated(field) {
			v.Field(i).SetString(strings.TrimSpace(v.Field(i).String()))
		}
	}

	if _, err := govalidator.ValidateStruct(dst); err != nil {
		for field, msg := range govalidator.ErrorsByField(err) {
			name := field
			if wire, ok := names[field]; ok {
				name = wire
			}
			if !verr.Has(name) {
				verr.Add(name, msg)
			}
		}
	}

	if len(verr) == 0 {
		return nil
	}
	return verr
}

func wireName(field reflect.StructField) string {
	if !field.IsExported() {
		return ""
	}
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return field.Name
}

func validated(field reflect.StructField) bool {
	tag := field.Tag.Get("valid")
	return tag != "" && tag != "-"
}

func optional(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.Pointer:
		return true
	}
	return false
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func invalidMessage(t reflect.Type) string {
	if m, ok := reflect.New(t).Elem().Interface().(invalidMessager); ok {
		return m.InvalidMessage()
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	}
	return "Invalid value."
}

func invalidBodyMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	switch {
	case trimmed == "":
		return "No data provided."
	case strings.HasPrefix(trimmed, "["):
		return "Invalid data. Expected a dictionary, but got list."
	case strings.HasPrefix(trimmed, "{"):
		return "JSON parse error."
	}
	return "Invalid data. Expected a dictionary."
}
