package internal

import (
	"fmt"
	"reflect"
	"strings"
)

// BindToStruct binds configuration values to struct fields using env tags.
func BindToStruct(snapshot map[string]string, target any) error {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be a pointer to struct")
	}

	return bindStructFields(snapshot, targetValue.Elem())
}

// bindStructFields recursively binds configuration values to struct fields.
func bindStructFields(snapshot map[string]string, structValue reflect.Value) error {
	structType := structValue.Type()

	for i := 0; i < structValue.NumField(); i++ {
		field := structValue.Field(i)
		fieldType := structType.Field(i)

		if !field.CanSet() {
			continue
		}

		envTag := fieldType.Tag.Get("env")

		// Nested structs without their own tag are walked.
		if field.Kind() == reflect.Struct && envTag == "" {
			if err := bindStructFields(snapshot, field); err != nil {
				return fmt.Errorf("failed to bind nested struct %s: %w", fieldType.Name, err)
			}
			continue
		}

		if envTag == "" || envTag == "-" {
			continue
		}

		value, exists := snapshot[envTag]
		if !exists {
			value = fieldType.Tag.Get("default")
		}

		if err := setFieldValue(field, value); err != nil {
			return fmt.Errorf("failed to set field %s from %s: %w", fieldType.Name, envTag, err)
		}
	}

	return nil
}

// setFieldValue sets a string or []string field from a string.
func setFieldValue(field reflect.Value, value string) error {
	if value == "" {
		return nil // Keep current value
	}

	switch {
	case field.Kind() == reflect.String:
		field.SetString(value)
	case field.Kind() == reflect.Slice && field.Type().Elem().Kind() == reflect.String:
		field.Set(reflect.ValueOf(SplitList(value)))
	default:
		return fmt.Errorf("unsupported field type: %s", field.Type())
	}

	return nil
}

// SplitList splits a comma-separated list, trimming blanks and dropping
// empty items.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
