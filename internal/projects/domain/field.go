package domain

import (
	"bytes"
	"encoding/json"
)

// Field is an unvalidated JSON value. The zero value is an absent member
// and encodes as null.
type Field []byte

var null = []byte("null")

// Text returns a Field holding the JSON string s.
func Text(s string) Field {
	b, _ := json.Marshal(s)
	return Field(b)
}

func (f Field) MarshalJSON() ([]byte, error) {
	if len(f) == 0 {
		return null, nil
	}
	return f, nil
}

func (f *Field) UnmarshalJSON(data []byte) error {
	*f = append(Field(nil), data...)
	return nil
}

// IsNull reports whether f is absent or an explicit null.
func (f Field) IsNull() bool {
	return len(f) == 0 || bytes.Equal(bytes.TrimSpace(f), null)
}

// IsBlank reports whether f is a falsy value for display purposes:
// absent, null, "", false or 0.
func (f Field) IsBlank() bool {
	if f.IsNull() {
		return true
	}
	switch v := f.value().(type) {
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	}
	return false
}

// String renders f as display text. JSON strings are unquoted, null is
// empty and any other value is returned in compact JSON form.
func (f Field) String() string {
	if f.IsNull() {
		return ""
	}
	if s, ok := f.value().(string); ok {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, f); err != nil {
		return string(f)
	}
	return buf.String()
}

func (f Field) value() any {
	var v any
	if err := json.Unmarshal(f, &v); err != nil {
		return nil
	}
	return v
}
