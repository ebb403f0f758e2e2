package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// FieldType enumerates the kinds of dynamic fields a share category can declare.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldSelect FieldType = "select"
)

// FieldDef is one field's definition within a category's schema.
// Options is required when Type is "select".
type FieldDef struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// FieldDefList is a category's ordered field schema, stored as a jsonb column.
type FieldDefList []FieldDef

func (l FieldDefList) Value() (driver.Value, error) {
	if l == nil {
		l = FieldDefList{}
	}
	return json.Marshal(l)
}

func (l *FieldDefList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for FieldDefList", value)
}

// ValueKind enumerates the scalar shapes a custom data value can take.
type ValueKind string

const (
	ValueText   ValueKind = "text"
	ValueNumber ValueKind = "number"
	ValueSelect ValueKind = "select"
)

// FieldValue is a single custom data scalar: free text, a number, or a
// selected option. On the wire it is a plain JSON string or number.
type FieldValue struct {
	Kind   ValueKind
	Text   string
	Number float64
}

func TextValue(s string) FieldValue {
	return FieldValue{Kind: ValueText, Text: s}
}

func NumberValue(n float64) FieldValue {
	return FieldValue{Kind: ValueNumber, Number: n}
}

func SelectValue(option string) FieldValue {
	return FieldValue{Kind: ValueSelect, Text: option}
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.Kind == ValueNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	// booleans, null and other literals are kept as their raw text
	*v = TextValue(string(data))
	return nil
}

// String renders the value for display.
func (v FieldValue) String() string {
	if v.Kind == ValueNumber {
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

// CustomEntry is one key/value pair of a resource's custom data.
type CustomEntry struct {
	Key   string
	Value FieldValue
}

// CustomData is the open per-resource payload, stored as a jsonb object.
// Keys keep their submission order and are never checked against the owning
// category's current schema; stale keys survive schema edits untouched.
type CustomData []CustomEntry

// Get returns the value stored under key.
func (d CustomData) Get(key string) (FieldValue, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return FieldValue{}, false
}

// Set replaces the value under key, or appends the pair if the key is new.
func (d *CustomData) Set(key string, v FieldValue) {
	for i, e := range *d {
		if e.Key == key {
			(*d)[i].Value = v
			return
		}
	}
	*d = append(*d, CustomEntry{Key: key, Value: v})
}

func (d CustomData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *CustomData) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("custom data must be a JSON object, got %v", tok)
	}
	out := CustomData{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected custom data key %v", keyTok)
		}
		var v FieldValue
		if err := dec.Decode(&v); err != nil {
			return err
		}
		out.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = out
	return nil
}

func (d CustomData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *CustomData) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	}
	return fmt.Errorf("unsupported type %T for CustomData", value)
}
