package data

import (
	"encoding/json"
)

// fieldSpec is one row of the alias/default matrix for a record type.
// The primary key is the lower-camel-case wire name; aliases are the
// additional input spellings accepted for the same field. Optional
// fields fall back to their zero value when no key is present,
// required fields fail the decode instead.
type fieldSpec struct {
	Key      string
	Aliases  []string
	Optional bool
}

type fieldTable []fieldSpec

// get returns the spec for the given primary key. The tables are fixed
// at compile time, so a miss is a programming error.
func (t fieldTable) get(key string) fieldSpec {
	for _, spec := range t {
		if spec.Key == key {
			return spec
		}
	}
	panic("data: unknown field " + key)
}

// rawRecord holds the undecoded top-level keys of one wire payload.
type rawRecord map[string]json.RawMessage

func parseRaw(b []byte) (rawRecord, error) {
	var raw rawRecord
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, malformedf("not a JSON object: %v", err)
	}
	return raw, nil
}

// lookup resolves a field against the payload: primary key first, then
// each alias in order. JSON null is treated the same as a wrong shape
// by the typed readers below, never as "absent".
func (r rawRecord) lookup(spec fieldSpec) (json.RawMessage, bool) {
	if raw, ok := r[spec.Key]; ok {
		return raw, true
	}
	for _, alias := range spec.Aliases {
		if raw, ok := r[alias]; ok {
			return raw, true
		}
	}
	return nil, false
}

func (r rawRecord) stringField(spec fieldSpec) (string, error) {
	raw, ok := r.lookup(spec)
	if !ok {
		if spec.Optional {
			return "", nil
		}
		return "", malformedf("missing required field %q", spec.Key)
	}
	var s string
	if string(raw) == "null" {
		return "", malformedf("field %q: expected string, got null", spec.Key)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", malformedf("field %q: expected string", spec.Key)
	}
	return s, nil
}

func (r rawRecord) uint64Field(spec fieldSpec) (uint64, error) {
	raw, ok := r.lookup(spec)
	if !ok {
		if spec.Optional {
			return 0, nil
		}
		return 0, malformedf("missing required field %q", spec.Key)
	}
	if string(raw) == "null" {
		return 0, malformedf("field %q: expected unsigned integer, got null", spec.Key)
	}
	var u uint64
	if err := json.Unmarshal(raw, &u); err != nil {
		return 0, malformedf("field %q: expected unsigned integer", spec.Key)
	}
	return u, nil
}

func (r rawRecord) stringsField(spec fieldSpec) ([]string, error) {
	raw, ok := r.lookup(spec)
	if !ok {
		if spec.Optional {
			return []string{}, nil
		}
		return nil, malformedf("missing required field %q", spec.Key)
	}
	if string(raw) == "null" {
		return nil, malformedf("field %q: expected array of strings, got null", spec.Key)
	}
	s := []string{}
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, malformedf("field %q: expected array of strings", spec.Key)
	}
	return s, nil
}

func (r rawRecord) headersField(spec fieldSpec) (map[string]string, error) {
	raw, ok := r.lookup(spec)
	if !ok {
		if spec.Optional {
			return map[string]string{}, nil
		}
		return nil, malformedf("missing required field %q", spec.Key)
	}
	if string(raw) == "null" {
		return nil, malformedf("field %q: expected object, got null", spec.Key)
	}
	m := map[string]string{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, malformedf("field %q: expected object of string values", spec.Key)
	}
	return m, nil
}

func (r rawRecord) sharksField(spec fieldSpec) ([]StorageLocation, error) {
	raw, ok := r.lookup(spec)
	if !ok {
		if spec.Optional {
			return []StorageLocation{}, nil
		}
		return nil, malformedf("missing required field %q", spec.Key)
	}
	if string(raw) == "null" {
		return nil, malformedf("field %q: expected array, got null", spec.Key)
	}
	locs := []StorageLocation{}
	if err := json.Unmarshal(raw, &locs); err != nil {
		return nil, malformedf("field %q: expected array of storage locations", spec.Key)
	}
	return locs, nil
}
