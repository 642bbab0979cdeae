package data

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which record shape an Entry carries.
type Kind int

const (
	KindObject    Kind = iota // File-like object record
	KindDirectory             // Directory record
	KindInvalid               // Entry holding neither variant
)

// Wire values of the union discriminator. Matching is exact and
// case-sensitive; anything else fails deserialization.
const (
	kindTagObject    = "object"
	kindTagDirectory = "directory"
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return kindTagObject
	case KindDirectory:
		return kindTagDirectory
	default:
		return "unknown"
	}
}

// Entry is the tagged union over the two record shapes stored in the
// metadata tier. Exactly one of Object and Directory is non-nil; the
// "type" key on the wire selects which.
//
// Note that for object payloads the discriminator key doubles as the
// alias of the record's own objType field, so a single "type":"object"
// key both selects the variant and populates ObjType.
type Entry struct {
	Object    *ObjectRecord
	Directory *DirectoryRecord
}

// Kind reports the variant held by the entry, or KindInvalid for an
// entry holding neither.
func (e *Entry) Kind() Kind {
	switch {
	case e.Object != nil:
		return KindObject
	case e.Directory != nil:
		return KindDirectory
	default:
		return KindInvalid
	}
}

// MarshalJSON renders the held record with the union discriminator
// re-emitted alongside its fields.
func (e Entry) MarshalJSON() ([]byte, error) {
	var (
		inner []byte
		tag   string
		err   error
	)
	switch {
	case e.Object != nil:
		inner, err = json.Marshal(e.Object)
		tag = kindTagObject
	case e.Directory != nil:
		inner, err = json.Marshal(e.Directory)
		tag = kindTagDirectory
	default:
		return nil, malformedf("empty union entry")
	}
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(inner, &fields); err != nil {
		return nil, err
	}
	fields["type"], err = json.Marshal(tag)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// UnmarshalJSON dispatches on the "type" discriminator and parses the
// matching record shape from the full payload.
func (e *Entry) UnmarshalJSON(b []byte) error {
	raw, err := parseRaw(b)
	if err != nil {
		return err
	}

	rawTag, ok := raw["type"]
	if !ok {
		return malformedf(`missing union discriminator "type"`)
	}
	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil {
		return malformedf(`union discriminator "type": expected string`)
	}

	switch tag {
	case kindTagObject:
		var rec ObjectRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			return err
		}
		*e = Entry{Object: &rec}
	case kindTagDirectory:
		var rec DirectoryRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			return err
		}
		*e = Entry{Directory: &rec}
	default:
		return malformedf("unrecognized record type %q", tag)
	}
	return nil
}

// Equal reports equality of kind and held record.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Object.Equal(other.Object) && e.Directory.Equal(other.Directory)
}

// Clone creates a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := Entry{}
	if e.Object != nil {
		clone.Object = e.Object.Clone()
	}
	if e.Directory != nil {
		clone.Directory = e.Directory.Clone()
	}
	return &clone
}

func (e Entry) String() string {
	switch {
	case e.Object != nil:
		return fmt.Sprintf("%s%s", kindTagObject, e.Object)
	case e.Directory != nil:
		return fmt.Sprintf("%s%s", kindTagDirectory, e.Directory)
	default:
		return "empty"
	}
}
