package data

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// DirectoryRecord represents the metadata of one directory. It carries
// the ownership subset of ObjectRecord and none of the content or
// replica fields. Every field is required on input.
type DirectoryRecord struct {
	Creator string
	Dirname string
	Headers map[string]string
	Key     string
	Mtime   uint64
	Name    string
	Owner   string
	Roles   []string
	Vnode   uint64
}

// directoryFields is the field matrix for DirectoryRecord. All fields
// are single words on the wire, so there are no aliases and no
// defaults.
var directoryFields = fieldTable{
	{Key: "creator"},
	{Key: "dirname"},
	{Key: "headers"},
	{Key: "key"},
	{Key: "mtime"},
	{Key: "name"},
	{Key: "owner"},
	{Key: "roles"},
	{Key: "vnode"},
}

type directoryWire struct {
	Creator string            `json:"creator"`
	Dirname string            `json:"dirname"`
	Headers map[string]string `json:"headers"`
	Key     string            `json:"key"`
	Mtime   uint64            `json:"mtime"`
	Name    string            `json:"name"`
	Owner   string            `json:"owner"`
	Roles   []string          `json:"roles"`
	Vnode   uint64            `json:"vnode"`
}

// MarshalJSON renders the record in the external wire form. Nil
// collections render as their empty form so any encoded record
// decodes again.
func (d DirectoryRecord) MarshalJSON() ([]byte, error) {
	headers := d.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	roles := d.Roles
	if roles == nil {
		roles = []string{}
	}

	return json.Marshal(directoryWire{
		Creator: d.Creator,
		Dirname: d.Dirname,
		Headers: headers,
		Key:     d.Key,
		Mtime:   d.Mtime,
		Name:    d.Name,
		Owner:   d.Owner,
		Roles:   roles,
		Vnode:   d.Vnode,
	})
}

func (d *DirectoryRecord) UnmarshalJSON(b []byte) error {
	raw, err := parseRaw(b)
	if err != nil {
		return err
	}

	var rec DirectoryRecord
	if rec.Creator, err = raw.stringField(directoryFields.get("creator")); err != nil {
		return err
	}
	if rec.Dirname, err = raw.stringField(directoryFields.get("dirname")); err != nil {
		return err
	}
	if rec.Headers, err = raw.headersField(directoryFields.get("headers")); err != nil {
		return err
	}
	if rec.Key, err = raw.stringField(directoryFields.get("key")); err != nil {
		return err
	}
	if rec.Mtime, err = raw.uint64Field(directoryFields.get("mtime")); err != nil {
		return err
	}
	if rec.Name, err = raw.stringField(directoryFields.get("name")); err != nil {
		return err
	}
	if rec.Owner, err = raw.stringField(directoryFields.get("owner")); err != nil {
		return err
	}
	if rec.Roles, err = raw.stringsField(directoryFields.get("roles")); err != nil {
		return err
	}
	if rec.Vnode, err = raw.uint64Field(directoryFields.get("vnode")); err != nil {
		return err
	}

	*d = rec
	return nil
}

// Equal reports field-wise equality.
func (d *DirectoryRecord) Equal(other *DirectoryRecord) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Creator == other.Creator &&
		d.Dirname == other.Dirname &&
		maps.Equal(d.Headers, other.Headers) &&
		d.Key == other.Key &&
		d.Mtime == other.Mtime &&
		d.Name == other.Name &&
		d.Owner == other.Owner &&
		slices.Equal(d.Roles, other.Roles) &&
		d.Vnode == other.Vnode
}

// Clone creates a deep copy of the record.
func (d *DirectoryRecord) Clone() *DirectoryRecord {
	clone := *d
	if d.Headers != nil {
		clone.Headers = maps.Clone(d.Headers)
	}
	clone.Roles = slices.Clone(d.Roles)
	return &clone
}

func (d DirectoryRecord) String() string {
	type plain DirectoryRecord
	return fmt.Sprintf("%+v", plain(d))
}
