package data

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// ObjectRecord represents the metadata of one stored file-like object.
// It is a plain value type: no identity beyond field equality, no
// mutation after construction. Instances come either from parsing an
// external payload or from the metatest builder.
type ObjectRecord struct {
	// Arbitrary external metadata, order-irrelevant.
	Headers map[string]string

	// Storage key of the object.
	Key string

	// Modification timestamp.
	Mtime uint64

	// Base name of the object.
	Name string

	// Creator account id (UUID-shaped when populated).
	Creator string

	// Containing directory path.
	Dirname string

	// Owner account id (UUID-shaped when populated).
	Owner string

	// Role identifiers, order-preserving.
	Roles []string

	// Virtual node the record hashes to.
	Vnode uint64

	// Content size in bytes. Defaults to 0 when absent from input.
	ContentLength uint64

	// Base64 encoding of the 16-byte MD5 digest. Defaults to empty.
	ContentMD5 string

	// MIME type. Defaults to empty.
	ContentType string

	// Object id (UUID-shaped when populated). Defaults to empty.
	ObjectID string

	// Entity tag (UUID-shaped when populated). Defaults to empty.
	ETag string

	// Physical replica locations. Defaults to an empty slice.
	Sharks []StorageLocation

	// Literal record-kind discriminator, "object" for this record.
	// Defaults to empty.
	ObjType string
}

// objectFields is the alias/default matrix for ObjectRecord. Primary
// keys are the lower-camel-case wire names; snake_case spellings are
// accepted as input aliases, plus "type" for objType. Fields not
// marked Optional must be present on input.
var objectFields = fieldTable{
	{Key: "headers"},
	{Key: "key"},
	{Key: "mtime"},
	{Key: "name"},
	{Key: "creator"},
	{Key: "dirname"},
	{Key: "owner"},
	{Key: "roles"},
	{Key: "vnode"},
	{Key: "contentLength", Aliases: []string{"content_length"}, Optional: true},
	{Key: "contentMd5", Aliases: []string{"contentMD5", "content_md5"}, Optional: true},
	{Key: "contentType", Aliases: []string{"content_type"}, Optional: true},
	{Key: "objectId", Aliases: []string{"object_id"}, Optional: true},
	{Key: "etag", Optional: true},
	{Key: "sharks", Optional: true},
	{Key: "objType", Aliases: []string{"type", "obj_type"}, Optional: true},
}

// objectWire is the canonical output shape of an ObjectRecord.
type objectWire struct {
	Headers       map[string]string `json:"headers"`
	Key           string            `json:"key"`
	Mtime         uint64            `json:"mtime"`
	Name          string            `json:"name"`
	Creator       string            `json:"creator"`
	Dirname       string            `json:"dirname"`
	Owner         string            `json:"owner"`
	Roles         []string          `json:"roles"`
	Vnode         uint64            `json:"vnode"`
	ContentLength uint64            `json:"contentLength"`
	ContentMD5    string            `json:"contentMd5"`
	ContentType   string            `json:"contentType"`
	ObjectID      string            `json:"objectId"`
	ETag          string            `json:"etag"`
	Sharks        []StorageLocation `json:"sharks"`
	ObjType       string            `json:"objType"`
}

// MarshalJSON renders the record in the external wire form. Optional
// fields are always emitted so encode output is self-contained, and
// nil collections render as their empty form so any encoded record
// decodes again.
func (o ObjectRecord) MarshalJSON() ([]byte, error) {
	headers := o.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	roles := o.Roles
	if roles == nil {
		roles = []string{}
	}
	sharks := o.Sharks
	if sharks == nil {
		sharks = []StorageLocation{}
	}

	return json.Marshal(objectWire{
		Headers:       headers,
		Key:           o.Key,
		Mtime:         o.Mtime,
		Name:          o.Name,
		Creator:       o.Creator,
		Dirname:       o.Dirname,
		Owner:         o.Owner,
		Roles:         roles,
		Vnode:         o.Vnode,
		ContentLength: o.ContentLength,
		ContentMD5:    o.ContentMD5,
		ContentType:   o.ContentType,
		ObjectID:      o.ObjectID,
		ETag:          o.ETag,
		Sharks:        sharks,
		ObjType:       o.ObjType,
	})
}

// UnmarshalJSON parses an external payload through the objectFields
// matrix. Missing required fields and wrong shapes fail with
// ErrMalformedRecord; missing optional fields take their defaults.
func (o *ObjectRecord) UnmarshalJSON(b []byte) error {
	raw, err := parseRaw(b)
	if err != nil {
		return err
	}

	var rec ObjectRecord
	if rec.Headers, err = raw.headersField(objectFields.get("headers")); err != nil {
		return err
	}
	if rec.Key, err = raw.stringField(objectFields.get("key")); err != nil {
		return err
	}
	if rec.Mtime, err = raw.uint64Field(objectFields.get("mtime")); err != nil {
		return err
	}
	if rec.Name, err = raw.stringField(objectFields.get("name")); err != nil {
		return err
	}
	if rec.Creator, err = raw.stringField(objectFields.get("creator")); err != nil {
		return err
	}
	if rec.Dirname, err = raw.stringField(objectFields.get("dirname")); err != nil {
		return err
	}
	if rec.Owner, err = raw.stringField(objectFields.get("owner")); err != nil {
		return err
	}
	if rec.Roles, err = raw.stringsField(objectFields.get("roles")); err != nil {
		return err
	}
	if rec.Vnode, err = raw.uint64Field(objectFields.get("vnode")); err != nil {
		return err
	}
	if rec.ContentLength, err = raw.uint64Field(objectFields.get("contentLength")); err != nil {
		return err
	}
	if rec.ContentMD5, err = raw.stringField(objectFields.get("contentMd5")); err != nil {
		return err
	}
	if rec.ContentType, err = raw.stringField(objectFields.get("contentType")); err != nil {
		return err
	}
	if rec.ObjectID, err = raw.stringField(objectFields.get("objectId")); err != nil {
		return err
	}
	if rec.ETag, err = raw.stringField(objectFields.get("etag")); err != nil {
		return err
	}
	if rec.Sharks, err = raw.sharksField(objectFields.get("sharks")); err != nil {
		return err
	}
	if rec.ObjType, err = raw.stringField(objectFields.get("objType")); err != nil {
		return err
	}

	*o = rec
	return nil
}

// Equal reports field-wise equality. Header order and nil-versus-empty
// distinctions do not matter; shark order does.
func (o *ObjectRecord) Equal(other *ObjectRecord) bool {
	if o == nil || other == nil {
		return o == other
	}
	return maps.Equal(o.Headers, other.Headers) &&
		o.Key == other.Key &&
		o.Mtime == other.Mtime &&
		o.Name == other.Name &&
		o.Creator == other.Creator &&
		o.Dirname == other.Dirname &&
		o.Owner == other.Owner &&
		slices.Equal(o.Roles, other.Roles) &&
		o.Vnode == other.Vnode &&
		o.ContentLength == other.ContentLength &&
		o.ContentMD5 == other.ContentMD5 &&
		o.ContentType == other.ContentType &&
		o.ObjectID == other.ObjectID &&
		o.ETag == other.ETag &&
		slices.Equal(o.Sharks, other.Sharks) &&
		o.ObjType == other.ObjType
}

// Clone creates a deep copy of the record.
func (o *ObjectRecord) Clone() *ObjectRecord {
	clone := *o
	if o.Headers != nil {
		clone.Headers = maps.Clone(o.Headers)
	}
	clone.Roles = slices.Clone(o.Roles)
	clone.Sharks = slices.Clone(o.Sharks)
	return &clone
}

func (o ObjectRecord) String() string {
	type plain ObjectRecord
	return fmt.Sprintf("%+v", plain(o))
}
