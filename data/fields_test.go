package data

import (
	"testing"
)

// TestObjectFieldMatrix pins the alias/default matrix so any change to
// the accepted input spellings or the optional set shows up here.
func TestObjectFieldMatrix(t *testing.T) {
	expected := map[string]struct {
		aliases  []string
		optional bool
	}{
		"headers":       {nil, false},
		"key":           {nil, false},
		"mtime":         {nil, false},
		"name":          {nil, false},
		"creator":       {nil, false},
		"dirname":       {nil, false},
		"owner":         {nil, false},
		"roles":         {nil, false},
		"vnode":         {nil, false},
		"contentLength": {[]string{"content_length"}, true},
		"contentMd5":    {[]string{"contentMD5", "content_md5"}, true},
		"contentType":   {[]string{"content_type"}, true},
		"objectId":      {[]string{"object_id"}, true},
		"etag":          {nil, true},
		"sharks":        {nil, true},
		"objType":       {[]string{"type", "obj_type"}, true},
	}

	if len(objectFields) != len(expected) {
		t.Fatalf("Expected %d object fields, got %d", len(expected), len(objectFields))
	}

	for _, spec := range objectFields {
		want, ok := expected[spec.Key]
		if !ok {
			t.Errorf("Unexpected field %q in matrix", spec.Key)
			continue
		}
		if spec.Optional != want.optional {
			t.Errorf("Field %q: expected optional=%v, got %v", spec.Key, want.optional, spec.Optional)
		}
		if len(spec.Aliases) != len(want.aliases) {
			t.Errorf("Field %q: expected aliases %v, got %v", spec.Key, want.aliases, spec.Aliases)
			continue
		}
		for i, alias := range want.aliases {
			if spec.Aliases[i] != alias {
				t.Errorf("Field %q: expected alias %q at %d, got %q", spec.Key, alias, i, spec.Aliases[i])
			}
		}
	}
}

func TestDirectoryFieldMatrix(t *testing.T) {
	expected := []string{
		"creator", "dirname", "headers", "key",
		"mtime", "name", "owner", "roles", "vnode",
	}

	if len(directoryFields) != len(expected) {
		t.Fatalf("Expected %d directory fields, got %d", len(expected), len(directoryFields))
	}

	for i, key := range expected {
		spec := directoryFields[i]
		if spec.Key != key {
			t.Errorf("Expected field %q at %d, got %q", key, i, spec.Key)
		}
		if spec.Optional {
			t.Errorf("Field %q: directory fields are all required", spec.Key)
		}
		if len(spec.Aliases) != 0 {
			t.Errorf("Field %q: directory fields carry no aliases, got %v", spec.Key, spec.Aliases)
		}
	}
}

// lookup must prefer the primary key over any alias when both appear.
func TestLookup_PrimaryWins(t *testing.T) {
	raw, err := parseRaw([]byte(`{"contentLength": 1, "content_length": 2}`))
	if err != nil {
		t.Fatalf("parseRaw failed: %v", err)
	}

	got, err := raw.uint64Field(objectFields.get("contentLength"))
	if err != nil {
		t.Fatalf("uint64Field failed: %v", err)
	}
	if got != 1 {
		t.Errorf("Expected primary key value 1, got %d", got)
	}
}
