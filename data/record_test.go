package data

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const minimalDirectoryJSON = `{
	"type": "directory",
	"creator": "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
	"dirname": "/acct/stor",
	"headers": {},
	"key": "/acct/stor/photos",
	"mtime": 1559063805,
	"name": "photos",
	"owner": "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
	"roles": [],
	"vnode": 12
}`

func TestEntry_DecodeDirectory(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(minimalDirectoryJSON), &e); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if e.Kind() != KindDirectory {
		t.Fatalf("Expected directory kind, got %v", e.Kind())
	}
	if e.Directory == nil || e.Object != nil {
		t.Fatal("Expected only the Directory variant populated")
	}
	if e.Directory.Name != "photos" {
		t.Errorf("Expected name %q, got %q", "photos", e.Directory.Name)
	}
	if e.Directory.Vnode != 12 {
		t.Errorf("Expected vnode 12, got %d", e.Directory.Vnode)
	}
}

// TestEntry_DecodeObject verifies variant dispatch and that the single
// "type" key also feeds the record's own objType field through its
// alias.
func TestEntry_DecodeObject(t *testing.T) {
	payload := minimalObjectJSON[:len(minimalObjectJSON)-2] + ",\n" + `"type": "object"` + "\n}"

	var e Entry
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if e.Kind() != KindObject {
		t.Fatalf("Expected object kind, got %v", e.Kind())
	}
	if e.Object == nil || e.Directory != nil {
		t.Fatal("Expected only the Object variant populated")
	}
	if e.Object.ObjType != "object" {
		t.Errorf("Expected objType %q, got %q", "object", e.Object.ObjType)
	}
}

func TestEntry_UnknownDiscriminator(t *testing.T) {
	cases := []struct {
		name string
		tag  string
	}{
		{"unknown value", `"unknown"`},
		{"case mismatch", `"Object"`},
		{"non-string", `5`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := `{"type": ` + tc.tag + `, "key": "/acct/stor/x"}`

			var e Entry
			err := json.Unmarshal([]byte(payload), &e)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("Expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}

// An entry holding neither variant must not report itself as an
// object.
func TestEntry_InvalidKind(t *testing.T) {
	var e Entry
	if e.Kind() != KindInvalid {
		t.Errorf("Expected KindInvalid for empty entry, got %v", e.Kind())
	}
}

func TestEntry_MissingDiscriminator(t *testing.T) {
	var e Entry
	err := json.Unmarshal([]byte(minimalObjectJSON), &e)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Expected ErrMalformedRecord, got %v", err)
	}
}

func TestEntry_MarshalRoundTrip(t *testing.T) {
	entries := []Entry{
		{Object: &ObjectRecord{
			Headers: map[string]string{"m-k": "v"},
			Key:     "/acct/stor/obj1",
			Mtime:   100,
			Name:    "obj1",
			Creator: "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
			Dirname: "/acct/stor",
			Owner:   "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
			Roles:   []string{},
			Vnode:   1,
			Sharks:  []StorageLocation{},
			ObjType: "object",
		}},
		{Directory: &DirectoryRecord{
			Creator: "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
			Dirname: "/acct/stor",
			Headers: map[string]string{},
			Key:     "/acct/stor/photos",
			Mtime:   200,
			Name:    "photos",
			Owner:   "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
			Roles:   []string{"operator"},
			Vnode:   2,
		}},
	}

	for _, entry := range entries {
		b, err := json.Marshal(entry)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}

		var got Entry
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}

		if !got.Equal(&entry) {
			t.Errorf("Round trip mismatch:\n%s", cmp.Diff(entry, got))
		}
	}
}

func TestDirectoryRecord_MissingRequired(t *testing.T) {
	payload := `{
		"creator": "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
		"dirname": "/acct/stor",
		"headers": {},
		"key": "/acct/stor/photos",
		"mtime": 1559063805,
		"name": "photos",
		"owner": "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
		"roles": []
	}`

	var rec DirectoryRecord
	err := json.Unmarshal([]byte(payload), &rec)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Expected ErrMalformedRecord for missing vnode, got %v", err)
	}
}

func TestDirectoryRecord_Clone(t *testing.T) {
	rec := DirectoryRecord{
		Creator: "8d8b32a0-a7cc-4e0a-abc8-1f84f8ed1bb0",
		Headers: map[string]string{"m-k": "v"},
		Roles:   []string{"operator"},
	}

	clone := rec.Clone()
	if !clone.Equal(&rec) {
		t.Fatalf("Clone differs from original:\n%s", cmp.Diff(rec, *clone))
	}

	clone.Headers["m-k"] = "changed"
	clone.Roles[0] = "changed"
	if rec.Headers["m-k"] != "v" || rec.Roles[0] != "operator" {
		t.Error("Mutating the clone leaked into the original")
	}
}
