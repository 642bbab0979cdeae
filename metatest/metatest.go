// Package metatest manufactures structurally valid random records for
// property-based tests. Every invariant the record contracts demand is
// guaranteed by construction here — UUID identity fields hold real
// random UUIDs and storage ids are composed from pattern-valid parts —
// so a failing property always points at the model or codec, never at
// generator noise.
//
// Builders take a *rand.Rand so they plug directly into testing/quick
// configurations.
package metatest

import (
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mwantia/mantameta/data"
)

const (
	// Free-text fields draw from the full printable ASCII range.
	textAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789" +
		" !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Storage-id tokens are restricted to the characters the node
	// naming scheme permits.
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"
)

// RandomString fills a free-text field with n random printable
// characters.
func RandomString(r *rand.Rand, n int) string {
	return randomFrom(r, textAlphabet, n)
}

func randomFrom(r *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// RandomStorageLocation builds a storage-location record whose
// manta_storage_id is valid by construction: the decimal size hint
// joined with two random lowercase alphanumeric/hyphen tokens.
func RandomStorageLocation(r *rand.Rand, size int) data.StorageLocation {
	if size < 1 {
		size = 1
	}
	return data.StorageLocation{
		Datacenter: RandomString(r, size),
		MantaStorageID: fmt.Sprintf("%d.%s.%s", size,
			randomFrom(r, tokenAlphabet, size),
			randomFrom(r, tokenAlphabet, size)),
	}
}

// RandomObject builds a fully populated, structurally valid object
// record. The free-text length hint is one random byte; integer fields
// cover the full uint64 range; owner, etag and objectId are fresh
// random UUIDs; contentMD5 is the base64 MD5 digest of one of the
// random strings; sharks holds exactly two storage locations.
func RandomObject(r *rand.Rand) *data.ObjectRecord {
	n := int(r.Uint64() & 0xff)

	headers := make(map[string]string, 3)
	for i := 0; i < 3; i++ {
		headers[RandomString(r, n)] = RandomString(r, n)
	}

	digest := md5.Sum([]byte(RandomString(r, n)))

	return &data.ObjectRecord{
		Headers:       headers,
		Key:           RandomString(r, n),
		Mtime:         r.Uint64(),
		Name:          RandomString(r, n),
		Creator:       RandomString(r, n),
		Dirname:       RandomString(r, n),
		Owner:         uuid.NewString(),
		Roles:         []string{RandomString(r, n)},
		Vnode:         r.Uint64(),
		ContentLength: r.Uint64(),
		ContentMD5:    base64.StdEncoding.EncodeToString(digest[:]),
		ContentType:   RandomString(r, n),
		ObjectID:      uuid.NewString(),
		ETag:          uuid.NewString(),
		Sharks: []data.StorageLocation{
			RandomStorageLocation(r, 1+r.Intn(99)),
			RandomStorageLocation(r, 1+r.Intn(99)),
		},
		ObjType: "object",
	}
}

// RandomDirectory builds a structurally valid directory record.
func RandomDirectory(r *rand.Rand) *data.DirectoryRecord {
	n := int(r.Uint64() & 0xff)

	headers := make(map[string]string, 3)
	for i := 0; i < 3; i++ {
		headers[RandomString(r, n)] = RandomString(r, n)
	}

	return &data.DirectoryRecord{
		Creator: uuid.NewString(),
		Dirname: RandomString(r, n),
		Headers: headers,
		Key:     RandomString(r, n),
		Mtime:   r.Uint64(),
		Name:    RandomString(r, n),
		Owner:   uuid.NewString(),
		Roles:   []string{RandomString(r, n)},
		Vnode:   r.Uint64(),
	}
}
