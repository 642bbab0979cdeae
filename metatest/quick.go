package metatest

import (
	"math/rand"
	"reflect"

	"github.com/mwantia/mantameta/data"
)

// Wrappers implementing testing/quick's Generator interface, so record
// values drop straight into quick.Check properties.

type Object struct {
	*data.ObjectRecord
}

type StorageLocation struct {
	data.StorageLocation
}

type Directory struct {
	*data.DirectoryRecord
}

func (Object) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Object{RandomObject(r)})
}

func (StorageLocation) Generate(r *rand.Rand, size int) reflect.Value {
	if size < 1 {
		size = 1
	}
	return reflect.ValueOf(StorageLocation{RandomStorageLocation(r, 1+r.Intn(size))})
}

func (Directory) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(Directory{RandomDirectory(r)})
}
