package data

import "fmt"

// StorageLocation identifies one physical replica of a stored object.
// MantaStorageID follows the "<length>.<token>.<token>" node naming
// scheme (decimal integer, then two lowercase alphanumeric/hyphen
// tokens). Validity is a contract on producers; the type itself does
// not validate.
type StorageLocation struct {
	Datacenter     string `json:"datacenter"`
	MantaStorageID string `json:"manta_storage_id"`
}

func (s StorageLocation) Equal(other StorageLocation) bool {
	return s == other
}

func (s StorageLocation) Clone() StorageLocation {
	return s
}

func (s StorageLocation) String() string {
	return fmt.Sprintf("%s/%s", s.Datacenter, s.MantaStorageID)
}
