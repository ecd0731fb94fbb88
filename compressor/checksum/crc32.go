// Package checksum provides the CRC-32 used for end-to-end integrity checks of
// .comp files. It is the reflected IEEE polynomial (0xEDB88320), the same one
// gzip and zip use, and is not meant to resist tampering.
package checksum

import (
	"hash"
	"hash/crc32"
)

var table = crc32.MakeTable(crc32.IEEE)

// CRC32 returns the checksum of b. The empty input yields 0.
func CRC32(b []byte) uint32 {
	return crc32.Checksum(b, table)
}

// New returns a running CRC-32 with the same parameters as CRC32.
func New() hash.Hash32 {
	return crc32.New(table)
}
