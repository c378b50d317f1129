/*
Package digest provides fixed-width checksums over raw bytes, used to map keys
to hash buckets.

Every digest is a pure function of its input and a seed. For the CRC digests
the seed is the initial register value. CRC64 applies no final inversion, so
its results chain directly:

	d := digest.CRC64(part2, digest.CRC64(part1, 0))

yields the same result as digesting the concatenation of both parts.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package digest

import (
	"errors"
	"fmt"
	"hash/crc32"
	"hash/crc64"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Func is a digest provider. 32-bit digests are returned in the lower half
// of the result.
type Func func(data []byte, seed uint64) uint64

// ErrUnknownDigest is returned by ByName for an unsupported digest name.
var ErrUnknownDigest = errors.New("digest: unknown digest")

const (
	// Seed32 is the customary initial register value for CRC32.
	Seed32 = 0xFFFFFFFF
	// Seed64 is the customary initial register value for CRC64.
	Seed64 = 0
)

// jonesPoly is the CRC-64/Jones polynomial 0xAD93D23594C935A9 in reversed
// (LSB-first) notation, as expected by crc64.MakeTable.
const jonesPoly = 0x95AC9329AC4BC9B5

var jonesTable = crc64.MakeTable(jonesPoly)

// CRC32 computes CRC-32/IEEE with seed as initial register value.
// With Seed32 this is the standard checksum; "123456789" yields 0xCBF43926.
func CRC32(data []byte, seed uint64) uint64 {
	// crc32.Update inverts its crc argument on entry
	return uint64(crc32.Update(^uint32(seed), crc32.IEEETable, data))
}

// CRC64 computes CRC-64/Jones (reflected, no final inversion) with seed as
// initial register value. With Seed64, "123456789" yields 0xE9C6D914C4B8D9CA.
func CRC64(data []byte, seed uint64) uint64 {
	// crc64.Update inverts on entry and exit; undo both
	return ^crc64.Update(^seed, jonesTable, data)
}

// XXH64 computes the 64-bit xxHash of data with the given seed.
func XXH64(data []byte, seed uint64) uint64 {
	d := xxhash.NewWithSeed(seed)
	d.Write(data)
	return d.Sum64()
}

// Names lists the digests known to ByName.
func Names() []string {
	return []string{"crc32", "crc64", "xxh64"}
}

// ByName returns a digest and its customary seed by name
// ("crc32", "crc64", "xxh64"; case-insensitive).
func ByName(name string) (Func, uint64, error) {
	switch strings.ToLower(name) {
	case "crc32":
		return CRC32, Seed32, nil
	case "crc64", "":
		return CRC64, Seed64, nil
	case "xxh64", "xxhash":
		return XXH64, 0, nil
	}
	return nil, 0, fmt.Errorf("%w: %q", ErrUnknownDigest, name)
}
