// Package hasher derives short content digests for encoded images.
package hasher

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// DigestLen is the length of a full digest in hex characters (64 bits).
const DigestLen = 16

// ShortLen is the digest prefix used in output file names.
const ShortLen = 8

// Digest returns the xxHash64 of data as 16 lowercase hex characters.
// Identical encodes always produce identical digests, so outputs can be
// content-addressed.
func Digest(data []byte) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64(data))
	return hex.EncodeToString(b[:])
}

// Short truncates a digest to ShortLen characters.
func Short(digest string) string {
	if len(digest) > ShortLen {
		return digest[:ShortLen]
	}
	return digest
}
