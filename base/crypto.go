package base

import (
	"encoding/binary"
	"encoding/hex"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/sha3"
)

// CryptoHashSize is the digest length in bytes.
const CryptoHashSize = 32

// CryptoHash is a 256-bit digest.
type CryptoHash [CryptoHashSize]byte

// CryptoHashFromWords builds a hash from four 64-bit words. Each word is
// laid out big-endian and the words keep their array order.
func CryptoHashFromWords(words [4]uint64) CryptoHash {
	var h CryptoHash
	for i, w := range words {
		binary.BigEndian.PutUint64(h[i*8:], w)
	}
	return h
}

// Words splits the hash into four 64-bit words, the inverse of
// CryptoHashFromWords.
func (h CryptoHash) Words() [4]uint64 {
	var words [4]uint64
	for i := range words {
		words[i] = binary.BigEndian.Uint64(h[i*8:])
	}
	return words
}

func (h CryptoHash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseCryptoHash decodes a 64-character hex string.
func ParseCryptoHash(s string) (CryptoHash, error) {
	var h CryptoHash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != CryptoHashSize {
		return h, hex.ErrLength
	}
	copy(h[:], b)
	return h, nil
}

var detEncMode = sync.OnceValues(func() (cbor.EncMode, error) {
	return cbor.CoreDetEncOptions().EncMode()
})

// CryptoHashOf returns the SHA3-256 digest of v's deterministic CBOR
// encoding. Equal values always hash to the same digest.
func CryptoHashOf(v any) (CryptoHash, error) {
	em, err := detEncMode()
	if err != nil {
		return CryptoHash{}, err
	}
	data, err := em.Marshal(v)
	if err != nil {
		return CryptoHash{}, err
	}
	return CryptoHash(sha3.Sum256(data)), nil
}
