package draw

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// SeedFromString hashes arbitrary text into a seed. The first eight bytes
// of the SHA-256 digest are read little-endian.
func SeedFromString(s string) uint64 {
	sum := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(sum[:8])
}

// SeedForQuestion derives a seed from the current time, the question, and
// an optional invocation. entropyBytes adds that many random bytes so two
// identical questions in the same second still diverge; 0 keeps the seed
// fully determined by its inputs.
func SeedForQuestion(question, invocation string, entropyBytes int) (uint64, error) {
	data := strconv.FormatInt(time.Now().Unix(), 10) + question
	if invocation != "" {
		data += "|" + invocation
	}
	if entropyBytes > 0 {
		buf := make([]byte, entropyBytes)
		if _, err := rand.Read(buf); err != nil {
			return 0, fmt.Errorf("reading entropy: %w", err)
		}
		data += hex.EncodeToString(buf)
	}
	return SeedFromString(data), nil
}
