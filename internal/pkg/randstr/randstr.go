package randstr

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	Upper       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	UpperDigits = Upper + "0123456789"
)

// String returns n characters drawn uniformly from alphabet.
func String(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	limit := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			b.WriteByte(alphabet[i%len(alphabet)])
			continue
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String()
}
