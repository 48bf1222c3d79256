package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Secret picks the day's secret word from dict. ok is false for an empty dict.
func Secret(date time.Time, salt string, dict []solver.Word) (w solver.Word, ok bool) {
	if len(dict) == 0 {
		return "", false
	}
	return dict[WordIndex(date, salt, len(dict))], true
}
