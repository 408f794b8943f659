package service

import (
	"crypto/rand"
	"math/big"
	"time"
)

const tempPasswordLength = 8

// tempPasswordSuffix guarantees at least one uppercase letter, one
// digit, and one symbol so the result clears the minimal complexity
// policy.
const tempPasswordSuffix = "Aa1!"

const base36 = "abcdefghijklmnopqrstuvwxyz0123456789"

// TempPassword returns a display-layer temporary password: a random
// base-36 string with a fixed complexity suffix. It exists for
// UI-facing callers that seed a credential before submitting a
// create-user request; the provisioning service itself never generates
// passwords and rejects requests without one. Not a security-grade
// generator.
func TempPassword() string {
	b := make([]byte, tempPasswordLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			// fallback: derive from the clock
			b[i] = base36[int(time.Now().UnixNano()>>uint(i))%len(base36)]
			continue
		}
		b[i] = base36[n.Int64()]
	}
	return string(b) + tempPasswordSuffix
}
