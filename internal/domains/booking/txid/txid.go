// Package txid generates the short, type-prefixed transaction identifiers
// assigned to every booking and donation at submission time.
package txid

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"parish/shared/timezone"
)

const (
	suffixLength  = 6
	suffixRunes   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	millisDigits  = 1000000
	formatPattern = "%s-%06d-%s"
)

// Generate produces "<PREFIX>-<last 6 digits of epoch millis>-<6 uppercase
// base36 random chars>". Practically unique, not cryptographically guaranteed:
// two submissions in the same millisecond still differ in the random suffix.
// The unique index on transaction_id rejects the residual collision.
func Generate(prefix string) string {
	millis := timezone.Now().UnixMilli() % millisDigits

	return fmt.Sprintf(formatPattern, prefix, millis, randomSuffix())
}

func randomSuffix() string {
	suffix := make([]byte, suffixLength)
	max := big.NewInt(int64(len(suffixRunes)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			suffix[i] = suffixRunes[0]

			continue
		}

		suffix[i] = suffixRunes[n.Int64()]
	}

	return string(suffix)
}
