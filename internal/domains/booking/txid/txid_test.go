package txid_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"parish/internal/domains/booking/txid"
)

var referencePattern = regexp.MustCompile(`^WD-\d{6}-[0-9A-Z]{6}$`)

func TestGenerateFormat(t *testing.T) {
	reference := txid.Generate("WD")

	assert.Regexp(t, referencePattern, reference)
}

func TestGenerateDistinctWithinSameMillisecond(t *testing.T) {
	seen := map[string]bool{}

	// The timestamp component repeats within a millisecond, so distinctness
	// rides on the random suffix.
	for range 100 {
		reference := txid.Generate("BP")

		assert.False(t, seen[reference], "duplicate reference %s", reference)
		seen[reference] = true
	}
}

func TestGenerateUsesPrefix(t *testing.T) {
	assert.Regexp(t, `^CN-`, txid.Generate("CN"))
	assert.Regexp(t, `^DN-`, txid.Generate("DN"))
}
