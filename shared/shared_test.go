package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parish/shared"
)

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 0))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(11, 10))
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Status     string `db:"status"`
		PriestName string `db:"priest_name"`
		Attendees  int    `db:"attendees"`
		Internal   string
	}

	fields := shared.TransformFields(update{Status: "confirmed", PriestName: "Fr. Jose Garcia"}, "staff@parish.ph")

	assert.Equal(t, "confirmed", fields["status"])
	assert.Equal(t, "Fr. Jose Garcia", fields["priest_name"])

	// zero values and untagged fields never reach the update
	assert.NotContains(t, fields, "attendees")
	assert.NotContains(t, fields, "Internal")

	require.Contains(t, fields, "modified_at")
	assert.Equal(t, "staff@parish.ph", fields["modified_by"])
}
