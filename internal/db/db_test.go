package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Booking start/end columns are stored as timestamptz, and Postgres has no
// tsrange overload for timestamptz arguments. The constraint DDL must use
// tstzrange or the DO block fails and the database-level overlap guard
// silently disappears.
func TestOverlapConstraintUsesTimestamptzRange(t *testing.T) {
	assert.Contains(t, overlapConstraintDDL, "tstzrange(start_time, end_time)")
	assert.NotContains(t, overlapConstraintDDL, "tsrange(start_time")

	assert.Contains(t, overlapConstraintDDL, "EXCLUDE USING gist")
	assert.Contains(t, overlapConstraintDDL, "barber WITH =")
}
