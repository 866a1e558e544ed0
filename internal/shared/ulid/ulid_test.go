package ulid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULID_RoundTripsTime(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC().Truncate(time.Millisecond)
	id := NewULID()
	after := time.Now().UTC()

	assert.Len(t, id, 26)

	created, err := TimeOf(id)
	require.NoError(t, err)
	assert.False(t, created.Before(before))
	assert.False(t, created.After(after))
}

func TestTimeOf_Invalid(t *testing.T) {
	t.Parallel()

	_, err := TimeOf("not-a-ulid")
	assert.Error(t, err)
}
