package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
var NewULID = func() string {
	return ulid.Make().String()
}

// TimeOf returns the creation time embedded in a ULID string.
// Run IDs are ULIDs, so this is when the run started.
func TimeOf(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()).UTC(), nil
}
