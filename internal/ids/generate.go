package ids

import "github.com/google/uuid"

// New returns a random (version 4) UUID in its canonical lowercase form.
// IDs never depend on creation time, so rapid successive calls cannot collide.
func New() string {
	return uuid.NewString()
}
