package engine

import "fmt"

// LockedError indicates an avatar is still locked behind a required
// level. This is returned by avatar selection and should be shown to the
// user.
type LockedError struct {
	AvatarID      string
	RequiredLevel int
}

func (e LockedError) Error() string {
	return fmt.Sprintf("avatar '%s' unlocks at level %d", e.AvatarID, e.RequiredLevel)
}
