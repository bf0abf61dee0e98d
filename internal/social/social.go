package social

import (
	"errors"
	"time"
)

var (
	ErrSelfFollow = errors.New("users cannot follow themselves")
	ErrNotFound   = errors.New("follow edge not found")
)

// Edge is a directed follow relationship: Follower sees Followee on their
// followed leaderboard, not the other way around.
type Edge struct {
	Follower  string
	Followee  string
	CreatedAt time.Time
}
