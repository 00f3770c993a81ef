package models

// Follow is a follow-graph edge. It has no local representation beyond the
// follower/following lists returned by the backend.
type Follow struct {
	FollowerID string `json:"followerId"`
	FollowedID string `json:"followedId"`
}
