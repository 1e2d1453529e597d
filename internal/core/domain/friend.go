package domain

// Friend is one entry of a principal's adjacency list: the friend's id and
// their public profile fields.
//
// Friendship is stored as two directed rows so lookups in either direction
// are a single-table query; both rows are always written together.
type Friend struct {
	FriendID string        `json:"friend_id"`
	Profile  FriendProfile `json:"friend_profile"`
}

// FriendProfile is the projection of a friend's profile used in listings.
type FriendProfile struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}
