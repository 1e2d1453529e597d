package domain

// Profile is a user's public identity: the claimed unique username plus
// display fields. Profile.ID equals the owning principal's id.
type Profile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}
