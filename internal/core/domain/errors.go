package domain

import "errors"

// Domain errors. The HTTP boundary is the only place these are mapped to
// status codes.
var (
	ErrUnauthenticated = errors.New("missing or invalid token")
	ErrUsernameTaken   = errors.New("username taken")
	ErrProfileNotFound = errors.New("profile not found")

	ErrUsernameRequired = errors.New("username required")
	ErrFriendIDRequired = errors.New("friend_id required")
	ErrSelfFriend       = errors.New("cannot add yourself")
	ErrMessageRequired  = errors.New("conversation_id and content required")
)
