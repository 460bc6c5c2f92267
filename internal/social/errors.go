package social

import "errors"

var (
	// ErrUserNotFound indicates the recipient of a request does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrRequestNotFound indicates no friend request exists with the given id.
	ErrRequestNotFound = errors.New("friend request not found")
	// ErrSelfRequest indicates a user tried to send a friend request to themselves.
	ErrSelfRequest = errors.New("cannot send a friend request to yourself")
	// ErrAlreadyFriends indicates the two users are already friends.
	ErrAlreadyFriends = errors.New("users are already friends")
	// ErrRequestExists indicates a request already exists between the pair,
	// in either direction and in any status.
	ErrRequestExists = errors.New("friend request already exists")
	// ErrNotRecipient indicates someone other than the recipient tried to
	// accept a request.
	ErrNotRecipient = errors.New("only the recipient may accept this request")
	// ErrRequestNotPending indicates the request was already accepted. Repeat
	// accepts fail rather than silently succeed.
	ErrRequestNotPending = errors.New("friend request is not pending")
)
