package util

import "errors"

var (
	ErrNotFriends       = errors.New("no accepted friendship with this user")
	ErrAlreadyHandled   = errors.New("friend request already handled")
	ErrFriendCodeRetry  = errors.New("could not generate a unique friend code")
	ErrInvalidScaleData = errors.New("wanted.scale contains values outside the item_scale enum")
)
