package util

import "crypto/rand"

const friendCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FriendCodeLength is the length of the short code users type to add
// each other.
const FriendCodeLength = 8

// GenerateFriendCode returns a random 8-character uppercase
// alphanumeric code. Uniqueness is enforced by the DB constraint on
// profiles.friend_code; callers retry on collision.
func GenerateFriendCode() string {
	buf := make([]byte, FriendCodeLength)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = friendCodeChars[int(b)%len(friendCodeChars)]
	}
	return string(buf)
}
