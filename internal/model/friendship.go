package model

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "PENDING"
	FriendshipAccepted FriendshipStatus = "ACCEPTED"
	FriendshipRejected FriendshipStatus = "REJECTED"
)

func (s FriendshipStatus) Valid() bool {
	switch s {
	case FriendshipPending, FriendshipAccepted, FriendshipRejected:
		return true
	}
	return false
}

// Friendship is a directed request from requester to addressee,
// symmetric once accepted. The unique index closes the duplicate
// window for same-direction requests; the reverse direction is
// rejected by a query before insert.
type Friendship struct {
	UUIDBase
	RequesterID string           `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_friendships_pair" json:"requesterId"`
	Requester   *Profile         `gorm:"foreignKey:RequesterID;references:UserID;constraint:OnDelete:CASCADE" json:"requester,omitempty"`
	AddresseeID string           `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_friendships_pair" json:"addresseeId"`
	Addressee   *Profile         `gorm:"foreignKey:AddresseeID;references:UserID;constraint:OnDelete:CASCADE" json:"addressee,omitempty"`
	Status      FriendshipStatus `gorm:"type:varchar(10);not null;default:'PENDING'" json:"status"`
}

func (Friendship) TableName() string {
	return "friendships"
}

// FriendEntry projects the opposite endpoint of an accepted
// friendship as "the friend".
type FriendEntry struct {
	FriendID   string `json:"friendId"`
	FriendName string `json:"friendName"`
}

// IncomingRequest is a pending friendship addressed to the viewer,
// with the requester's display name joined in.
type IncomingRequest struct {
	FriendshipID  string `json:"friendshipId"`
	RequesterID   string `json:"requesterId"`
	RequesterName string `json:"requesterName"`
}
