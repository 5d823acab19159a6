package model

import "time"

// Profile holds the display name and friend code for a user identity.
// The identity itself comes from the external auth provider; the user
// id is used as primary key directly. Created lazily on first visit
// to the friends feature.
type Profile struct {
	UserID      string    `gorm:"primaryKey;type:varchar(64)" json:"userId"`
	DisplayName string    `gorm:"size:100;not null" json:"displayName"`
	FriendCode  string    `gorm:"size:16;not null;uniqueIndex" json:"friendCode"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Profile) TableName() string {
	return "profiles"
}
