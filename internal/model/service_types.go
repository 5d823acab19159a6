package model

// ProjectDetail is the project page payload: the project with its
// items and wanted entries.
type ProjectDetail struct {
	Project
	Items  []Item   `json:"items"`
	Wanted []Wanted `json:"wanted"`
}

type ProjectWithItems struct {
	Project
	Items []Item `json:"items"`
}

// FriendCollection is the read-only view of a friend's projects and
// owned items.
type FriendCollection struct {
	FriendID   string             `json:"friendId"`
	FriendName string             `json:"friendName"`
	Projects   []ProjectWithItems `json:"projects"`
}
