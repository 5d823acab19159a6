package repository

import (
	"railcollect_backend/internal/model"

	"gorm.io/gorm"
)

type FriendshipRepository struct {
	DB *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{DB: db}
}

func (r *FriendshipRepository) Create(f *model.Friendship) error {
	return r.DB.Create(f).Error
}

func (r *FriendshipRepository) FindByID(id string) (*model.Friendship, error) {
	var f model.Friendship
	err := r.DB.First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindBetween returns any relationship between the two identities,
// regardless of status or direction.
func (r *FriendshipRepository) FindBetween(a, b string) (*model.Friendship, error) {
	var f model.Friendship
	err := r.DB.Where(
		"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
		a, b, b, a,
	).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// AreFriends reports whether an accepted friendship exists with the
// two identities as its endpoint set, in either direction.
func (r *FriendshipRepository) AreFriends(a, b string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Friendship{}).
		Where(
			"((requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)) AND status = ?",
			a, b, b, a, model.FriendshipAccepted,
		).Count(&count).Error
	return count > 0, err
}

func (r *FriendshipRepository) UpdateStatus(id string, status model.FriendshipStatus) error {
	return r.DB.Model(&model.Friendship{}).Where("id = ?", id).Update("status", status).Error
}

// ListFriends joins the opposite endpoint's profile whichever side
// the viewer is on.
func (r *FriendshipRepository) ListFriends(userID string) ([]model.FriendEntry, error) {
	var entries []model.FriendEntry
	err := r.DB.Table("friendships").
		Select("profiles.user_id AS friend_id, profiles.display_name AS friend_name").
		Joins(`JOIN profiles ON (friendships.requester_id = ? AND profiles.user_id = friendships.addressee_id)
			OR (friendships.addressee_id = ? AND profiles.user_id = friendships.requester_id)`, userID, userID).
		Where("(friendships.requester_id = ? OR friendships.addressee_id = ?) AND friendships.status = ?",
			userID, userID, model.FriendshipAccepted).
		Scan(&entries).Error
	return entries, err
}

func (r *FriendshipRepository) ListIncoming(userID string) ([]model.IncomingRequest, error) {
	var reqs []model.IncomingRequest
	err := r.DB.Table("friendships").
		Select("friendships.id AS friendship_id, friendships.requester_id, profiles.display_name AS requester_name").
		Joins("JOIN profiles ON profiles.user_id = friendships.requester_id").
		Where("friendships.addressee_id = ? AND friendships.status = ?", userID, model.FriendshipPending).
		Order("friendships.created_at").
		Scan(&reqs).Error
	return reqs, err
}
