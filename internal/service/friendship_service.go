package service

import (
	"errors"
	"strings"

	"railcollect_backend/internal/model"
	"railcollect_backend/internal/repository"
	"railcollect_backend/internal/util"

	"gorm.io/gorm"
)

const fallbackDisplayName = "Anonymous Modeler"

// friendCodeAttempts bounds the collision retry; with 36^8 codes a
// second collision in a row already means something is wrong.
const friendCodeAttempts = 5

type FriendshipService struct {
	Friendships *repository.FriendshipRepository
	Profiles    *repository.ProfileRepository
	Projects    *repository.ProjectRepository
	Items       *repository.ItemRepository
	Wanted      *repository.WantedRepository
}

func NewFriendshipService(
	friendships *repository.FriendshipRepository,
	profiles *repository.ProfileRepository,
	projects *repository.ProjectRepository,
	items *repository.ItemRepository,
	wanted *repository.WantedRepository,
) *FriendshipService {
	return &FriendshipService{
		Friendships: friendships,
		Profiles:    profiles,
		Projects:    projects,
		Items:       items,
		Wanted:      wanted,
	}
}

// EnsureProfile returns the user's profile, creating it on first
// visit with a freshly generated friend code. Code uniqueness is
// enforced by the DB constraint; a duplicated-key error just means
// another spin of the generator.
func (s *FriendshipService) EnsureProfile(userID, displayName string) (*model.Profile, error) {
	p, err := s.Profiles.FindByUserID(userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := strings.TrimSpace(displayName)
	if name == "" {
		name = fallbackDisplayName
	}

	for attempt := 0; attempt < friendCodeAttempts; attempt++ {
		p = &model.Profile{
			UserID:      userID,
			DisplayName: name,
			FriendCode:  util.GenerateFriendCode(),
		}
		err = s.Profiles.Create(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, util.ErrFriendCodeRetry
}

// SendFriendRequest creates a PENDING friendship toward the profile
// owning targetCode. Unknown codes, the requester's own code, and
// pairs that already have a relationship in any status or direction
// are all silent no-ops.
func (s *FriendshipService) SendFriendRequest(userID, targetCode string) error {
	my, err := s.Profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	code := strings.ToUpper(strings.TrimSpace(targetCode))
	if code == "" || code == my.FriendCode {
		return nil
	}

	target, err := s.Profiles.FindByFriendCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if _, err := s.Friendships.FindBetween(userID, target.UserID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = s.Friendships.Create(&model.Friendship{
		RequesterID: userID,
		AddresseeID: target.UserID,
		Status:      model.FriendshipPending,
	})
	// Two identical requests racing past the pre-check land on the
	// pair's unique index; losing that race is still a no-op.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// HandleRequest accepts or rejects a pending request. Only the
// addressee may do either; anyone else gets record-not-found, the
// same answer as for a request that does not exist.
func (s *FriendshipService) HandleRequest(friendshipID, userID string, accept bool) error {
	f, err := s.Friendships.FindByID(friendshipID)
	if err != nil {
		return err
	}
	if f.AddresseeID != userID {
		return gorm.ErrRecordNotFound
	}
	if f.Status != model.FriendshipPending {
		return util.ErrAlreadyHandled
	}

	status := model.FriendshipRejected
	if accept {
		status = model.FriendshipAccepted
	}
	return s.Friendships.UpdateStatus(friendshipID, status)
}

func (s *FriendshipService) ListFriends(userID string) ([]model.FriendEntry, error) {
	return s.Friendships.ListFriends(userID)
}

func (s *FriendshipService) ListIncomingRequests(userID string) ([]model.IncomingRequest, error) {
	return s.Friendships.ListIncoming(userID)
}

// GetFriendWanted is the read-only friend view: the friend's wanted
// list with project names, optionally filtered by scale. Without an
// accepted friendship the viewer gets nothing, even with real ids in
// hand.
func (s *FriendshipService) GetFriendWanted(viewerID, friendID, scaleFilter string) (*model.Profile, []model.WantedWithProject, error) {
	ok, err := s.Friendships.AreFriends(viewerID, friendID)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, util.ErrNotFriends
	}

	profile, err := s.Profiles.FindByUserID(friendID)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.Wanted.FindByOwner(friendID)
	if err != nil {
		return nil, nil, err
	}

	if scale := model.ItemScale(scaleFilter); scale.Valid() {
		filtered := make([]model.WantedWithProject, 0, len(rows))
		for _, row := range rows {
			if row.Scale == scale {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	return profile, rows, nil
}

// GetFriendCollection returns the friend's projects with their owned
// items, grouped per project.
func (s *FriendshipService) GetFriendCollection(viewerID, friendID string) (*model.FriendCollection, error) {
	ok, err := s.Friendships.AreFriends(viewerID, friendID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotFriends
	}

	profile, err := s.Profiles.FindByUserID(friendID)
	if err != nil {
		return nil, err
	}

	projects, err := s.Projects.FindByUserID(friendID)
	if err != nil {
		return nil, err
	}
	items, err := s.Items.FindByOwner(friendID)
	if err != nil {
		return nil, err
	}

	byProject := make(map[string][]model.Item, len(projects))
	for _, item := range items {
		byProject[item.ProjectID] = append(byProject[item.ProjectID], item)
	}

	collection := &model.FriendCollection{
		FriendID:   profile.UserID,
		FriendName: profile.DisplayName,
		Projects:   make([]model.ProjectWithItems, 0, len(projects)),
	}
	for _, p := range projects {
		collection.Projects = append(collection.Projects, model.ProjectWithItems{
			Project: p,
			Items:   byProject[p.ID],
		})
	}
	return collection, nil
}
