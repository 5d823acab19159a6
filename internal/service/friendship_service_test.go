package service

import (
	"regexp"
	"strings"
	"testing"

	"railcollect_backend/internal/model"
	"railcollect_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var friendCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestEnsureProfileIdempotent(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.friendship.EnsureProfile("u1", "Hiro")
	require.NoError(t, err)
	assert.Equal(t, "Hiro", first.DisplayName)
	assert.Regexp(t, friendCodePattern, first.FriendCode)

	second, err := env.friendship.EnsureProfile("u1", "Different Name")
	require.NoError(t, err)
	assert.Equal(t, first.FriendCode, second.FriendCode)
	assert.Equal(t, "Hiro", second.DisplayName)
}

func TestEnsureProfileFallbackName(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.friendship.EnsureProfile("u1", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous Modeler", p.DisplayName)
}

func TestSendFriendRequestAndAccept(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.friendship.EnsureProfile("u1", "Requester")
	require.NoError(t, err)
	pb, err := env.friendship.EnsureProfile("u2", "Addressee")
	require.NoError(t, err)

	require.NoError(t, env.friendship.SendFriendRequest("u1", pb.FriendCode))

	requests, err := env.friendship.ListIncomingRequests("u2")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "u1", requests[0].RequesterID)
	assert.Equal(t, "Requester", requests[0].RequesterName)

	require.NoError(t, env.friendship.HandleRequest(requests[0].FriendshipID, "u2", true))

	// Both sides see the other as a friend.
	friendsOfA, err := env.friendship.ListFriends("u1")
	require.NoError(t, err)
	require.Len(t, friendsOfA, 1)
	assert.Equal(t, "u2", friendsOfA[0].FriendID)
	assert.Equal(t, "Addressee", friendsOfA[0].FriendName)

	friendsOfB, err := env.friendship.ListFriends("u2")
	require.NoError(t, err)
	require.Len(t, friendsOfB, 1)
	assert.Equal(t, "u1", friendsOfB[0].FriendID)

	// Accepted requests no longer show as incoming.
	requests, err = env.friendship.ListIncomingRequests("u2")
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestSendFriendRequestNoOps(t *testing.T) {
	env := newTestEnv(t)

	pa, err := env.friendship.EnsureProfile("u1", "A")
	require.NoError(t, err)
	pb, err := env.friendship.EnsureProfile("u2", "B")
	require.NoError(t, err)

	// Unknown code, own code, blank code.
	require.NoError(t, env.friendship.SendFriendRequest("u1", "NOPE1234"))
	require.NoError(t, env.friendship.SendFriendRequest("u1", pa.FriendCode))
	require.NoError(t, env.friendship.SendFriendRequest("u1", "  "))

	var count int64
	require.NoError(t, env.db.Model(&model.Friendship{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// A real request, then duplicates in both directions.
	require.NoError(t, env.friendship.SendFriendRequest("u1", pb.FriendCode))
	require.NoError(t, env.friendship.SendFriendRequest("u1", pb.FriendCode))
	require.NoError(t, env.friendship.SendFriendRequest("u2", pa.FriendCode))

	require.NoError(t, env.db.Model(&model.Friendship{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSendFriendRequestCodeIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.friendship.EnsureProfile("u1", "A")
	require.NoError(t, err)
	pb, err := env.friendship.EnsureProfile("u2", "B")
	require.NoError(t, err)

	lower := " " + strings.ToLower(pb.FriendCode) + " "
	require.NoError(t, env.friendship.SendFriendRequest("u1", lower))

	requests, err := env.friendship.ListIncomingRequests("u2")
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestAcceptRequestOnlyAddressee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.friendship.EnsureProfile("u1", "A")
	require.NoError(t, err)
	pb, err := env.friendship.EnsureProfile("u2", "B")
	require.NoError(t, err)
	_, err = env.friendship.EnsureProfile("u3", "C")
	require.NoError(t, err)

	require.NoError(t, env.friendship.SendFriendRequest("u1", pb.FriendCode))
	requests, err := env.friendship.ListIncomingRequests("u2")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	id := requests[0].FriendshipID

	// Neither the requester nor a bystander may accept.
	err = env.friendship.HandleRequest(id, "u1", true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	err = env.friendship.HandleRequest(id, "u3", true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, env.friendship.HandleRequest(id, "u2", true))
}

func TestHandleRequestAlreadyHandled(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.friendship.EnsureProfile("u1", "A")
	require.NoError(t, err)
	pb, err := env.friendship.EnsureProfile("u2", "B")
	require.NoError(t, err)

	require.NoError(t, env.friendship.SendFriendRequest("u1", pb.FriendCode))
	requests, err := env.friendship.ListIncomingRequests("u2")
	require.NoError(t, err)
	id := requests[0].FriendshipID

	require.NoError(t, env.friendship.HandleRequest(id, "u2", false))

	err = env.friendship.HandleRequest(id, "u2", true)
	assert.ErrorIs(t, err, util.ErrAlreadyHandled)
}

func TestRejectedRequestGrantsNothing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.friendship.EnsureProfile("u1", "A")
	require.NoError(t, err)
	pb, err := env.friendship.EnsureProfile("u2", "B")
	require.NoError(t, err)

	require.NoError(t, env.friendship.SendFriendRequest("u1", pb.FriendCode))
	requests, err := env.friendship.ListIncomingRequests("u2")
	require.NoError(t, err)
	require.NoError(t, env.friendship.HandleRequest(requests[0].FriendshipID, "u2", false))

	friends, err := env.friendship.ListFriends("u1")
	require.NoError(t, err)
	assert.Empty(t, friends)

	_, _, err = env.friendship.GetFriendWanted("u1", "u2", "")
	assert.ErrorIs(t, err, util.ErrNotFriends)
}

func TestFriendWantedViewRequiresFriendship(t *testing.T) {
	env := newTestEnv(t)

	projectID := env.createProject(t, "u2", "Friend Layout")
	require.NoError(t, env.wanted.AddWanted(projectID, "u2", AddWantedInput{
		Scale: "N", Name: "Secret Wish",
	}))

	_, _, err := env.friendship.GetFriendWanted("u1", "u2", "")
	assert.ErrorIs(t, err, util.ErrNotFriends)

	_, err = env.friendship.GetFriendCollection("u1", "u2")
	assert.ErrorIs(t, err, util.ErrNotFriends)
}

func TestFriendWantedViewWithScaleFilter(t *testing.T) {
	env := newTestEnv(t)
	env.befriend(t, "u1", "u2")

	projectID := env.createProject(t, "u2", "Friend Layout")
	require.NoError(t, env.wanted.AddWanted(projectID, "u2", AddWantedInput{Scale: "N", Name: "N Wish"}))
	require.NoError(t, env.wanted.AddWanted(projectID, "u2", AddWantedInput{Scale: "HO", Name: "HO Wish"}))

	profile, rows, err := env.friendship.GetFriendWanted("u1", "u2", "")
	require.NoError(t, err)
	assert.Equal(t, "User u2", profile.DisplayName)
	assert.Len(t, rows, 2)

	_, rows, err = env.friendship.GetFriendWanted("u1", "u2", "HO")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "HO Wish", rows[0].Name)

	// An unknown filter value falls back to the unfiltered list.
	_, rows, err = env.friendship.GetFriendWanted("u1", "u2", "Z")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestFriendCollectionGroupsItemsByProject(t *testing.T) {
	env := newTestEnv(t)
	env.befriend(t, "u1", "u2")

	first := env.createProject(t, "u2", "First")
	env.createProject(t, "u2", "Second")
	require.NoError(t, env.items.AddItem(first, "u2", AddItemInput{
		Type: "SET", Scale: "N", Name: "Alpha",
	}))
	require.NoError(t, env.items.AddItem(first, "u2", AddItemInput{
		Type: "PART", Scale: "PART_N", Name: "Beta",
	}))

	collection, err := env.friendship.GetFriendCollection("u1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "u2", collection.FriendID)
	require.Len(t, collection.Projects, 2)

	byName := map[string]int{}
	for _, p := range collection.Projects {
		byName[p.Name] = len(p.Items)
	}
	assert.Equal(t, 2, byName["First"])
	assert.Equal(t, 0, byName["Second"])
}
