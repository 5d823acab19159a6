package service

import (
	"testing"

	"railcollect_backend/internal/repository"
	"railcollect_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A second pool connection would get its own empty in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type testEnv struct {
	db         *gorm.DB
	projects   *ProjectService
	items      *ItemService
	wanted     *WantedService
	friendship *FriendshipService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	projectRepo := repository.NewProjectRepository(db, nil)
	itemRepo := repository.NewItemRepository(db)
	wantedRepo := repository.NewWantedRepository(db, nil)
	profileRepo := repository.NewProfileRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)

	return &testEnv{
		db:         db,
		projects:   NewProjectService(projectRepo, itemRepo, wantedRepo),
		items:      NewItemService(itemRepo, projectRepo),
		wanted:     NewWantedService(wantedRepo, itemRepo, projectRepo),
		friendship: NewFriendshipService(friendshipRepo, profileRepo, projectRepo, itemRepo, wantedRepo),
	}
}

func (e *testEnv) createProject(t *testing.T, userID, name string) string {
	t.Helper()

	require.NoError(t, e.projects.CreateProject(userID, name))
	projects, err := e.projects.ListProjects(userID)
	require.NoError(t, err)
	for _, p := range projects {
		if p.Name == name {
			return p.ID
		}
	}
	t.Fatalf("project %q not found after create", name)
	return ""
}

// befriend wires an accepted friendship between two users, creating
// their profiles on the way.
func (e *testEnv) befriend(t *testing.T, userA, userB string) {
	t.Helper()

	_, err := e.friendship.EnsureProfile(userA, "User "+userA)
	require.NoError(t, err)
	profileB, err := e.friendship.EnsureProfile(userB, "User "+userB)
	require.NoError(t, err)

	require.NoError(t, e.friendship.SendFriendRequest(userA, profileB.FriendCode))

	requests, err := e.friendship.ListIncomingRequests(userB)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.NoError(t, e.friendship.HandleRequest(requests[0].FriendshipID, userB, true))
}
