package service

import (
	"testing"

	"railcollect_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddAndListWanted(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale:    "N",
		Name:     "Yamanote Set",
		Maker:    "Tomix",
		StoreURL: "https://example.com/yamanote",
	}))

	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Yamanote Set", rows[0].Name)
	assert.Equal(t, "Layout", rows[0].ProjectName)
	assert.Equal(t, 1, rows[0].Quantity)
}

func TestAddWantedInvalidInputIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{Scale: "N", Name: "  "}))
	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{Scale: "Z", Name: "Bad Scale"}))

	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpdateAndDeleteWanted(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{Scale: "N", Name: "Before"}))
	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)
	wantedID := rows[0].ID

	require.NoError(t, env.wanted.UpdateWanted(wantedID, "u1", UpdateWantedInput{
		Name: "After", Scale: "HO", Quantity: 3, Maker: "Kato",
	}))

	row, err := env.wanted.GetWanted(wantedID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "After", row.Name)
	assert.Equal(t, model.ScaleHO, row.Scale)
	assert.Equal(t, 3, row.Quantity)

	// Zero quantity must not write anything.
	require.NoError(t, env.wanted.UpdateWanted(wantedID, "u1", UpdateWantedInput{
		Name: "Ignored", Scale: "N", Quantity: 0,
	}))
	row, err = env.wanted.GetWanted(wantedID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "After", row.Name)

	require.NoError(t, env.wanted.DeleteWanted(wantedID, "u1"))
	_, err = env.wanted.GetWanted(wantedID, "u1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteWantedOtherOwnerNotFound(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{Scale: "N", Name: "Keep"}))
	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)

	err = env.wanted.DeleteWanted(rows[0].ID, "u2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	rows, err = env.wanted.ListWanted("u1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestConvertWantedToItem(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale:   "N",
		Name:    "Model X",
		Maker:   "Tomix",
		Remarks: "blue livery",
	}))
	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)
	wantedID := rows[0].ID

	require.NoError(t, env.wanted.ConvertToItem(wantedID, projectID, "u1", "SINGLE_CAR", "", ""))

	// The wanted row is gone and the item carries its fields over.
	_, err = env.wanted.GetWanted(wantedID, "u1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	detail, err := env.projects.GetProjectDetail(projectID, "u1")
	require.NoError(t, err)
	assert.Empty(t, detail.Wanted)
	require.Len(t, detail.Items, 1)

	item := detail.Items[0]
	assert.Equal(t, model.ItemTypeSingleCar, item.Type)
	assert.Equal(t, model.ScaleN, item.Scale)
	assert.Equal(t, "Model X", item.Name)
	assert.Equal(t, 1, item.Quantity)
	require.NotNil(t, item.Maker)
	assert.Equal(t, "Tomix", *item.Maker)
	require.NotNil(t, item.Remarks)
	assert.Equal(t, "blue livery", *item.Remarks)
	assert.Nil(t, item.Price)
}

func TestConvertWantedMakerOverride(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale: "N", Name: "Override Me", Maker: "Tomix",
	}))
	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)

	require.NoError(t, env.wanted.ConvertByID(rows[0].ID, "u1", "SET", "Kato", ""))

	detail, err := env.projects.GetProjectDetail(projectID, "u1")
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	require.NotNil(t, detail.Items[0].Maker)
	assert.Equal(t, "Kato", *detail.Items[0].Maker)
}

func TestQuickPurchaseRecordsPrice(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale: "N", Name: "Impulse Buy",
	}))
	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)

	require.NoError(t, env.wanted.ConvertByID(rows[0].ID, "u1", "SET", "", "12800 yen"))

	detail, err := env.projects.GetProjectDetail(projectID, "u1")
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	require.NotNil(t, detail.Items[0].Price)
	assert.Equal(t, "12800 yen", *detail.Items[0].Price)
}

func TestConvertInvalidTypeIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale: "N", Name: "Stays Wanted",
	}))
	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)

	require.NoError(t, env.wanted.ConvertToItem(rows[0].ID, projectID, "u1", "VEHICLE", "", ""))

	detail, err := env.projects.GetProjectDetail(projectID, "u1")
	require.NoError(t, err)
	assert.Len(t, detail.Wanted, 1)
	assert.Empty(t, detail.Items)
}

func TestConvertForeignWantedNotFound(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Layout")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale: "N", Name: "Not Yours",
	}))
	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)

	err = env.wanted.ConvertByID(rows[0].ID, "u2", "SET", "", "")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// Full round trip as a user would drive it: create a project, wish for
// a model, then buy and convert it.
func TestCollectionRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	projectID := env.createProject(t, "u1", "Test Set")
	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale: "N", Name: "Model X",
	}))

	rows, err := env.wanted.ListWanted("u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, env.wanted.ConvertToItem(rows[0].ID, projectID, "u1", "SINGLE_CAR", "", ""))

	detail, err := env.projects.GetProjectDetail(projectID, "u1")
	require.NoError(t, err)
	assert.Empty(t, detail.Wanted)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Model X", detail.Items[0].Name)

	// One entry total, before and after.
	var itemCount, wantedCount int64
	require.NoError(t, env.db.Model(&model.Item{}).Count(&itemCount).Error)
	require.NoError(t, env.db.Model(&model.Wanted{}).Count(&wantedCount).Error)
	assert.EqualValues(t, 1, itemCount+wantedCount)
}

func TestProjectDeleteRestrictedByItems(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Anchored")

	require.NoError(t, env.items.AddItem(projectID, "u1", AddItemInput{
		Type: "SET", Scale: "N", Name: "Anchor",
	}))

	err := env.db.Delete(&model.Project{}, "id = ?", projectID).Error
	assert.Error(t, err)
}

func TestProjectDeleteCascadesWanted(t *testing.T) {
	env := newTestEnv(t)
	projectID := env.createProject(t, "u1", "Doomed")

	require.NoError(t, env.wanted.AddWanted(projectID, "u1", AddWantedInput{
		Scale: "N", Name: "Goes With It",
	}))

	require.NoError(t, env.db.Delete(&model.Project{}, "id = ?", projectID).Error)

	var count int64
	require.NoError(t, env.db.Model(&model.Wanted{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
