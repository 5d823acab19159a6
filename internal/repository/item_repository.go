package repository

import (
	"time"

	"railcollect_backend/internal/model"

	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(item *model.Item) error {
	return r.DB.Create(item).Error
}

// FindByIDAndOwner resolves the item through its project so only the
// owner ever sees it.
func (r *ItemRepository) FindByIDAndOwner(id, userID string) (*model.Item, error) {
	var item model.Item
	err := r.DB.Joins("JOIN projects ON projects.id = items.project_id").
		Where("items.id = ? AND projects.user_id = ?", id, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindDetailByIDAndOwner(id, userID string) (*model.ItemWithProject, error) {
	var detail model.ItemWithProject
	err := r.DB.Table("items").
		Select("items.*, projects.name AS project_name").
		Joins("JOIN projects ON projects.id = items.project_id").
		Where("items.id = ? AND projects.user_id = ?", id, userID).
		Take(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update applies the full edit form, including re-parenting to
// another project. Ownership of both ends is the service's job.
func (r *ItemRepository) Update(item *model.Item) error {
	return r.DB.Model(&model.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"project_id": item.ProjectID,
			"type":       item.Type,
			"scale":      item.Scale,
			"maker":      item.Maker,
			"name":       item.Name,
			"quantity":   item.Quantity,
			"price":      item.Price,
			"remarks":    item.Remarks,
			"photo_url":  item.PhotoURL,
			"updated_at": time.Now(),
		}).Error
}

func (r *ItemRepository) FindByProjectID(projectID string) ([]model.Item, error) {
	var items []model.Item
	err := r.DB.Where("project_id = ?", projectID).Order("created_at").Find(&items).Error
	return items, err
}

// FindByOwner returns every item across the user's projects, used by
// the friend collection view.
func (r *ItemRepository) FindByOwner(userID string) ([]model.Item, error) {
	var items []model.Item
	err := r.DB.Joins("JOIN projects ON projects.id = items.project_id").
		Where("projects.user_id = ?", userID).
		Order("items.created_at").
		Find(&items).Error
	return items, err
}
