package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"railcollect_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// WantedRepository handles wish-list rows and the cached per-user
// wanted list ("shopping memo") view.
type WantedRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewWantedRepository(db *gorm.DB, rdb *redis.Client) *WantedRepository {
	return &WantedRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func wantedViewKey(userID string) string {
	return fmt.Sprintf("view:wanted:%s", userID)
}

func (r *WantedRepository) Create(w *model.Wanted, ownerID string) error {
	err := r.DB.Create(w).Error
	if err == nil {
		r.InvalidateView(ownerID)
	}
	return err
}

func (r *WantedRepository) FindByIDAndOwner(id, userID string) (*model.WantedWithProject, error) {
	var row model.WantedWithProject
	err := r.DB.Table("wanted").
		Select("wanted.*, projects.name AS project_name").
		Joins("JOIN projects ON projects.id = wanted.project_id").
		Where("wanted.id = ? AND projects.user_id = ?", id, userID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *WantedRepository) FindByIDAndProjectID(id, projectID string) (*model.Wanted, error) {
	var w model.Wanted
	err := r.DB.Where("id = ? AND project_id = ?", id, projectID).First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WantedRepository) FindByProjectID(projectID string) ([]model.Wanted, error) {
	var rows []model.Wanted
	err := r.DB.Where("project_id = ?", projectID).Order("created_at").Find(&rows).Error
	return rows, err
}

// FindByOwner returns all wanted entries across the user's projects,
// newest first, joined with project names.
func (r *WantedRepository) FindByOwner(userID string) ([]model.WantedWithProject, error) {
	if r.Redis != nil {
		cached, err := r.Redis.Get(r.ctx, wantedViewKey(userID)).Result()
		if err == nil {
			var rows []model.WantedWithProject
			if json.Unmarshal([]byte(cached), &rows) == nil {
				return rows, nil
			}
		}
	}

	var rows []model.WantedWithProject
	err := r.DB.Table("wanted").
		Select("wanted.*, projects.name AS project_name").
		Joins("JOIN projects ON projects.id = wanted.project_id").
		Where("projects.user_id = ?", userID).
		Order("wanted.created_at DESC").
		Scan(&rows).Error
	if err == nil && r.Redis != nil {
		if data, merr := json.Marshal(rows); merr == nil {
			r.Redis.Set(r.ctx, wantedViewKey(userID), data, 10*time.Minute)
		}
	}
	return rows, err
}

func (r *WantedRepository) Update(w *model.Wanted, ownerID string) error {
	err := r.DB.Model(&model.Wanted{}).
		Where("id = ?", w.ID).
		Updates(map[string]interface{}{
			"maker":      w.Maker,
			"name":       w.Name,
			"scale":      w.Scale,
			"quantity":   w.Quantity,
			"remarks":    w.Remarks,
			"store_url":  w.StoreURL,
			"updated_at": time.Now(),
		}).Error
	if err == nil {
		r.InvalidateView(ownerID)
	}
	return err
}

func (r *WantedRepository) Delete(id, ownerID string) error {
	err := r.DB.Delete(&model.Wanted{}, "id = ?", id).Error
	if err == nil {
		r.InvalidateView(ownerID)
	}
	return err
}

// ConvertToItem inserts the item and removes the wanted row in one
// transaction, so a mid-operation failure can neither duplicate nor
// lose the entry.
func (r *WantedRepository) ConvertToItem(wantedID string, item *model.Item, ownerID string) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Wanted{}, "id = ?", wantedID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == nil {
		r.InvalidateView(ownerID)
	}
	return err
}

func (r *WantedRepository) InvalidateView(userID string) {
	if r.Redis != nil {
		r.Redis.Del(r.ctx, wantedViewKey(userID))
	}
}
