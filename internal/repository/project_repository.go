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

// ProjectRepository handles project rows and caches the per-user
// project list view. Writes invalidate the cache, which is what keeps
// the list pages fresh after a mutation.
type ProjectRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewProjectRepository(db *gorm.DB, rdb *redis.Client) *ProjectRepository {
	return &ProjectRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func projectViewKey(userID string) string {
	return fmt.Sprintf("view:projects:%s", userID)
}

func (r *ProjectRepository) Create(p *model.Project) error {
	err := r.DB.Create(p).Error
	if err == nil {
		r.InvalidateView(p.UserID)
	}
	return err
}

// FindByIDAndUserID scopes ownership into the lookup itself: a
// project owned by someone else is indistinguishable from a missing
// one.
func (r *ProjectRepository) FindByIDAndUserID(id, userID string) (*model.Project, error) {
	var p model.Project
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) FindByUserID(userID string) ([]model.Project, error) {
	if r.Redis != nil {
		cached, err := r.Redis.Get(r.ctx, projectViewKey(userID)).Result()
		if err == nil {
			var projects []model.Project
			if json.Unmarshal([]byte(cached), &projects) == nil {
				return projects, nil
			}
		}
	}

	var projects []model.Project
	err := r.DB.Where("user_id = ?", userID).Order("created_at").Find(&projects).Error
	if err == nil && r.Redis != nil {
		if data, merr := json.Marshal(projects); merr == nil {
			r.Redis.Set(r.ctx, projectViewKey(userID), data, 10*time.Minute)
		}
	}
	return projects, err
}

func (r *ProjectRepository) InvalidateView(userID string) {
	if r.Redis != nil {
		r.Redis.Del(r.ctx, projectViewKey(userID))
	}
}
