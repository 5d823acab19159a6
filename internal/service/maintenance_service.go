package service

import (
	"fmt"

	"railcollect_backend/internal/model"
	"railcollect_backend/internal/util"

	"gorm.io/gorm"
)

// MaintenanceService holds one-off data repair routines run from
// scripts rather than from the HTTP surface.
type MaintenanceService struct {
	DB *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{DB: db}
}

// BackfillWantedScale sets every NULL wanted.scale to the N gauge
// default and returns the number of rows touched. If any non-NULL
// scale value falls outside the known set the whole run aborts before
// writing anything, so a bad import never gets papered over.
func (s *MaintenanceService) BackfillWantedScale() (int64, error) {
	var scales []string
	err := s.DB.Model(&model.Wanted{}).
		Where("scale IS NOT NULL").
		Distinct("scale").
		Pluck("scale", &scales).Error
	if err != nil {
		return 0, err
	}

	for _, sc := range scales {
		if !model.ItemScale(sc).Valid() {
			return 0, fmt.Errorf("%w: %q", util.ErrInvalidScaleData, sc)
		}
	}

	res := s.DB.Model(&model.Wanted{}).
		Where("scale IS NULL").
		Update("scale", model.ScaleN)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
