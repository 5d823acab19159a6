package service

import (
	"strings"

	"railcollect_backend/internal/model"
	"railcollect_backend/internal/repository"
	"railcollect_backend/internal/util"
)

type WantedService struct {
	Wanted   *repository.WantedRepository
	Items    *repository.ItemRepository
	Projects *repository.ProjectRepository
}

func NewWantedService(wanted *repository.WantedRepository, items *repository.ItemRepository, projects *repository.ProjectRepository) *WantedService {
	return &WantedService{
		Wanted:   wanted,
		Items:    items,
		Projects: projects,
	}
}

type AddWantedInput struct {
	Scale    string `json:"scale"`
	Name     string `json:"name"`
	Maker    string `json:"maker"`
	Remarks  string `json:"remarks"`
	StoreURL string `json:"storeUrl"`
}

// AddWanted records a wish-list entry. Missing name or scale is a
// silent no-op.
func (s *WantedService) AddWanted(projectID, userID string, in AddWantedInput) error {
	if _, err := s.Projects.FindByIDAndUserID(projectID, userID); err != nil {
		return err
	}

	name := strings.TrimSpace(in.Name)
	scale := model.ItemScale(in.Scale)
	if name == "" || !scale.Valid() {
		return nil
	}

	return s.Wanted.Create(&model.Wanted{
		ProjectID: projectID,
		Maker:     util.TrimToNil(in.Maker),
		Name:      name,
		Scale:     scale,
		Quantity:  1,
		Remarks:   util.TrimToNil(in.Remarks),
		StoreURL:  util.TrimToNil(in.StoreURL),
	}, userID)
}

func (s *WantedService) ListWanted(userID string) ([]model.WantedWithProject, error) {
	return s.Wanted.FindByOwner(userID)
}

func (s *WantedService) GetWanted(id, userID string) (*model.WantedWithProject, error) {
	return s.Wanted.FindByIDAndOwner(id, userID)
}

type UpdateWantedInput struct {
	Maker    string `json:"maker"`
	Name     string `json:"name"`
	Scale    string `json:"scale"`
	Quantity int    `json:"quantity"`
	Remarks  string `json:"remarks"`
	StoreURL string `json:"storeUrl"`
}

// UpdateWanted requires a positive integer quantity; anything less is
// a silent no-op with no partial write.
func (s *WantedService) UpdateWanted(wantedID, userID string, in UpdateWantedInput) error {
	row, err := s.Wanted.FindByIDAndOwner(wantedID, userID)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(in.Name)
	scale := model.ItemScale(in.Scale)
	if name == "" || !scale.Valid() || in.Quantity < 1 {
		return nil
	}

	w := row.Wanted
	w.Maker = util.TrimToNil(in.Maker)
	w.Name = name
	w.Scale = scale
	w.Quantity = in.Quantity
	w.Remarks = util.TrimToNil(in.Remarks)
	w.StoreURL = util.TrimToNil(in.StoreURL)

	return s.Wanted.Update(&w, userID)
}

func (s *WantedService) DeleteWanted(wantedID, userID string) error {
	if _, err := s.Wanted.FindByIDAndOwner(wantedID, userID); err != nil {
		return err
	}
	return s.Wanted.Delete(wantedID, userID)
}

// ConvertToItem turns a wanted entry into an owned item: the item is
// inserted copying maker/name/scale/quantity/remarks (a non-blank
// maker override wins over the wanted row's maker) and the wanted row
// is deleted, atomically. Price stays unset unless the caller
// supplies a purchase price (the quick-purchase path). An invalid
// item type is a silent no-op.
func (s *WantedService) ConvertToItem(wantedID, projectID, userID, itemType, makerOverride, price string) error {
	if _, err := s.Projects.FindByIDAndUserID(projectID, userID); err != nil {
		return err
	}

	typ := model.ItemType(itemType)
	if !typ.Valid() {
		return nil
	}

	w, err := s.Wanted.FindByIDAndProjectID(wantedID, projectID)
	if err != nil {
		return err
	}

	maker := util.TrimToNil(makerOverride)
	if maker == nil {
		maker = w.Maker
	}

	item := &model.Item{
		ProjectID: projectID,
		Type:      typ,
		Scale:     w.Scale,
		Maker:     maker,
		Name:      w.Name,
		Quantity:  w.Quantity,
		Price:     util.TrimToNil(price),
		Remarks:   w.Remarks,
	}

	return s.Wanted.ConvertToItem(w.ID, item, userID)
}

// ConvertByID resolves the wanted entry's own project before
// converting; used by the wanted-detail and quick-purchase paths,
// where the caller only knows the wanted id.
func (s *WantedService) ConvertByID(wantedID, userID, itemType, makerOverride, price string) error {
	row, err := s.Wanted.FindByIDAndOwner(wantedID, userID)
	if err != nil {
		return err
	}
	return s.ConvertToItem(wantedID, row.ProjectID, userID, itemType, makerOverride, price)
}
