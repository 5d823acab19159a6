package service

import (
	"strings"

	"railcollect_backend/internal/model"
	"railcollect_backend/internal/repository"
	"railcollect_backend/internal/util"
)

type ItemService struct {
	Items    *repository.ItemRepository
	Projects *repository.ProjectRepository
}

func NewItemService(items *repository.ItemRepository, projects *repository.ProjectRepository) *ItemService {
	return &ItemService{
		Items:    items,
		Projects: projects,
	}
}

type AddItemInput struct {
	Type    string `json:"type"`
	Scale   string `json:"scale"`
	Maker   string `json:"maker"`
	Name    string `json:"name"`
	Remarks string `json:"remarks"`
}

// AddItem records an owned good against one of the user's projects.
// Missing name/type/scale is a silent no-op; quantity defaults to 1.
func (s *ItemService) AddItem(projectID, userID string, in AddItemInput) error {
	if _, err := s.Projects.FindByIDAndUserID(projectID, userID); err != nil {
		return err
	}

	name := strings.TrimSpace(in.Name)
	typ := model.ItemType(in.Type)
	scale := model.ItemScale(in.Scale)
	if name == "" || !typ.Valid() || !scale.Valid() {
		return nil
	}

	return s.Items.Create(&model.Item{
		ProjectID: projectID,
		Type:      typ,
		Scale:     scale,
		Maker:     util.TrimToNil(in.Maker),
		Name:      name,
		Quantity:  1,
		Remarks:   util.TrimToNil(in.Remarks),
	})
}

func (s *ItemService) GetItemDetail(id, userID string) (*model.ItemWithProject, error) {
	return s.Items.FindDetailByIDAndOwner(id, userID)
}

type UpdateItemInput struct {
	ProjectID string `json:"projectId"`
	Type      string `json:"type"`
	Scale     string `json:"scale"`
	Maker     string `json:"maker"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Remarks   string `json:"remarks"`
	PhotoURL  string `json:"photoUrl"`
}

// UpdateItem applies the full edit form, optionally re-parenting the
// item to another of the user's projects. Both the item's current
// project and the destination must belong to the requester, so items
// can never move into or out of someone else's project. Malformed
// input is a silent no-op with no partial write.
func (s *ItemService) UpdateItem(itemID, userID string, in UpdateItemInput) error {
	name := strings.TrimSpace(in.Name)
	typ := model.ItemType(in.Type)
	scale := model.ItemScale(in.Scale)
	if in.ProjectID == "" || name == "" || !typ.Valid() || !scale.Valid() || in.Quantity < 1 {
		return nil
	}

	// Destination project must be the requester's own.
	if _, err := s.Projects.FindByIDAndUserID(in.ProjectID, userID); err != nil {
		return err
	}

	// And so must the item's current project.
	item, err := s.Items.FindByIDAndOwner(itemID, userID)
	if err != nil {
		return err
	}

	item.ProjectID = in.ProjectID
	item.Type = typ
	item.Scale = scale
	item.Maker = util.TrimToNil(in.Maker)
	item.Name = name
	item.Quantity = in.Quantity
	item.Price = util.TrimToNil(in.Price)
	item.Remarks = util.TrimToNil(in.Remarks)
	item.PhotoURL = util.TrimToNil(in.PhotoURL)

	return s.Items.Update(item)
}
