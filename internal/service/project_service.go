package service

import (
	"strings"

	"railcollect_backend/internal/model"
	"railcollect_backend/internal/repository"
)

type ProjectService struct {
	Projects *repository.ProjectRepository
	Items    *repository.ItemRepository
	Wanted   *repository.WantedRepository
}

func NewProjectService(projects *repository.ProjectRepository, items *repository.ItemRepository, wanted *repository.WantedRepository) *ProjectService {
	return &ProjectService{
		Projects: projects,
		Items:    items,
		Wanted:   wanted,
	}
}

// CreateProject inserts a new in-progress project. An empty name is a
// silent no-op: nothing is written and no error surfaces.
func (s *ProjectService) CreateProject(userID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	return s.Projects.Create(&model.Project{
		UserID: userID,
		Name:   name,
		Status: model.ProjectInProgress,
	})
}

func (s *ProjectService) ListProjects(userID string) ([]model.Project, error) {
	return s.Projects.FindByUserID(userID)
}

// GetProject answers only for the owner; a project owned by anyone
// else surfaces as record-not-found.
func (s *ProjectService) GetProject(id, userID string) (*model.Project, error) {
	return s.Projects.FindByIDAndUserID(id, userID)
}

func (s *ProjectService) GetProjectDetail(id, userID string) (*model.ProjectDetail, error) {
	project, err := s.Projects.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.Items.FindByProjectID(project.ID)
	if err != nil {
		return nil, err
	}
	wanted, err := s.Wanted.FindByProjectID(project.ID)
	if err != nil {
		return nil, err
	}

	return &model.ProjectDetail{
		Project: *project,
		Items:   items,
		Wanted:  wanted,
	}, nil
}
