package store

import (
	"sitetrack/models"
)

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches a project by primary key.
func (s *Store) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjectByName fetches a project by unique name.
func (s *Store) GetProjectByName(name string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("name = ?", name).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject inserts a new project row.
func (s *Store) CreateProject(project *models.Project) error {
	return s.db.Create(project).Error
}
