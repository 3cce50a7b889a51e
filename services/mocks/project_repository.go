package mocks

import "github.com/bugtrack-simple/models"

type MockProjectRepository struct {
	FindAllResult  []models.Project
	FindAllErr     error
	FindByIDResult models.Project
	FindByIDErr    error
	ExistsResult   bool
	ExistsErr      error
	CreateErr      error
	Created        *models.Project
	RenameErr      error
	RenamedTo      string
	AddMembersErr  error
	AddedMembers   []string
	DeleteErr      error
	DeletedID      string
}

func (m *MockProjectRepository) FindAll() ([]models.Project, error) {
	return m.FindAllResult, m.FindAllErr
}

func (m *MockProjectRepository) FindByID(id string) (models.Project, error) {
	return m.FindByIDResult, m.FindByIDErr
}

func (m *MockProjectRepository) Exists(id string) (bool, error) {
	return m.ExistsResult, m.ExistsErr
}

func (m *MockProjectRepository) Create(project models.Project) (models.Project, error) {
	m.Created = &project
	return project, m.CreateErr
}

func (m *MockProjectRepository) Rename(id, name string) error {
	m.RenamedTo = name
	return m.RenameErr
}

func (m *MockProjectRepository) AddMembers(projectID string, memberIDs []string) error {
	m.AddedMembers = append(m.AddedMembers, memberIDs...)
	return m.AddMembersErr
}

func (m *MockProjectRepository) Delete(id string) error {
	m.DeletedID = id
	return m.DeleteErr
}
