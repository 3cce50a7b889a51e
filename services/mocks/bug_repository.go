package mocks

import (
	"time"

	"github.com/bugtrack-simple/models"
)

type MockBugRepository struct {
	FindByProjectIDResult []models.Bug
	FindByProjectIDErr    error
	FindByIDResult        models.Bug
	FindByIDErr           error
	CreateErr             error
	Created               *models.Bug
	UpdateErr             error
	Updated               *models.Bug
	SetResolutionRows     int64
	SetResolutionErr      error
	LastSetResolved       *bool
	LastSetActor          string
	DeleteErr             error
	DeletedID             string
}

func (m *MockBugRepository) FindByProjectID(projectID string) ([]models.Bug, error) {
	return m.FindByProjectIDResult, m.FindByProjectIDErr
}

func (m *MockBugRepository) FindByID(projectID, bugID string) (models.Bug, error) {
	return m.FindByIDResult, m.FindByIDErr
}

func (m *MockBugRepository) Create(bug models.Bug) (models.Bug, error) {
	m.Created = &bug
	return bug, m.CreateErr
}

func (m *MockBugRepository) Update(bug models.Bug) (models.Bug, error) {
	m.Updated = &bug
	return bug, m.UpdateErr
}

func (m *MockBugRepository) SetResolution(projectID, bugID string, resolved bool, actorID string, at time.Time) (int64, error) {
	m.LastSetResolved = &resolved
	m.LastSetActor = actorID
	return m.SetResolutionRows, m.SetResolutionErr
}

func (m *MockBugRepository) Delete(projectID, bugID string) error {
	m.DeletedID = bugID
	return m.DeleteErr
}
