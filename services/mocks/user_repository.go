package mocks

import "github.com/bugtrack-simple/models"

type MockUserRepository struct {
	FindByIDResult         models.User
	FindByIDErr            error
	FindByUsernameResult   models.User
	FindByUsernameErr      error
	ExistsByUsernameResult bool
	ExistsByUsernameErr    error
	CountByIDsResult       int64
	CountByIDsErr          error
	CreateErr              error
	Created                *models.User
}

func (m *MockUserRepository) FindByID(id string) (models.User, error) {
	return m.FindByIDResult, m.FindByIDErr
}

func (m *MockUserRepository) FindByUsername(username string) (models.User, error) {
	return m.FindByUsernameResult, m.FindByUsernameErr
}

func (m *MockUserRepository) ExistsByUsername(username string) (bool, error) {
	return m.ExistsByUsernameResult, m.ExistsByUsernameErr
}

func (m *MockUserRepository) CountByIDs(ids []string) (int64, error) {
	return m.CountByIDsResult, m.CountByIDsErr
}

func (m *MockUserRepository) Create(user models.User) (models.User, error) {
	m.Created = &user
	return user, m.CreateErr
}
