package client

import (
	"github.com/bugtrack-simple/dto"
	"github.com/bugtrack-simple/models"
)

// Store is the single application-state cache: the authenticated user, the
// project list and per-project bug lists, normalized by id. It is updated
// only after the server confirms an operation; on failure the previous
// state is left untouched and LastError carries the message.
//
// Bug lists follow a cache-then-fetch-once policy: the first LoadBugs for a
// project hits the server, later calls serve the cache until Logout or
// a full Resume. Edits from other sessions are therefore not visible
// without a reload.
type Store struct {
	client  *Client
	session *Session

	User     *models.User
	Projects []models.Project
	Bugs     map[string][]models.Bug

	// Display arrangement applied by BugList; the cache itself stays in
	// server order.
	SortBy   BugSort
	FilterBy BugFilter

	loaded    map[string]bool
	LastError string
}

// NewStore creates a store around the given API client. session may be nil
// when persistence is not wanted.
func NewStore(c *Client, session *Session) *Store {
	return &Store{
		client:   c,
		session:  session,
		Bugs:     make(map[string][]models.Bug),
		SortBy:   SortNewest,
		FilterBy: FilterAll,
		loaded:   make(map[string]bool),
	}
}

// BugList returns the cached bugs of a project arranged by the store's
// current sort and filter. The cache is not modified.
func (s *Store) BugList(projectID string) []models.Bug {
	return sortBugs(filterBugs(s.Bugs[projectID], s.FilterBy), s.SortBy)
}

// Resume restores a persisted session, if any, and installs its token.
// It reports whether a session was restored.
func (s *Store) Resume() bool {
	if s.session == nil {
		return false
	}
	state, ok := s.session.Load()
	if !ok {
		return false
	}
	user := state.User
	s.User = &user
	s.client.SetToken(state.Token)
	return true
}

// Login authenticates and persists the session on success.
func (s *Store) Login(username, password string) error {
	auth, err := s.client.Login(username, password)
	if err != nil {
		return s.fail(err)
	}
	user := auth.User
	s.User = &user
	s.client.SetToken(auth.Token)
	if s.session != nil {
		if err := s.session.Save(SessionState{Token: auth.Token, User: auth.User}); err != nil {
			// Login itself succeeded; only the resume-without-login
			// convenience is lost, so record it and carry on.
			s.LastError = "session not saved: " + err.Error()
			return nil
		}
	}
	return s.ok()
}

// Signup registers a new account. The store stays logged out; callers
// follow up with Login.
func (s *Store) Signup(username, password string, role models.Role) error {
	if _, err := s.client.Signup(username, password, role); err != nil {
		return s.fail(err)
	}
	return s.ok()
}

// Logout drops the whole cached state and the persisted session.
func (s *Store) Logout() {
	s.User = nil
	s.Projects = nil
	s.Bugs = make(map[string][]models.Bug)
	s.SortBy = SortNewest
	s.FilterBy = FilterAll
	s.loaded = make(map[string]bool)
	s.LastError = ""
	s.client.SetToken("")
	if s.session != nil {
		s.session.Clear()
	}
}

// LoadProjects refetches the full project list.
func (s *Store) LoadProjects() error {
	projects, err := s.client.Projects()
	if err != nil {
		return s.fail(err)
	}
	s.Projects = projects
	return s.ok()
}

// LoadBugs fetches a project's bug list on first view only.
func (s *Store) LoadBugs(projectID string) error {
	if s.loaded[projectID] {
		return nil
	}
	bugs, err := s.client.Bugs(projectID)
	if err != nil {
		return s.fail(err)
	}
	s.Bugs[projectID] = bugs
	s.loaded[projectID] = true
	return s.ok()
}

// CreateProject creates a project and appends the confirmed result.
func (s *Store) CreateProject(req dto.CreateProjectRequest) error {
	project, err := s.client.CreateProject(req)
	if err != nil {
		return s.fail(err)
	}
	s.Projects = appendProject(s.Projects, project)
	return s.ok()
}

// UpdateProject renames and/or extends a project and merges the result.
func (s *Store) UpdateProject(projectID string, req dto.UpdateProjectRequest) error {
	project, err := s.client.UpdateProject(projectID, req)
	if err != nil {
		return s.fail(err)
	}
	s.Projects = replaceProject(s.Projects, project)
	return s.ok()
}

// DeleteProject removes a project and its cached bug list.
func (s *Store) DeleteProject(projectID string) error {
	if err := s.client.DeleteProject(projectID); err != nil {
		return s.fail(err)
	}
	s.Projects = removeProject(s.Projects, projectID)
	delete(s.Bugs, projectID)
	delete(s.loaded, projectID)
	return s.ok()
}

// CreateBug files a bug and appends the confirmed result.
func (s *Store) CreateBug(projectID string, req dto.BugRequest) error {
	bug, err := s.client.CreateBug(projectID, req)
	if err != nil {
		return s.fail(err)
	}
	s.Bugs[projectID] = appendBug(s.Bugs[projectID], bug)
	return s.ok()
}

// EditBug updates a bug and merges the confirmed result.
func (s *Store) EditBug(projectID, bugID string, req dto.BugRequest) error {
	bug, err := s.client.EditBug(projectID, bugID, req)
	if err != nil {
		return s.fail(err)
	}
	s.Bugs[projectID] = replaceBug(s.Bugs[projectID], bug)
	return s.ok()
}

// CloseBug closes a bug and merges the confirmed result.
func (s *Store) CloseBug(projectID, bugID string) error {
	bug, err := s.client.CloseBug(projectID, bugID)
	if err != nil {
		return s.fail(err)
	}
	s.Bugs[projectID] = replaceBug(s.Bugs[projectID], bug)
	return s.ok()
}

// ReopenBug reopens a bug and merges the confirmed result.
func (s *Store) ReopenBug(projectID, bugID string) error {
	bug, err := s.client.ReopenBug(projectID, bugID)
	if err != nil {
		return s.fail(err)
	}
	s.Bugs[projectID] = replaceBug(s.Bugs[projectID], bug)
	return s.ok()
}

// DeleteBug removes a bug from the server and the cache.
func (s *Store) DeleteBug(projectID, bugID string) error {
	if err := s.client.DeleteBug(projectID, bugID); err != nil {
		return s.fail(err)
	}
	s.Bugs[projectID] = removeBug(s.Bugs[projectID], bugID)
	return s.ok()
}

func (s *Store) fail(err error) error {
	s.LastError = err.Error()
	return err
}

func (s *Store) ok() error {
	s.LastError = ""
	return nil
}
