// Package client provides the API client and the application state store
// used by front ends. The server is the source of truth: the store only
// changes after a confirmed response.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bugtrack-simple/dto"
	"github.com/bugtrack-simple/models"
)

// Client calls the tracker API with an optional bearer token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a client for the given API base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope matches the server's JSON response shape.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	User    json.RawMessage `json:"user"`
}

func (c *Client) do(method, path string, body interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var env envelope
	if resp.StatusCode >= 400 {
		// Error bodies are best-effort JSON; a proxy or crash may send
		// nothing, in which case the status text stands in.
		_ = json.Unmarshal(payload, &env)
		return nil, errorFromStatus(resp.StatusCode, env.Message)
	}

	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &env, nil
}

// errorFromStatus rebuilds the domain error taxonomy from a status code so
// callers can branch on kind the same way server code does.
func errorFromStatus(code int, message string) error {
	if message == "" {
		message = http.StatusText(code)
	}
	switch code {
	case http.StatusBadRequest:
		return models.NewValidationError(message)
	case http.StatusUnauthorized:
		return models.NewAuthError(message)
	case http.StatusForbidden:
		return models.NewForbiddenError(message)
	case http.StatusNotFound:
		return models.NewNotFoundError(message)
	case http.StatusConflict:
		return models.NewConflictError(message)
	}
	return fmt.Errorf("server error (%d): %s", code, message)
}

// Signup registers a new account. No session is issued; log in afterwards.
func (c *Client) Signup(username, password string, role models.Role) (models.User, error) {
	env, err := c.do(http.MethodPost, "/signup", dto.SignupRequest{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return models.User{}, err
	}
	var user models.User
	err = json.Unmarshal(env.User, &user)
	return user, err
}

// Login exchanges credentials for a bearer token and user summary.
func (c *Client) Login(username, password string) (dto.AuthResponse, error) {
	env, err := c.do(http.MethodPost, "/login", dto.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return dto.AuthResponse{}, err
	}
	var auth dto.AuthResponse
	err = json.Unmarshal(env.Data, &auth)
	return auth, err
}

// Projects lists every project.
func (c *Client) Projects() ([]models.Project, error) {
	env, err := c.do(http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, err
	}
	var projects []models.Project
	err = json.Unmarshal(env.Data, &projects)
	return projects, err
}

// CreateProject creates a project; the caller must be a manager.
func (c *Client) CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	env, err := c.do(http.MethodPost, "/projects", req)
	if err != nil {
		return models.Project{}, err
	}
	var project models.Project
	err = json.Unmarshal(env.Data, &project)
	return project, err
}

// UpdateProject renames a project and/or adds members.
func (c *Client) UpdateProject(projectID string, req dto.UpdateProjectRequest) (models.Project, error) {
	env, err := c.do(http.MethodPatch, "/projects/"+projectID, req)
	if err != nil {
		return models.Project{}, err
	}
	var project models.Project
	err = json.Unmarshal(env.Data, &project)
	return project, err
}

// DeleteProject removes a project and everything it owns.
func (c *Client) DeleteProject(projectID string) error {
	_, err := c.do(http.MethodDelete, "/projects/"+projectID, nil)
	return err
}

// Bugs lists a project's bugs, oldest first.
func (c *Client) Bugs(projectID string) ([]models.Bug, error) {
	env, err := c.do(http.MethodGet, "/projects/"+projectID+"/bugs", nil)
	if err != nil {
		return nil, err
	}
	var bugs []models.Bug
	err = json.Unmarshal(env.Data, &bugs)
	return bugs, err
}

// CreateBug files a new bug in a project.
func (c *Client) CreateBug(projectID string, req dto.BugRequest) (models.Bug, error) {
	env, err := c.do(http.MethodPost, "/projects/"+projectID+"/bugs", req)
	if err != nil {
		return models.Bug{}, err
	}
	var bug models.Bug
	err = json.Unmarshal(env.Data, &bug)
	return bug, err
}

// EditBug updates a bug's title, description and priority.
func (c *Client) EditBug(projectID, bugID string, req dto.BugRequest) (models.Bug, error) {
	env, err := c.do(http.MethodPatch, "/projects/"+projectID+"/bugs/"+bugID, req)
	if err != nil {
		return models.Bug{}, err
	}
	var bug models.Bug
	err = json.Unmarshal(env.Data, &bug)
	return bug, err
}

// CloseBug transitions an open bug to closed.
func (c *Client) CloseBug(projectID, bugID string) (models.Bug, error) {
	env, err := c.do(http.MethodPost, "/projects/"+projectID+"/bugs/"+bugID+"/close", nil)
	if err != nil {
		return models.Bug{}, err
	}
	var bug models.Bug
	err = json.Unmarshal(env.Data, &bug)
	return bug, err
}

// ReopenBug transitions a closed bug back to open.
func (c *Client) ReopenBug(projectID, bugID string) (models.Bug, error) {
	env, err := c.do(http.MethodPost, "/projects/"+projectID+"/bugs/"+bugID+"/reopen", nil)
	if err != nil {
		return models.Bug{}, err
	}
	var bug models.Bug
	err = json.Unmarshal(env.Data, &bug)
	return bug, err
}

// DeleteBug removes a bug permanently.
func (c *Client) DeleteBug(projectID, bugID string) error {
	_, err := c.do(http.MethodDelete, "/projects/"+projectID+"/bugs/"+bugID, nil)
	return err
}
