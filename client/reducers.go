package client

import "github.com/bugtrack-simple/models"

// Pure transition functions over the store's slices. Each returns a fresh
// slice so callers can apply a confirmed server result without mutating
// state shared with a renderer.

func appendProject(projects []models.Project, p models.Project) []models.Project {
	out := make([]models.Project, 0, len(projects)+1)
	out = append(out, projects...)
	return append(out, p)
}

func replaceProject(projects []models.Project, p models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	for i, existing := range projects {
		if existing.ID == p.ID {
			out[i] = p
		} else {
			out[i] = existing
		}
	}
	return out
}

func removeProject(projects []models.Project, id string) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, existing := range projects {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	return out
}

func appendBug(bugs []models.Bug, b models.Bug) []models.Bug {
	out := make([]models.Bug, 0, len(bugs)+1)
	out = append(out, bugs...)
	return append(out, b)
}

func replaceBug(bugs []models.Bug, b models.Bug) []models.Bug {
	out := make([]models.Bug, len(bugs))
	for i, existing := range bugs {
		if existing.ID == b.ID {
			out[i] = b
		} else {
			out[i] = existing
		}
	}
	return out
}

func removeBug(bugs []models.Bug, id string) []models.Bug {
	out := make([]models.Bug, 0, len(bugs))
	for _, existing := range bugs {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	return out
}
