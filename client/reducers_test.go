package client

import (
	"testing"

	"github.com/bugtrack-simple/models"
)

func TestProjectReducers(t *testing.T) {
	initial := []models.Project{{ID: "p1", Name: "One"}, {ID: "p2", Name: "Two"}}

	t.Run("append keeps order and input", func(t *testing.T) {
		out := appendProject(initial, models.Project{ID: "p3", Name: "Three"})
		if len(out) != 3 || out[2].ID != "p3" {
			t.Errorf("unexpected result: %v", out)
		}
		if len(initial) != 2 {
			t.Error("input slice was mutated")
		}
	})

	t.Run("replace swaps only the matching project", func(t *testing.T) {
		out := replaceProject(initial, models.Project{ID: "p2", Name: "Renamed"})
		if out[1].Name != "Renamed" || out[0].Name != "One" {
			t.Errorf("unexpected result: %v", out)
		}
		if initial[1].Name != "Two" {
			t.Error("input slice was mutated")
		}
	})

	t.Run("remove drops the matching project", func(t *testing.T) {
		out := removeProject(initial, "p1")
		if len(out) != 1 || out[0].ID != "p2" {
			t.Errorf("unexpected result: %v", out)
		}
	})

	t.Run("remove of unknown id is a no-op", func(t *testing.T) {
		out := removeProject(initial, "missing")
		if len(out) != 2 {
			t.Errorf("unexpected result: %v", out)
		}
	})
}

func TestBugReducers(t *testing.T) {
	initial := []models.Bug{{ID: "b1", Title: "first"}, {ID: "b2", Title: "second"}}

	t.Run("append", func(t *testing.T) {
		out := appendBug(initial, models.Bug{ID: "b3"})
		if len(out) != 3 || out[2].ID != "b3" {
			t.Errorf("unexpected result: %v", out)
		}
	})

	t.Run("replace", func(t *testing.T) {
		out := replaceBug(initial, models.Bug{ID: "b1", Title: "edited"})
		if out[0].Title != "edited" || out[1].Title != "second" {
			t.Errorf("unexpected result: %v", out)
		}
		if initial[0].Title != "first" {
			t.Error("input slice was mutated")
		}
	})

	t.Run("remove", func(t *testing.T) {
		out := removeBug(initial, "b2")
		if len(out) != 1 || out[0].ID != "b1" {
			t.Errorf("unexpected result: %v", out)
		}
	})
}
