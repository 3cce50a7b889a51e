package client

import (
	"sort"
	"strings"
	"time"

	"github.com/bugtrack-simple/models"
)

// BugSort arranges a cached bug list for display.
type BugSort string

const (
	SortNewest           BugSort = "newest"
	SortOldest           BugSort = "oldest"
	SortTitleAZ          BugSort = "a-z"
	SortTitleZA          BugSort = "z-a"
	SortRecentlyClosed   BugSort = "closed"
	SortRecentlyReopened BugSort = "reopened"
	SortPriorityHighLow  BugSort = "h-l"
	SortPriorityLowHigh  BugSort = "l-h"
	SortRecentlyUpdated  BugSort = "updated"
)

// BugFilter narrows a cached bug list by resolution state.
type BugFilter string

const (
	FilterAll    BugFilter = "all"
	FilterClosed BugFilter = "closed"
	FilterOpen   BugFilter = "open"
)

// filterBugs keeps the bugs matching the filter. FilterAll passes the list
// through unchanged.
func filterBugs(bugs []models.Bug, by BugFilter) []models.Bug {
	if by == FilterAll || by == "" {
		return bugs
	}
	out := make([]models.Bug, 0, len(bugs))
	for _, b := range bugs {
		if (by == FilterClosed) == b.IsResolved {
			out = append(out, b)
		}
	}
	return out
}

// sortBugs returns a freshly ordered copy; the cached slice keeps its
// server order (creation time ascending).
func sortBugs(bugs []models.Bug, by BugSort) []models.Bug {
	out := make([]models.Bug, len(bugs))
	copy(out, bugs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch by {
		case SortOldest:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortTitleAZ:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortTitleZA:
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		case SortPriorityHighLow:
			return priorityRank(a.Priority) > priorityRank(b.Priority)
		case SortPriorityLowHigh:
			return priorityRank(a.Priority) < priorityRank(b.Priority)
		case SortRecentlyClosed:
			return timeAfter(a.ClosedAt, b.ClosedAt)
		case SortRecentlyReopened:
			return timeAfter(a.ReopenedAt, b.ReopenedAt)
		case SortRecentlyUpdated:
			return timeAfter(a.UpdatedAt, b.UpdatedAt)
		}
		return a.CreatedAt.After(b.CreatedAt) // newest
	})
	return out
}

func priorityRank(p models.Priority) int {
	switch p {
	case models.PriorityHigh:
		return 2
	case models.PriorityMedium:
		return 1
	}
	return 0
}

// timeAfter orders non-nil timestamps descending; bugs without the
// timestamp sink to the end.
func timeAfter(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}
