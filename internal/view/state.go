// Package view holds the FAQ view state: which tab is active, which entry
// is expanded, and the dataset once the single initial fetch resolves.
package view

import (
	"backend-faq/internal/helper"
	"backend-faq/internal/models"
	"slices"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseLoadFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseLoadFailed:
		return "load_failed"
	default:
		return "unknown"
	}
}

const noneExpanded = -1

// State is owned by a single event loop and is not safe for concurrent use.
type State struct {
	ActiveTab string
	Dataset   *models.Dataset
	IsLoading bool
	Err       error

	expanded int
}

func NewState() *State {
	return &State{
		ActiveTab: models.AllTab,
		IsLoading: true,
		expanded:  noneExpanded,
	}
}

func (s *State) Phase() Phase {
	switch {
	case s.IsLoading:
		return PhaseLoading
	case s.Dataset == nil:
		return PhaseLoadFailed
	default:
		return PhaseLoaded
	}
}

// Resolve applies the fetch result. Only the first call has any effect.
func (s *State) Resolve(ds *models.Dataset, err error) bool {
	if !s.IsLoading {
		return false
	}
	s.IsLoading = false
	if err != nil {
		s.Err = err
		return true
	}
	s.Dataset = ds
	return true
}

// SelectTab does not validate name; unknown tabs filter to nothing.
func (s *State) SelectTab(name string) {
	s.ActiveTab = name
}

func (s *State) Toggle(index int) {
	if s.expanded == index {
		s.expanded = noneExpanded
		return
	}
	s.expanded = index
}

func (s *State) ExpandedIndex() (int, bool) {
	return s.expanded, s.expanded != noneExpanded
}

func (s *State) IsExpanded(index int) bool {
	return s.expanded != noneExpanded && s.expanded == index
}

func (s *State) Categories() []string {
	categories := []string{models.AllTab}
	if s.Dataset == nil {
		return categories
	}
	return append(categories, helper.TabsWithoutAll(s.Dataset.Tabs)...)
}

func (s *State) FilteredFAQs() []models.FAQ {
	if s.Dataset == nil {
		return []models.FAQ{}
	}

	if s.ActiveTab != models.AllTab {
		items := s.Dataset.FAQs[s.ActiveTab]
		if items == nil {
			return []models.FAQ{}
		}
		return slices.Clone(items)
	}

	all := make([]models.FAQ, 0, s.Dataset.Count())
	for _, category := range helper.CategoryOrder(s.Dataset.Tabs, s.Dataset.FAQs) {
		all = append(all, s.Dataset.FAQs[category]...)
	}
	return all
}
