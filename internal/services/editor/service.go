// Package editor provides input mode and view state management
package editor

import (
	"pomoban/internal/domain"
	"pomoban/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
	ModeGoto   = types.ModeGoto
)

// Service manages view state (mode, filter, sort)
type Service struct {
	mode   Mode
	filter *domain.Filter
	sort   *domain.Sort
}

// NewService creates a new editor service with defaults
func NewService() *Service {
	return &Service{
		mode:   ModeNormal,
		filter: domain.NewFilter(),
		sort: &domain.Sort{
			Field: domain.SortByUpdated,
			Order: domain.SortDesc,
		},
	}
}

// GetMode returns the current mode
func (s *Service) GetMode() Mode {
	return s.mode
}

// EnterNormal switches to normal mode
func (s *Service) EnterNormal() {
	s.mode = ModeNormal
}

// EnterSearch switches to search mode
func (s *Service) EnterSearch() {
	s.mode = ModeSearch
}

// EnterGoto switches to goto mode
func (s *Service) EnterGoto() {
	s.mode = ModeGoto
}

// ExitMode returns to normal mode if not already normal
func (s *Service) ExitMode() bool {
	if s.mode != ModeNormal {
		s.mode = ModeNormal
		return true
	}
	return false
}

// IsNormal returns true if in normal mode
func (s *Service) IsNormal() bool {
	return s.mode == ModeNormal
}

// IsSearch returns true if in search mode
func (s *Service) IsSearch() bool {
	return s.mode == ModeSearch
}

// IsGoto returns true if in goto mode
func (s *Service) IsGoto() bool {
	return s.mode == ModeGoto
}

// Filter management

// GetFilter returns the current filter
func (s *Service) GetFilter() *domain.Filter {
	return s.filter
}

// SetSearchQuery updates the search query in the filter
func (s *Service) SetSearchQuery(query string) {
	s.filter.SearchQuery = query
}

// ClearSearch clears the search query
func (s *Service) ClearSearch() {
	s.filter.SearchQuery = ""
}

// ToggleStatusFilter toggles a status in the filter
func (s *Service) ToggleStatusFilter(status domain.Status) {
	s.filter.ToggleStatus(status)
}

// TogglePriorityFilter toggles a priority in the filter
func (s *Service) TogglePriorityFilter(priority domain.Priority) {
	s.filter.TogglePriority(priority)
}

// ToggleRepeatFilter toggles a repeat rule in the filter
func (s *Service) ToggleRepeatFilter(rule domain.RepeatRule) {
	s.filter.ToggleRepeat(rule)
}

// ToggleOverdueFilter toggles the overdue-only flag
func (s *Service) ToggleOverdueFilter() {
	s.filter.ToggleOverdue()
}

// ClearFilters clears all filters
func (s *Service) ClearFilters() {
	s.filter = domain.NewFilter()
}

// IsFilterActive returns true if any filter is active
func (s *Service) IsFilterActive() bool {
	return s.filter.IsActive()
}

// Sort management

// GetSort returns the current sort settings
func (s *Service) GetSort() *domain.Sort {
	return s.sort
}

// SetSortField changes the sort field
func (s *Service) SetSortField(field domain.SortField) {
	s.sort.Field = field
}

// SetSortOrder changes the sort direction
func (s *Service) SetSortOrder(order domain.SortOrder) {
	s.sort.Order = order
}

// ToggleSort toggles between fields or direction
func (s *Service) ToggleSort(field domain.SortField) {
	s.sort.Toggle(field)
}

// FilterAndSort applies both filter and sort to a task list
func (s *Service) FilterAndSort(tasks []domain.Task) []domain.Task {
	filtered := s.filter.Apply(tasks)
	return s.sort.Apply(filtered)
}

// VisibleByStatus filters and sorts tasks, keeping only one column
func (s *Service) VisibleByStatus(tasks []domain.Task, status domain.Status) []domain.Task {
	var inStatus []domain.Task
	filtered := s.filter.Apply(tasks)
	for _, task := range filtered {
		if task.Status == status {
			inStatus = append(inStatus, task)
		}
	}
	return s.sort.Apply(inStatus)
}
