package mem

import (
	"sync"

	"travelexplorer/internal/booking"
	"travelexplorer/internal/models/request_models"
)

// SessionStore keeps the per-user working state that lives only as long as
// the process: the booking draft and the last search filters.
type SessionStore interface {
	GetDraft(userID string) (booking.Draft, bool)
	SetDraft(userID string, draft booking.Draft)
	// UpdateDraft merges update into the stored draft, starting from an
	// empty one when there is none, and returns the result.
	UpdateDraft(userID string, update booking.DraftUpdate) booking.Draft
	ClearDraft(userID string)

	GetFilters(userID string) request_models.SearchFilters
	MergeFilters(userID string, filters request_models.SearchFilters) request_models.SearchFilters
	ClearFilters(userID string)

	// Drop forgets everything kept for userID.
	Drop(userID string)
}

type session struct {
	draft   *booking.Draft
	filters request_models.SearchFilters
}

type Sessions struct {
	mu   sync.Mutex
	data map[string]*session
}

func NewSessions() *Sessions {
	return &Sessions{data: make(map[string]*session)}
}

func (s *Sessions) get(userID string) *session {
	sess, ok := s.data[userID]
	if !ok {
		sess = &session{}
		s.data[userID] = sess
	}
	return sess
}

func (s *Sessions) GetDraft(userID string) (booking.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[userID]
	if !ok || sess.draft == nil {
		return booking.Draft{}, false
	}
	return sess.draft.Clone(), true
}

func (s *Sessions) SetDraft(userID string, draft booking.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := draft.Clone()
	d.Synchronize()
	s.get(userID).draft = &d
}

func (s *Sessions) UpdateDraft(userID string, update booking.DraftUpdate) booking.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(userID)
	if sess.draft == nil {
		sess.draft = &booking.Draft{}
	}
	sess.draft.Apply(update)
	return sess.draft.Clone()
}

func (s *Sessions) ClearDraft(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.data[userID]; ok {
		sess.draft = nil
	}
}

func (s *Sessions) GetFilters(userID string) request_models.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.data[userID]; ok {
		return sess.filters
	}
	return request_models.SearchFilters{}
}

func (s *Sessions) MergeFilters(userID string, filters request_models.SearchFilters) request_models.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(userID)
	sess.filters = sess.filters.Merge(filters)
	return sess.filters
}

func (s *Sessions) ClearFilters(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.data[userID]; ok {
		sess.filters = request_models.SearchFilters{}
	}
}

func (s *Sessions) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, userID)
}

// Len reports how many users have session state.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data)
}
