package quote

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Store is the in-memory, append-only quote collection. State lives for the
// lifetime of the process; there is no durability contract. The mutex is
// only there because HTTP handlers run on separate goroutines.
type Store struct {
	mu      sync.RWMutex
	quotes  []*Quote
	byID    map[string]*Quote
	lastSeq int
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*Quote)}
}

// Append adds q to the end of the collection. The id must be unused.
func (s *Store) Append(q *Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[q.ID]; ok {
		return &DuplicateIDError{ID: q.ID}
	}
	s.quotes = append(s.quotes, q)
	s.byID[q.ID] = q
	if seq := numberSeq(q.Number); seq > s.lastSeq {
		s.lastSeq = seq
	}
	return nil
}

func (s *Store) FindByID(id string) (*Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return q, nil
}

// Filter matches query as a case-insensitive substring of number or customer
// name, AND status exactly. Empty query and status "all" (or "") match all.
func (s *Store) Filter(query string, status string) []*Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		if query != "" &&
			!strings.Contains(strings.ToLower(q.Number), query) &&
			!strings.Contains(strings.ToLower(q.Customer.Name), query) {
			continue
		}
		if status != "" && status != "all" && string(q.Status) != status {
			continue
		}
		out = append(out, q)
	}
	return out
}

// All returns the collection in insertion order.
func (s *Store) All() []*Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// ByDateDesc returns up to limit quotes, most recent date first. A limit of
// zero or less returns everything.
func (s *Store) ByDateDesc(limit int) []*Quote {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CountByStatus tallies quotes per status for the dashboard.
func (s *Store) CountByStatus() map[Status]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[Status]int, 4)
	for _, q := range s.quotes {
		counts[q.Status]++
	}
	return counts
}

// NextNumber issues the next display number, RM0001-23 style: a zero-padded
// process-wide sequence plus the two-digit year of the quote date.
func (s *Store) NextNumber(date time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeq++
	return formatNumber(s.lastSeq, date)
}
