package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/chup1x/carprice/internal/form"
	"github.com/chup1x/carprice/internal/services/submission"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session is the state one browser owns: its form and its prediction
// lifecycle.
type Session struct {
	ID         string
	Form       *form.Collector
	Controller *submission.Controller
}

type Store struct {
	mu        sync.Mutex
	cache     *expirable.LRU[string, *Session]
	predictor submission.Predictor
	logger    *slog.Logger
	formOpts  []form.Option
}

func NewStore(capacity int, ttl time.Duration, predictor submission.Predictor, logger *slog.Logger, formOpts ...form.Option) *Store {
	return &Store{
		cache:     expirable.NewLRU[string, *Session](capacity, nil, ttl),
		predictor: predictor,
		logger:    logger,
		formOpts:  formOpts,
	}
}

// Get returns the session for id, creating a new one when id is unknown,
// expired or malformed. The returned session's ID may differ from id.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err == nil {
		if sess, ok := s.cache.Get(id); ok {
			return sess
		}
	}

	sess := &Session{
		ID:   uuid.NewString(),
		Form: form.NewCollector(s.formOpts...),
	}
	sess.Controller = submission.NewController(s.predictor, s.logger.With("session", sess.ID))
	s.cache.Add(sess.ID, sess)

	return sess
}

func (s *Store) Len() int {
	return s.cache.Len()
}
