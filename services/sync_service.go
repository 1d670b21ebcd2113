package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/grandonbarcia/health-tracker/models"

	"github.com/rs/zerolog/log"
)

// DayStore is the slice of DayService the reconciler needs. Kept small so
// tests can drive the state machine with a stub.
type DayStore interface {
	GetOrCreateDay(userID uint, dateISO string) (*models.UserDay, error)
	DayMeals(dayID uint) (DayMeals, error)
	ReplaceItems(dayID uint, meals DayMeals) error
}

type SyncState string

const (
	SyncClean    SyncState = "clean"
	SyncConflict SyncState = "conflict"
)

type Resolution string

const (
	ResolutionImportLocal Resolution = "import_local"
	ResolutionKeepServer  Resolution = "keep_server"
)

var ErrUnknownResolution = errors.New("unknown resolution choice")

// DayConflict carries both versions of a diverged day so the caller can
// render the choice however it likes. Nothing is written until one of the
// two resolutions is invoked.
type DayConflict struct {
	Date        string   `json:"date"`
	Local       DayMeals `json:"local"`
	Server      DayMeals `json:"server"`
	LocalCount  int      `json:"local_count"`
	ServerCount int      `json:"server_count"`
}

type SyncResult struct {
	State SyncState `json:"state"`
	Meals DayMeals  `json:"meals"`
	// Unavailable is set when the day store could not be reached and the
	// meals are a displayable empty fallback, not authoritative data.
	Unavailable bool         `json:"unavailable,omitempty"`
	Conflict    *DayConflict `json:"conflict,omitempty"`
}

// SyncService reconciles a client's offline day log against the server's
// authoritative copy when the user signs in. Per (user, date) it runs once
// per session: a date resolved (or found clean) is not re-prompted until the
// next sign-in resets the session.
type SyncService struct {
	days DayStore

	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	resolved map[string]bool
}

func NewSyncService(days DayStore) *SyncService {
	return &SyncService{
		days:     days,
		locks:    make(map[string]*sync.Mutex),
		resolved: make(map[string]bool),
	}
}

func syncKey(userID uint, date string) string {
	return fmt.Sprintf("%d|%s", userID, date)
}

// lockDate serializes concurrent reconciliations of the same (user, date)
// so two fetches cannot interleave with two resolutions. Different dates
// proceed independently.
func (s *SyncService) lockDate(userID uint, date string) func() {
	key := syncKey(userID, date)
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *SyncService) isResolved(userID uint, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved[syncKey(userID, date)]
}

func (s *SyncService) markResolved(userID uint, date string) {
	s.mu.Lock()
	s.resolved[syncKey(userID, date)] = true
	s.mu.Unlock()
}

// ResetSession clears the user's resolved set. Called on sign-in so every
// date gets exactly one fresh reconciliation per session.
func (s *SyncService) ResetSession(userID uint) {
	prefix := fmt.Sprintf("%d|", userID)
	s.mu.Lock()
	for key := range s.resolved {
		if strings.HasPrefix(key, prefix) {
			delete(s.resolved, key)
		}
	}
	s.mu.Unlock()
}

// OpenDay reconciles the client's cached meals (nil when it has none) for a
// date against the server. The fetch completes and is fully evaluated before
// anything else happens; no write is ever issued from here. If the store is
// unreachable the result is a displayable empty day and nothing destructive
// occurs. A context cancelled after the fetch (the client navigated away)
// discards the result.
func (s *SyncService) OpenDay(ctx context.Context, userID uint, date string, local *DayMeals) (*SyncResult, error) {
	unlock := s.lockDate(userID, date)
	defer unlock()

	day, err := s.days.GetOrCreateDay(userID, date)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Str("date", date).
			Msg("day fetch failed, serving empty day")
		return &SyncResult{State: SyncClean, Meals: EmptyDayMeals(), Unavailable: true}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	server, err := s.days.DayMeals(day.ID)
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Str("date", date).
			Msg("day items fetch failed, serving empty day")
		return &SyncResult{State: SyncClean, Meals: EmptyDayMeals(), Unavailable: true}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if local == nil || local.Equal(server) || s.isResolved(userID, date) {
		s.markResolved(userID, date)
		return &SyncResult{State: SyncClean, Meals: server}, nil
	}

	return &SyncResult{
		State: SyncConflict,
		Meals: server,
		Conflict: &DayConflict{
			Date:        date,
			Local:       *local,
			Server:      server,
			LocalCount:  local.ItemCount(),
			ServerCount: server.ItemCount(),
		},
	}, nil
}

// Resolve settles a pending conflict. ImportLocal overwrites the server day
// with the local version in exactly one replace call; KeepServer writes
// nothing and the local copy is simply abandoned. Either way the date is
// resolved for the rest of the session, and a later resolution for the same
// date wins over an earlier one.
func (s *SyncService) Resolve(ctx context.Context, userID uint, date string, choice Resolution, local DayMeals) (DayMeals, error) {
	unlock := s.lockDate(userID, date)
	defer unlock()

	day, err := s.days.GetOrCreateDay(userID, date)
	if err != nil {
		return EmptyDayMeals(), err
	}
	if err := ctx.Err(); err != nil {
		return EmptyDayMeals(), err
	}

	switch choice {
	case ResolutionImportLocal:
		if err := s.days.ReplaceItems(day.ID, local); err != nil {
			return EmptyDayMeals(), err
		}
		s.markResolved(userID, date)
		log.Info().Uint("user_id", userID).Str("date", date).
			Int("items", local.ItemCount()).Msg("imported local day over server copy")
		return local, nil

	case ResolutionKeepServer:
		server, err := s.days.DayMeals(day.ID)
		if err != nil {
			return EmptyDayMeals(), err
		}
		s.markResolved(userID, date)
		return server, nil

	default:
		return EmptyDayMeals(), ErrUnknownResolution
	}
}
