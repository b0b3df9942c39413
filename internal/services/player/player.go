// Package player holds the playback capability that episode pages hand
// episodes to. Pages never touch player state directly.
package player

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNoEpisode is returned when Begin is called without an episode
var ErrNoEpisode = errors.New("no episode to play")

// Player begins playback of an episode
type Player interface {
	Begin(ctx context.Context, episode *models.Episode) error
}

// PlayerFunc adapts a function to the Player interface
type PlayerFunc func(ctx context.Context, episode *models.Episode) error

// Begin calls f
func (f PlayerFunc) Begin(ctx context.Context, episode *models.Episode) error {
	return f(ctx, episode)
}

// Entry is one started playback
type Entry struct {
	Episode   models.Episode `json:"episode"`
	StartedAt time.Time      `json:"startedAt"`
}

// Session is the in-process Player: it tracks the episode currently
// playing and a bounded history of earlier ones, newest first.
type Session struct {
	mu         sync.RWMutex
	current    *Entry
	history    []Entry
	maxHistory int
	now        func() time.Time
}

// NewSession creates a session keeping at most maxHistory past entries
func NewSession(maxHistory int) *Session {
	if maxHistory < 0 {
		maxHistory = 0
	}
	return &Session{
		maxHistory: maxHistory,
		now:        time.Now,
	}
}

// Begin makes episode the current one
func (s *Session) Begin(ctx context.Context, episode *models.Episode) error {
	if episode == nil {
		return ErrNoEpisode
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entry := Entry{Episode: *episode, StartedAt: s.now().UTC()}

	s.mu.Lock()
	if s.current != nil && s.maxHistory > 0 {
		s.history = append([]Entry{*s.current}, s.history...)
		if len(s.history) > s.maxHistory {
			s.history = s.history[:s.maxHistory]
		}
	}
	s.current = &entry
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"episode": episode.ID,
		"title":   episode.Title,
	}).Info("playback started")

	return nil
}

// NowPlaying returns the current entry, if any
func (s *Session) NowPlaying() (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Entry{}, false
	}
	return *s.current, true
}

// History returns earlier entries, newest first
func (s *Session) History() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}
