package services

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/repository"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SessionService is the durable local session store. One session exists at a
// time; sign-in replaces any prior one (last write wins, no merging).
type SessionService struct {
	Repo *repository.SessionRepository
	Bus  EventBus.Bus

	mu      sync.Mutex
	current *model.UserProfile
}

func NewSessionService(r *repository.SessionRepository, bus EventBus.Bus) (*SessionService, error) {
	current, err := r.Load(context.Background())
	if err != nil {
		return nil, err
	}
	return &SessionService{Repo: r, Bus: bus, current: current}, nil
}

// SignIn issues a fresh opaque id and creation timestamp, persists the
// profile and replaces any existing session.
func (s *SessionService) SignIn(ctx context.Context, name, email string) (model.UserProfile, error) {
	if email == "" {
		return model.UserProfile{}, errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return model.UserProfile{}, errors.New("invalid email format")
	}
	if name == "" {
		name = "Player"
	}

	profile := model.UserProfile{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Repo.Save(ctx, profile); err != nil {
		return model.UserProfile{}, err
	}
	s.current = &profile
	s.publishLocked()
	return profile, nil
}

// SignOut clears the persisted session entirely. Signing out without a
// session is a no-op.
func (s *SessionService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	if err := s.Repo.Clear(ctx); err != nil {
		return err
	}
	s.current = nil
	s.publishLocked()
	return nil
}

// Update merges the given fields into the current profile. Only name and
// email are mutable. Without a session this is a no-op returning nil.
func (s *SessionService) Update(ctx context.Context, upd model.ProfileUpdate) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, nil
	}

	next := *s.current
	if upd.Name != nil && *upd.Name != "" {
		next.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != "" {
		if !emailRegex.MatchString(*upd.Email) {
			return nil, errors.New("invalid email format")
		}
		next.Email = *upd.Email
	}

	if err := s.Repo.Save(ctx, next); err != nil {
		return nil, err
	}
	s.current = &next
	s.publishLocked()
	out := next
	return &out, nil
}

// Current returns a copy of the signed-in profile, or nil when signed out.
func (s *SessionService) Current() *model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

func (s *SessionService) publishLocked() {
	var snapshot *model.UserProfile
	if s.current != nil {
		out := *s.current
		snapshot = &out
	}
	s.Bus.Publish(TopicSessionUpdated, snapshot)
}
