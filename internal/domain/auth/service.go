package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/coastally/coastally-api/pkg/errors"
)

// SessionStore persists the single session record.
type SessionStore interface {
	SaveProfile(ctx context.Context, profile Profile) error
	LoadProfile(ctx context.Context) (Profile, bool, error)
	DeleteProfile(ctx context.Context) error
}

// Service is a deliberate authentication placeholder. Any non-empty
// credentials succeed, nothing is hashed, no tokens are issued. The stored
// profile IS the session.
type Service interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Signup(ctx context.Context, name, email, password, confirm string) (Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (Profile, error)
	AddFavorite(ctx context.Context, location string) (Profile, error)
	RemoveFavorite(ctx context.Context, location string) (Profile, error)
	SavePlan(ctx context.Context, title, location, notes string) (Profile, error)
}

// Validation and transition messages shown to the user.
const (
	msgMissingFields  = "Please fill in all fields!"
	msgPasswordsDiff  = "Passwords do not match!"
	msgPasswordShort  = "Password must be at least 6 characters!"
	msgLoginSuccess   = "Login successful! Welcome to CoastAlly!"
	msgSignupSuccess  = "Account created successfully! Welcome to CoastAlly!"
	minPasswordLength = 6
)

type service struct {
	store  SessionStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires up the auth stub.
func NewService(store SessionStore, logger *slog.Logger) Service {
	return &service{
		store:  store,
		logger: logger.With("component", "auth.service"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Login accepts any non-empty credentials. The profile name is derived from
// the email local part.
func (s *service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, apperrors.Wrap("invalid_input", msgMissingFields, nil)
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	profile := s.newProfile(name, email)
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return Session{}, err
	}
	s.logger.Info("session started", "email", email)
	return Session{Profile: profile, Message: msgLoginSuccess}, nil
}

// Signup validates in the same order a user sees the form errors: password
// agreement first, then length, then completeness.
func (s *service) Signup(ctx context.Context, name, email, password, confirm string) (Session, error) {
	if password != confirm {
		return Session{}, apperrors.Wrap("invalid_input", msgPasswordsDiff, nil)
	}
	if len(password) < minPasswordLength {
		return Session{}, apperrors.Wrap("invalid_input", msgPasswordShort, nil)
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return Session{}, apperrors.Wrap("invalid_input", msgMissingFields, nil)
	}

	profile := s.newProfile(name, email)
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return Session{}, err
	}
	s.logger.Info("account created", "email", email)
	return Session{Profile: profile, Message: msgSignupSuccess}, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.store.DeleteProfile(ctx)
}

// Current returns the stored profile, or auth_required when none exists.
func (s *service) Current(ctx context.Context) (Profile, error) {
	profile, ok, err := s.store.LoadProfile(ctx)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return Profile{}, apperrors.Wrap("auth_required", "no active session", nil)
	}
	return profile, nil
}

func (s *service) AddFavorite(ctx context.Context, location string) (Profile, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Profile{}, apperrors.Wrap("invalid_input", "location is required", nil)
	}
	return s.mutate(ctx, func(p *Profile) error {
		for _, existing := range p.Preferences.FavoriteLocations {
			if strings.EqualFold(existing, location) {
				return nil
			}
		}
		p.Preferences.FavoriteLocations = append(p.Preferences.FavoriteLocations, location)
		return nil
	})
}

func (s *service) RemoveFavorite(ctx context.Context, location string) (Profile, error) {
	return s.mutate(ctx, func(p *Profile) error {
		kept := p.Preferences.FavoriteLocations[:0]
		found := false
		for _, existing := range p.Preferences.FavoriteLocations {
			if strings.EqualFold(existing, location) {
				found = true
				continue
			}
			kept = append(kept, existing)
		}
		if !found {
			return apperrors.Wrap("not_found", "favorite not found", nil)
		}
		p.Preferences.FavoriteLocations = kept
		return nil
	})
}

func (s *service) SavePlan(ctx context.Context, title, location, notes string) (Profile, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Profile{}, apperrors.Wrap("invalid_input", "plan title is required", nil)
	}
	return s.mutate(ctx, func(p *Profile) error {
		p.Preferences.SavedPlans = append(p.Preferences.SavedPlans, SavedPlan{
			ID:        s.newID(),
			Title:     title,
			Location:  strings.TrimSpace(location),
			Notes:     strings.TrimSpace(notes),
			CreatedAt: s.now().UTC(),
		})
		return nil
	})
}

// mutate loads the current profile, applies fn, and persists the result. All
// preference updates require a live session.
func (s *service) mutate(ctx context.Context, fn func(*Profile) error) (Profile, error) {
	profile, err := s.Current(ctx)
	if err != nil {
		return Profile{}, err
	}
	if err := fn(&profile); err != nil {
		return Profile{}, err
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

func (s *service) newProfile(name, email string) Profile {
	return Profile{
		Name:     name,
		Email:    email,
		JoinDate: s.now().UTC(),
		Preferences: Preferences{
			FavoriteLocations: []string{},
			SavedPlans:        []SavedPlan{},
			Notifications:     true,
		},
	}
}
