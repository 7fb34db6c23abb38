package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/modules/user"
)

type service struct {
	userRepo user.Repository
	log      *zap.Logger
	current  *Session
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, log *zap.Logger) Service {
	return &service{userRepo: userRepo, log: log}
}

func (s *service) Login(ctx context.Context, name, password string) (*Session, error) {
	u, err := s.userRepo.GetByCredentials(ctx, name, password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	s.current = &Session{
		ID:     uuid.New(),
		UserID: u.ID,
		Name:   u.Name,
	}
	s.log.Info("user logged in",
		zap.String("session_id", s.current.ID.String()),
		zap.Int64("user_id", u.ID))
	return s.current, nil
}

func (s *service) Logout() {
	if s.current != nil {
		s.log.Info("user logged out", zap.Int64("user_id", s.current.UserID))
	}
	s.current = nil
}

func (s *service) Current() (*Session, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

func (s *service) Require(ctx context.Context, role user.Role) error {
	sess, ok := s.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	has, err := s.userRepo.HasRole(ctx, sess.UserID, role)
	if err != nil {
		return err
	}
	if !has {
		return ErrAccessDenied
	}
	return nil
}
