package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/users/dto"
	"youthcentre_backend/internals/features/users/model"
	helper "youthcentre_backend/internals/helpers"
	helperAuth "youthcentre_backend/internals/helpers/auth"
)

// Store reads are already restricted to what the actor may see.
type Store interface {
	List(ctx context.Context, actor helperAuth.Actor, q dto.ListUsersQuery, p helper.Paging) ([]model.UserModel, int64, error)
	Find(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*model.UserModel, error)
	Inscriptions(ctx context.Context, actor helperAuth.Actor, userID uuid.UUID) ([]dto.UserInscription, error)
}

type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) List(ctx context.Context, actor helperAuth.Actor, q dto.ListUsersQuery, p helper.Paging) ([]model.UserModel, int64, error) {
	q.Wilaya = strings.TrimSpace(q.Wilaya)
	q.Commune = strings.TrimSpace(q.Commune)
	q.Q = strings.TrimSpace(q.Q)
	return s.store.List(ctx, actor, q, p)
}

// Get returns the profile and the inscriptions the caller can see.
// A user with no inscription on the caller's activities reads as not found.
func (s *UserService) Get(ctx context.Context, actor helperAuth.Actor, id uuid.UUID) (*model.UserModel, []dto.UserInscription, error) {
	u, err := s.store.Find(ctx, actor, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helper.NotFound("user not found")
		}
		return nil, nil, err
	}
	ins, err := s.store.Inscriptions(ctx, actor, id)
	if err != nil {
		return nil, nil, err
	}
	return u, ins, nil
}
