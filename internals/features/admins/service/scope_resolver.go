// file: internals/features/admins/service/scope_resolver.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"youthcentre_backend/internals/features/admins/model"
	helperAuth "youthcentre_backend/internals/helpers/auth"
	"youthcentre_backend/internals/logger"
)

type AdminFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.AdminModel, error)
}

// cachedScope is what lands in redis under admin_scope:<id>.
type cachedScope struct {
	IsSuperAdmin  bool       `json:"is_super_admin"`
	YouthCentreID *uuid.UUID `json:"youth_centre_id"`
	IsActive      bool       `json:"is_active"`
}

// ScopeResolver turns an admin id from a token into an Actor, read-through
// cached in redis when a client is configured.
type ScopeResolver struct {
	admins AdminFinder
	redis  *redis.Client
	ttl    time.Duration
	log    *zap.SugaredLogger
}

func NewScopeResolver(admins AdminFinder, rdb *redis.Client, ttl time.Duration) *ScopeResolver {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ScopeResolver{admins: admins, redis: rdb, ttl: ttl, log: logger.Named("admin-scope")}
}

func scopeKey(id uuid.UUID) string { return "admin_scope:" + id.String() }

func (s *ScopeResolver) Resolve(ctx context.Context, adminID uuid.UUID) (helperAuth.Actor, error) {
	if sc, ok := s.fromCache(ctx, adminID); ok {
		return toActor(adminID, sc)
	}

	m, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return helperAuth.Actor{}, err
	}
	sc := cachedScope{IsSuperAdmin: m.IsSuperAdmin, YouthCentreID: m.YouthCentreID, IsActive: m.IsActive}
	s.store(ctx, adminID, sc)
	return toActor(adminID, sc)
}

// Invalidate drops cached scopes after a centre binding changes.
func (s *ScopeResolver) Invalidate(ctx context.Context, adminIDs ...uuid.UUID) {
	if s.redis == nil || len(adminIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(adminIDs))
	for _, id := range adminIDs {
		keys = append(keys, scopeKey(id))
	}
	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnw("cache invalidate failed", "keys", keys, "err", err)
	}
}

func (s *ScopeResolver) fromCache(ctx context.Context, id uuid.UUID) (cachedScope, bool) {
	if s.redis == nil {
		return cachedScope{}, false
	}
	raw, err := s.redis.Get(ctx, scopeKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnw("cache read failed", "admin_id", id, "err", err)
		}
		return cachedScope{}, false
	}
	var sc cachedScope
	if err := sonic.Unmarshal(raw, &sc); err != nil {
		return cachedScope{}, false
	}
	return sc, true
}

func (s *ScopeResolver) store(ctx context.Context, id uuid.UUID, sc cachedScope) {
	if s.redis == nil {
		return
	}
	raw, err := sonic.Marshal(sc)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, scopeKey(id), raw, s.ttl).Err(); err != nil {
		s.log.Warnw("cache write failed", "admin_id", id, "err", err)
	}
}

func toActor(id uuid.UUID, sc cachedScope) (helperAuth.Actor, error) {
	if !sc.IsActive {
		return helperAuth.Actor{}, helperAuth.ErrInactiveAdmin
	}
	a := helperAuth.Actor{ID: id, IsSuperAdmin: sc.IsSuperAdmin}
	if !sc.IsSuperAdmin {
		a.YouthCentreID = sc.YouthCentreID
	}
	return a, nil
}
