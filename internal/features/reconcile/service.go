package reconcile

import (
	"context"

	"go-hms/internal/features/room"
	"go-hms/internal/features/tenant"

	"go.uber.org/zap"
)

// Service repairs room occupancy counters. The counters are maintained by
// best-effort increments on tenant writes, so a crash or lost update can
// leave them stale; occupancy is always recomputable from a tenant scan.
type Service interface {
	ReconcileOccupancy(ctx context.Context) (int, error)
}

type ServiceImpl struct {
	RoomRepo   room.RoomRepository
	TenantRepo tenant.TenantRepository
	Logger     *zap.Logger
}

func NewService(roomRepo room.RoomRepository, tenantRepo tenant.TenantRepository, logger *zap.Logger) Service {
	return &ServiceImpl{
		RoomRepo:   roomRepo,
		TenantRepo: tenantRepo,
		Logger:     logger,
	}
}

// ReconcileOccupancy recomputes each room's occupancy from the count of
// active tenants assigned to it and fixes any drifted counter. Returns the
// number of rooms corrected.
func (s *ServiceImpl) ReconcileOccupancy(ctx context.Context) (int, error) {
	counts, err := s.TenantRepo.CountsByRoom(ctx)
	if err != nil {
		return 0, err
	}

	rooms, err := s.RoomRepo.FindAll(ctx, false)
	if err != nil {
		return 0, err
	}

	fixed := 0
	for _, r := range rooms {
		expected := int(counts[r.ID])
		if r.Occupancy == expected {
			continue
		}
		if err := s.RoomRepo.SetOccupancy(ctx, r.ID, expected); err != nil {
			return fixed, err
		}
		s.Logger.Info("corrected room occupancy",
			zap.String("room", r.Number),
			zap.Int("was", r.Occupancy),
			zap.Int("now", expected))
		fixed++
	}

	return fixed, nil
}
