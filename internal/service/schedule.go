package service

import (
	"context"
	"log/slog"

	"github.com/barberpro/dashboard/internal/core"
	"github.com/barberpro/dashboard/internal/domain/model"
	"github.com/barberpro/dashboard/internal/ports"
)

const schedulesQuery = "schedules"

// ScheduleServiceOptions groups dependencies for ScheduleService.
type ScheduleServiceOptions struct {
	Schedules ports.ScheduleAPI // Required
	Cache     *core.QueryCache  // Optional
	Telemetry Telemetry
}

// ScheduleService manages open appointments.
type ScheduleService struct {
	schedules ports.ScheduleAPI
	cache     *core.QueryCache
	logger    *slog.Logger
}

// NewScheduleService constructs a new ScheduleService.
func NewScheduleService(opts ScheduleServiceOptions) *ScheduleService {
	if opts.Schedules == nil {
		panic("ScheduleAPI is required")
	}
	return &ScheduleService{
		schedules: opts.Schedules,
		cache:     opts.Cache,
		logger:    opts.Telemetry.logger("schedules"),
	}
}

// List returns the open appointments.
func (s *ScheduleService) List(ctx context.Context, credential string) ([]model.Schedule, error) {
	list, err := core.Cached(ctx, s.cache, credential, schedulesQuery,
		func(ctx context.Context) ([]model.Schedule, error) {
			return s.schedules.ListSchedules(ctx, credential)
		})
	if err != nil {
		return nil, wrap("list schedules", err)
	}
	return list, nil
}

// Create opens an appointment.
func (s *ScheduleService) Create(
	ctx context.Context,
	credential string,
	req model.CreateScheduleRequest,
) (model.Schedule, error) {
	created, err := s.schedules.CreateSchedule(ctx, credential, req)
	if err != nil {
		return model.Schedule{}, wrap("create schedule", err)
	}
	s.invalidate(ctx, credential)
	return created, nil
}

// Finish closes an appointment. The cached list is updated speculatively before
// the backend call and restored from its snapshot if the call fails.
func (s *ScheduleService) Finish(ctx context.Context, credential, id string) error {
	var snapshot []model.Schedule
	cached, err := s.cache.Load(ctx, credential, schedulesQuery, &snapshot)
	if err != nil {
		s.logger.WarnContext(ctx, "schedule snapshot failed", "error", err)
		cached = false
	}

	applied := false
	if cached {
		speculative, found := model.WithoutSchedule(snapshot, id)
		if found {
			applied = true
			if err := s.cache.Store(ctx, credential, schedulesQuery, speculative); err != nil {
				s.logger.WarnContext(ctx, "speculative schedule removal failed", "error", err)
			}
		} else {
			s.logger.DebugContext(ctx, "schedule not in cached list", "schedule_id", id)
		}
	}

	if err := s.schedules.FinishSchedule(ctx, credential, id); err != nil {
		if applied {
			s.restore(ctx, credential, snapshot)
		}
		return wrap("finish schedule", err)
	}

	s.invalidate(ctx, credential)
	s.logger.InfoContext(ctx, "schedule finished", "schedule_id", id)
	return nil
}

// restore puts the snapshot back even when the request context is already gone.
// If that fails the entry is dropped so the next read refetches.
func (s *ScheduleService) restore(ctx context.Context, credential string, snapshot []model.Schedule) {
	ctx = context.WithoutCancel(ctx)
	if err := s.cache.Store(ctx, credential, schedulesQuery, snapshot); err != nil {
		s.logger.WarnContext(ctx, "schedule snapshot restore failed", "error", err)
		s.invalidate(ctx, credential)
	}
}

func (s *ScheduleService) invalidate(ctx context.Context, credential string) {
	if err := s.cache.Invalidate(ctx, credential, schedulesQuery); err != nil {
		s.logger.WarnContext(ctx, "schedule cache invalidation failed", "error", err)
	}
}
