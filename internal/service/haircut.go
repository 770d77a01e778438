package service

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/barberpro/dashboard/internal/core"
	"github.com/barberpro/dashboard/internal/domain/model"
	"github.com/barberpro/dashboard/internal/ports"
)

const haircutsQuery = "haircuts"

// HaircutServiceOptions groups dependencies for HaircutService.
type HaircutServiceOptions struct {
	Haircuts  ports.HaircutAPI // Required
	Cache     *core.QueryCache // Optional
	Telemetry Telemetry
}

// HaircutService manages the haircut catalogue and enforces plan limits.
type HaircutService struct {
	haircuts ports.HaircutAPI
	cache    *core.QueryCache
	logger   *slog.Logger
}

// NewHaircutService constructs a new HaircutService.
func NewHaircutService(opts HaircutServiceOptions) *HaircutService {
	if opts.Haircuts == nil {
		panic("HaircutAPI is required")
	}
	return &HaircutService{
		haircuts: opts.Haircuts,
		cache:    opts.Cache,
		logger:   opts.Telemetry.logger("haircuts"),
	}
}

// PlanUsage describes how many haircuts the user may still create.
type PlanUsage struct {
	Premium   bool `json:"premium"`
	Count     int  `json:"count"`
	Limit     int  `json:"limit"`
	CanCreate bool `json:"can_create"`
}

// HaircutDetail is a haircut together with whether the user may edit it.
type HaircutDetail struct {
	Haircut model.Haircut `json:"haircut"`
	Premium bool          `json:"premium"`
	CanEdit bool          `json:"can_edit"`
}

func haircutsQueryName(status bool) string {
	return core.QueryName(haircutsQuery, strconv.FormatBool(status))
}

// List returns the haircuts with the given status.
func (s *HaircutService) List(ctx context.Context, credential string, status bool) ([]model.Haircut, error) {
	list, err := core.Cached(ctx, s.cache, credential, haircutsQueryName(status),
		func(ctx context.Context) ([]model.Haircut, error) {
			all, err := s.haircuts.ListHaircuts(ctx, credential, model.HaircutsListOptions{Status: status})
			if err != nil {
				return nil, err
			}
			return model.FilterHaircutsByStatus(all, status), nil
		})
	if err != nil {
		return nil, wrap("list haircuts", err)
	}
	return list, nil
}

// Usage reports the plan and haircut count, fetched concurrently.
func (s *HaircutService) Usage(ctx context.Context, credential string) (PlanUsage, error) {
	var (
		premium bool
		count   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sub, err := s.haircuts.CheckPlan(gctx, credential)
		if err != nil {
			return wrap("check plan", err)
		}
		premium = sub.IsActive()
		return nil
	})
	g.Go(func() error {
		n, err := s.haircuts.CountHaircuts(gctx, credential)
		if err != nil {
			return wrap("count haircuts", err)
		}
		count = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return PlanUsage{}, err
	}

	return PlanUsage{
		Premium:   premium,
		Count:     count,
		Limit:     model.FreePlanHaircutLimit,
		CanCreate: model.CanCreateHaircut(premium, count),
	}, nil
}

// Create registers a haircut unless the free plan limit is reached.
func (s *HaircutService) Create(
	ctx context.Context,
	credential string,
	req model.CreateHaircutRequest,
) (model.Haircut, error) {
	usage, err := s.Usage(ctx, credential)
	if err != nil {
		return model.Haircut{}, err
	}
	if !usage.CanCreate {
		return model.Haircut{}, ErrPlanLimitReached
	}

	h, err := s.haircuts.CreateHaircut(ctx, credential, req)
	if err != nil {
		return model.Haircut{}, wrap("create haircut", err)
	}
	s.invalidate(ctx, credential)
	s.logger.InfoContext(ctx, "haircut created", "haircut_id", h.ID)
	return h, nil
}

// Detail returns a haircut and the edit permission, fetched concurrently.
func (s *HaircutService) Detail(ctx context.Context, credential, id string) (HaircutDetail, error) {
	var out HaircutDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := s.haircuts.GetHaircut(gctx, credential, id)
		if err != nil {
			return wrap("get haircut", err)
		}
		out.Haircut = h
		return nil
	})
	g.Go(func() error {
		sub, err := s.haircuts.CheckPlan(gctx, credential)
		if err != nil {
			return wrap("check plan", err)
		}
		out.Premium = sub.IsActive()
		return nil
	})
	if err := g.Wait(); err != nil {
		return HaircutDetail{}, err
	}
	out.CanEdit = out.Premium
	return out, nil
}

// Update edits a haircut. Only premium users may edit.
func (s *HaircutService) Update(
	ctx context.Context,
	credential string,
	req model.UpdateHaircutRequest,
) (model.Haircut, error) {
	sub, err := s.haircuts.CheckPlan(ctx, credential)
	if err != nil {
		return model.Haircut{}, wrap("check plan", err)
	}
	if !sub.IsActive() {
		return model.Haircut{}, ErrPremiumRequired
	}

	h, err := s.haircuts.UpdateHaircut(ctx, credential, req)
	if err != nil {
		return model.Haircut{}, wrap("update haircut", err)
	}
	s.invalidate(ctx, credential)
	return h, nil
}

// invalidate drops both cached haircut lists; a status change moves a haircut between them.
func (s *HaircutService) invalidate(ctx context.Context, credential string) {
	if err := s.cache.Invalidate(ctx, credential, haircutsQueryName(true), haircutsQueryName(false)); err != nil {
		s.logger.WarnContext(ctx, "haircut cache invalidation failed", "error", err)
	}
}
