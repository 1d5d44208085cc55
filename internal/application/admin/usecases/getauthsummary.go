package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"authpanel/internal/application/admin/dto"
	"authpanel/internal/domain/provider"
	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/domain/user"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
)

// GetAuthSummaryUseCase computes the dashboard widget counters. The counts
// are independent, so they run concurrently; a failed count degrades to
// zero instead of failing the widget.
type GetAuthSummaryUseCase struct {
	userRepo user.Repository
	linkRepo socialaccount.Repository
	registry *provider.Registry
	logger   logger.Interface
}

func NewGetAuthSummaryUseCase(
	userRepo user.Repository,
	linkRepo socialaccount.Repository,
	registry *provider.Registry,
	logger logger.Interface,
) *GetAuthSummaryUseCase {
	return &GetAuthSummaryUseCase{
		userRepo: userRepo,
		linkRepo: linkRepo,
		registry: registry,
		logger:   logger,
	}
}

func (uc *GetAuthSummaryUseCase) Execute(ctx context.Context) (*dto.AuthSummary, error) {
	summary := &dto.AuthSummary{}

	g, gctx := errgroup.WithContext(ctx)

	count := func(name string, dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				uc.logger.Warnw("dashboard counter failed", "counter", name, "error", err)
				return nil
			}
			*dst = n
			return nil
		})
	}

	count("total_users", &summary.TotalUsers, uc.userRepo.Count)
	count("recent_signups", &summary.RecentSignups, func(ctx context.Context) (int64, error) {
		return uc.userRepo.CountCreatedAfter(ctx, time.Now().Add(-constants.RecentSignupWindow))
	})
	count("staff", &summary.StaffCount, uc.userRepo.CountStaff)
	count("superusers", &summary.SuperuserCount, uc.userRepo.CountSuperusers)

	if uc.registry.Enabled() {
		summary.ProviderCount = len(uc.registry.Providers())
		count("linked_users", &summary.LinkedUsers, uc.linkRepo.CountDistinctUsers)
	}

	// Counters swallow their own failures, so the group never errors.
	_ = g.Wait()

	return summary, nil
}
