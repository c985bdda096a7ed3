package commands

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/commands/resource_mock.go -package=commandsmock

import (
	"context"
	"time"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/patch"
	"activity-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Kind           string
	Title          string
	StartsAt       time.Time
	Capacity       int
	FullPriceCents int64
	// DepositCents is required for multi-day sessions.
	DepositCents *int64
}

// UpdateResourceRequest leaves nil fields untouched.
type UpdateResourceRequest struct {
	Title          *string
	Capacity       *int
	FullPriceCents *int64
	DepositCents   *int64
}

type ResourceCommands interface {
	Create(ctx context.Context, req CreateResourceRequest) (*resource.Resource, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateResourceRequest) (*resource.Resource, error)
}

type resourceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewResourceUseCase(uow shared.UnitOfWork, clk clock.Clock) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *resourceUseCaseImpl) Create(ctx context.Context, req CreateResourceRequest) (*resource.Resource, error) {
	kind, err := resource.ParseKind(req.Kind)
	if err != nil {
		return nil, domainErr(err)
	}
	variant, err := resource.NewVariant(kind, req.DepositCents)
	if err != nil {
		return nil, domainErr(err)
	}
	fullPrice, err := money.FromCents(req.FullPriceCents)
	if err != nil {
		return nil, domainErr(err)
	}

	r, err := resource.NewResource(variant, req.Title, req.StartsAt, req.Capacity, fullPrice, uc.clock.Now())
	if err != nil {
		return nil, domainErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return repoErr(tx.Resources().Create(ctx, r), nil)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *resourceUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateResourceRequest) (*resource.Resource, error) {
	now := uc.clock.Now()

	var updated *resource.Resource
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockResource(ctx, tx, id, "")
		if err != nil {
			return err
		}

		if patch.Changed(req.Title, r.Title()) {
			if err := r.Rename(*req.Title, now); err != nil {
				return domainErr(err)
			}
		}

		if patch.Changed(req.Capacity, r.Capacity()) {
			counts, err := tx.Resources().Counts(ctx, r, now, "")
			if err != nil {
				return repoErr(err, nil)
			}
			if err := r.ChangeCapacity(*req.Capacity, counts.Confirmed, now); err != nil {
				return domainErr(err)
			}
		}

		if req.FullPriceCents != nil || req.DepositCents != nil {
			fullPrice, err := money.FromCents(patch.Coalesce(req.FullPriceCents, r.FullPrice().Amount()))
			if err != nil {
				return domainErr(err)
			}
			var deposit *money.Money
			if req.DepositCents != nil {
				d, err := money.FromCents(*req.DepositCents)
				if err != nil {
					return domainErr(err)
				}
				deposit = &d
			}
			if err := r.Reprice(fullPrice, deposit, now); err != nil {
				return domainErr(err)
			}
		}

		if err := tx.Resources().Update(ctx, r); err != nil {
			return repoErr(err, ErrResourceNotFound)
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
