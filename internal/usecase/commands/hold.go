package commands

//go:generate mockgen -source=hold.go -destination=../../../tests/mock/commands/hold_mock.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/clock"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateHoldRequest struct {
	SessionID    string
	ResourceKind string
	ResourceID   uuid.UUID
	Quantity     int
	// TTL falls back to the configured hold TTL when nil. Zero creates an already expired hold.
	TTL *time.Duration
}

type ReleaseHoldRequest struct {
	SessionID    string
	ResourceKind *string
	ResourceID   *uuid.UUID
}

type ExtendHoldRequest struct {
	SessionID    string
	ResourceKind string
	ResourceID   uuid.UUID
	Extension    *time.Duration
}

type SweepResult struct {
	HoldsRemoved           int64
	IdempotencyKeysRemoved int64
}

type HoldCommands interface {
	Create(ctx context.Context, req CreateHoldRequest) (*hold.Hold, error)
	Release(ctx context.Context, req ReleaseHoldRequest) (int64, error)
	Extend(ctx context.Context, req ExtendHoldRequest) (*hold.Hold, error)
	SweepExpired(ctx context.Context) (*SweepResult, error)
}

type holdUseCaseImpl struct {
	uow   shared.UnitOfWork
	cfg   config.BookingConfig
	clock clock.Clock
}

func NewHoldUseCase(uow shared.UnitOfWork, cfg config.BookingConfig, clk clock.Clock) HoldCommands {
	return &holdUseCaseImpl{uow: uow, cfg: cfg, clock: clk}
}

func (uc *holdUseCaseImpl) Create(ctx context.Context, req CreateHoldRequest) (*hold.Hold, error) {
	kind, err := resource.ParseKind(req.ResourceKind)
	if err != nil {
		return nil, domainErr(err)
	}
	ttl := uc.cfg.HoldTTL
	if req.TTL != nil {
		ttl = *req.TTL
	}

	now := uc.clock.Now()
	h, err := hold.NewHold(req.SessionID, req.ResourceID, kind, req.Quantity, ttl, now)
	if err != nil {
		return nil, domainErr(err)
	}

	var saved *hold.Hold
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := lockResource(ctx, tx, req.ResourceID, kind)
		if err != nil {
			return err
		}

		// the session's current hold on this resource is about to be replaced
		counts, err := tx.Resources().Counts(ctx, r, now, h.SessionID())
		if err != nil {
			return repoErr(err, nil)
		}
		if !capacity.Fits(counts, h.Quantity()) {
			return newCapacityError(r.ID(), counts, h.Quantity())
		}

		saved, err = tx.Holds().Upsert(ctx, h)
		if err != nil {
			return repoErr(err, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (uc *holdUseCaseImpl) Release(ctx context.Context, req ReleaseHoldRequest) (int64, error) {
	sessionID, err := hold.NormalizeSessionID(req.SessionID)
	if err != nil {
		return 0, domainErr(err)
	}
	if req.ResourceKind != nil {
		if _, err := resource.ParseKind(*req.ResourceKind); err != nil {
			return 0, domainErr(err)
		}
	}

	var removed int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		if req.ResourceID == nil {
			removed, derr = tx.Holds().DeleteBySession(ctx, sessionID)
		} else {
			removed, derr = tx.Holds().Delete(ctx, sessionID, *req.ResourceID)
		}
		if derr != nil {
			return repoErr(derr, nil)
		}
		return nil
	})
	return removed, err
}

func (uc *holdUseCaseImpl) Extend(ctx context.Context, req ExtendHoldRequest) (*hold.Hold, error) {
	kind, err := resource.ParseKind(req.ResourceKind)
	if err != nil {
		return nil, domainErr(err)
	}
	sessionID, err := hold.NormalizeSessionID(req.SessionID)
	if err != nil {
		return nil, domainErr(err)
	}
	by := uc.cfg.HoldExtension
	if req.Extension != nil {
		by = *req.Extension
	}

	now := uc.clock.Now()
	var extended *hold.Hold
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Holds().LockActive(ctx, sessionID, req.ResourceID, now)
		if err != nil {
			return repoErr(err, ErrHoldNotFound)
		}
		if h.Kind() != kind {
			return ErrHoldNotFound
		}
		if err := h.Extend(by, now); err != nil {
			if errors.Is(err, hold.ErrHoldExpired) {
				return errs.Mark(err, ErrHoldNotFound)
			}
			return domainErr(err)
		}
		if err := tx.Holds().UpdateExpiry(ctx, h); err != nil {
			return repoErr(err, ErrHoldNotFound)
		}
		extended = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return extended, nil
}

// SweepExpired also purges idempotency keys past their expiry; both deletes are idempotent.
func (uc *holdUseCaseImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	now := uc.clock.Now()
	result := &SweepResult{}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Holds().DeleteExpired(ctx, now)
		if err != nil {
			return repoErr(err, nil)
		}
		result.HoldsRemoved = n

		n, err = tx.Idempotency().DeleteExpired(ctx, now)
		if err != nil {
			return repoErr(err, nil)
		}
		result.IdempotencyKeysRemoved = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.HoldsRemoved > 0 || result.IdempotencyKeysRemoved > 0 {
		slog.Info("expired rows swept",
			"holds", result.HoldsRemoved,
			"idempotency_keys", result.IdempotencyKeysRemoved)
	}
	return result, nil
}

// lockResource takes the row lock that serializes capacity writers and checks the kind.
func lockResource(ctx context.Context, tx shared.Tx, id uuid.UUID, kind resource.Kind) (*resource.Resource, error) {
	r, err := tx.Resources().LockByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, resourceNotFound(kind)
		}
		return nil, repoErr(err, nil)
	}
	if kind != "" && r.Kind() != kind {
		return nil, resourceNotFound(kind)
	}
	return r, nil
}
