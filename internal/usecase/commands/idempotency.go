package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"slices"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/voucher"
	"activity-booking/internal/infra"
	"activity-booking/internal/pkg/errs"
	"activity-booking/internal/usecase/shared"
)

const createOrderEndpoint = "POST /api/orders"

// handleIdempotency claims the key for this request. A non-nil result is the replay of a
// completed request with the same body.
func (uc *orderUseCaseImpl) handleIdempotency(ctx context.Context, key string, req CreateOrderRequest) (*CreateOrderResult, error) {
	requestHash := calculateRequestHash(req)
	now := uc.clock.Now()
	expiresAt := now.Add(uc.cfg.IdempotencyTTL)
	scope := req.SessionID

	var claimed bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, key, scope, createOrderEndpoint, requestHash, expiresAt, now)
		if err != nil {
			return repoErr(err, nil)
		}
		if inserted {
			claimed = true
			return nil
		}
		n, err := tx.Idempotency().ClaimExpired(ctx, key, scope, requestHash, expiresAt, now)
		if err != nil {
			return repoErr(err, nil)
		}
		claimed = n > 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, nil
	}

	existing, err := uc.uow.CommandReads().IdempotencyByKey(ctx, key, scope)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// released or expired between the claim and this read
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, repoErr(err, nil)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultOrderID == nil {
			return nil, errs.Mark(errs.New("completed request missing result order id"), errs.ErrDatabaseOperationFailed)
		}
		view, err := uc.orders.GetByID(ctx, *existing.ResultOrderID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result := &CreateOrderResult{Order: view, IsReplayed: true}
		if p := view.Payment; p != nil && p.IntentID != nil {
			result.Intent = &PayableIntent{
				IntentID:     *p.IntentID,
				ClientSecret: p.ClientSecret,
				Amount:       money.Cents(p.Amount),
				Currency:     p.Currency,
			}
		}
		return result, nil

	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.Mark(errs.New("invalid idempotency key status "+existing.Status), errs.ErrDatabaseOperationFailed)
	}
}

// releaseIdempotencyKey lets a client retry a request that failed before committing.
func (uc *orderUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key, scope string) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Delete(ctx, key, scope)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key, "error", err)
	}
}

// calculateRequestHash ignores code case and duplicates so equivalent bodies match.
func calculateRequestHash(req CreateOrderRequest) string {
	codes := make([]string, 0, len(req.VoucherCodes))
	for _, c := range voucher.DedupeCodes(req.VoucherCodes) {
		codes = append(codes, c.String())
	}
	req.VoucherCodes = slices.Clip(codes)

	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
