package voucher

import (
	"time"

	"activity-booking/internal/domain/money"

	"github.com/google/uuid"
)

type Application struct {
	VoucherID  uuid.UUID
	Code       Code
	UsedAmount money.Money
}

type Allocation struct {
	Applications       []Application
	TotalDiscount      money.Money
	RemainingUncovered money.Money
}

// InvalidError carries the code and reason of the first voucher that could not be used.
type InvalidError struct {
	Code   Code
	Reason error
}

func (e *InvalidError) Error() string {
	return string(e.Code) + ": " + e.Reason.Error()
}

func (e *InvalidError) Unwrap() error { return e.Reason }

// DedupeCodes normalizes codes and keeps first occurrences in order. Blank entries are dropped.
func DedupeCodes(raw []string) []Code {
	seen := make(map[Code]struct{}, len(raw))
	out := make([]Code, 0, len(raw))
	for _, r := range raw {
		c, err := NormalizeCode(r)
		if err != nil {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Allocate debits vouchers greedily in the given order until target is covered.
// Vouchers after the point where nothing remains uncovered are neither validated nor touched.
// On error no voucher is left partially debited by this call.
func Allocate(vouchers []*Voucher, target money.Money, orderID uuid.UUID, now time.Time) (Allocation, error) {
	uncovered := target
	var picks []Application

	for _, v := range vouchers {
		if uncovered.IsZero() {
			break
		}
		if err := v.Redeemable(now); err != nil {
			return Allocation{RemainingUncovered: target}, &InvalidError{Code: v.code, Reason: err}
		}
		used := money.Min(v.remaining, uncovered)
		picks = append(picks, Application{VoucherID: v.id, Code: v.code, UsedAmount: used})
		uncovered = uncovered.Sub(used)
	}

	byID := make(map[uuid.UUID]*Voucher, len(vouchers))
	for _, v := range vouchers {
		byID[v.id] = v
	}
	for _, p := range picks {
		if err := byID[p.VoucherID].Debit(p.UsedAmount, orderID); err != nil {
			return Allocation{RemainingUncovered: target}, err
		}
	}

	return Allocation{
		Applications:       picks,
		TotalDiscount:      target.Sub(uncovered),
		RemainingUncovered: uncovered,
	}, nil
}
