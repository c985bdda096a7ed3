package hold

import (
	"errors"
	"strings"
	"time"

	"activity-booking/internal/domain/resource"

	"github.com/google/uuid"
)

const (
	DefaultTTL       = 15 * time.Minute
	DefaultExtension = 15 * time.Minute
	maxSessionIDLen  = 128
)

var (
	ErrInvalidQuantity  = errors.New("hold quantity must be at least 1")
	ErrInvalidSessionID = errors.New("checkout session id must be 1-128 characters")
	ErrInvalidTTL       = errors.New("hold ttl cannot be negative")
	ErrHoldExpired      = errors.New("hold has expired")
)

// Hold reserves capacity on a resource for one checkout session until expiresAt.
type Hold struct {
	id         uuid.UUID
	sessionID  string
	resourceID uuid.UUID
	kind       resource.Kind
	quantity   int
	expiresAt  time.Time
	createdAt  time.Time
}

func NewHold(sessionID string, resourceID uuid.UUID, kind resource.Kind, quantity int, ttl time.Duration, now time.Time) (*Hold, error) {
	sessionID, err := NormalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if ttl < 0 {
		return nil, ErrInvalidTTL
	}
	if !kind.IsValid() {
		return nil, resource.ErrInvalidKind
	}

	return &Hold{
		id:         uuid.New(),
		sessionID:  sessionID,
		resourceID: resourceID,
		kind:       kind,
		quantity:   quantity,
		expiresAt:  now.Add(ttl),
		createdAt:  now,
	}, nil
}

func ReconstructHold(
	id uuid.UUID,
	sessionID string,
	resourceID uuid.UUID,
	kind resource.Kind,
	quantity int,
	expiresAt, createdAt time.Time,
) *Hold {
	return &Hold{
		id:         id,
		sessionID:  sessionID,
		resourceID: resourceID,
		kind:       kind,
		quantity:   quantity,
		expiresAt:  expiresAt,
		createdAt:  createdAt,
	}
}

func NormalizeSessionID(sessionID string) (string, error) {
	s := strings.TrimSpace(sessionID)
	if s == "" || len(s) > maxSessionIDLen {
		return "", ErrInvalidSessionID
	}
	return s, nil
}

// IsActive reports whether the hold still counts against capacity. expiresAt itself is
// already expired.
func (h *Hold) IsActive(now time.Time) bool {
	return now.Before(h.expiresAt)
}

// Extend pushes the expiry forward from its current value.
func (h *Hold) Extend(by time.Duration, now time.Time) error {
	if !h.IsActive(now) {
		return ErrHoldExpired
	}
	if by < 0 {
		return ErrInvalidTTL
	}
	h.expiresAt = h.expiresAt.Add(by)
	return nil
}

func (h *Hold) ID() uuid.UUID         { return h.id }
func (h *Hold) SessionID() string     { return h.sessionID }
func (h *Hold) ResourceID() uuid.UUID { return h.resourceID }
func (h *Hold) Kind() resource.Kind   { return h.kind }
func (h *Hold) Quantity() int         { return h.quantity }
func (h *Hold) ExpiresAt() time.Time  { return h.expiresAt }
func (h *Hold) CreatedAt() time.Time  { return h.createdAt }

func SumActive(holds []*Hold, now time.Time) int {
	total := 0
	for _, h := range holds {
		if h.IsActive(now) {
			total += h.quantity
		}
	}
	return total
}
