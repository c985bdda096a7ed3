package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"activity-booking/internal/domain/booking"
	"activity-booking/internal/domain/capacity"
	"activity-booking/internal/domain/cart"
	"activity-booking/internal/domain/customer"
	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/payment"
	"activity-booking/internal/domain/resource"
	"activity-booking/internal/domain/voucher"
	sqlc "activity-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Resources() ResourceRepository
	Holds() HoldRepository
	Cart() CartRepository
	Vouchers() VoucherRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	Bookings() BookingRepository
	Customers() CustomerRepository
	WebhookEvents() WebhookEventRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are unlocked lookups needed by commands before or inside a transaction.
type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	CartItems(ctx context.Context, sessionID string) ([]*cart.Item, error)
	IdempotencyByKey(ctx context.Context, key, scope string) (*IdempotencyRecord, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) error
	LockByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	Update(ctx context.Context, r *resource.Resource) error
	// Counts recomputes confirmed and held seats. A non-empty excludeSession leaves
	// that session's holds out of Held.
	Counts(ctx context.Context, r *resource.Resource, now time.Time, excludeSession string) (capacity.Counts, error)
}

type HoldRepository interface {
	Upsert(ctx context.Context, h *hold.Hold) (*hold.Hold, error)
	LockActive(ctx context.Context, sessionID string, resourceID uuid.UUID, now time.Time) (*hold.Hold, error)
	UpdateExpiry(ctx context.Context, h *hold.Hold) error
	Delete(ctx context.Context, sessionID string, resourceID uuid.UUID) (int64, error)
	DeleteBySession(ctx context.Context, sessionID string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	ExtendSession(ctx context.Context, sessionID string, until, now time.Time) (int64, error)
}

type CartRepository interface {
	Add(ctx context.Context, item *cart.Item) error
	// Remove returns the resource the removed item booked, nil for voucher items.
	Remove(ctx context.Context, sessionID string, itemID uuid.UUID) (*uuid.UUID, error)
	Clear(ctx context.Context, sessionID string) (int64, error)
}

type VoucherRepository interface {
	LockByCode(ctx context.Context, code voucher.Code) (*voucher.Voucher, error)
	LockByID(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error)
	FindBySourceItem(ctx context.Context, orderItemID uuid.UUID) (*voucher.Voucher, error)
	// Insert reports false when a unique constraint swallowed the row.
	Insert(ctx context.Context, v *voucher.Voucher) (bool, error)
	SaveBalance(ctx context.Context, v *voucher.Voucher, now time.Time) error
	CreateApplications(ctx context.Context, orderID uuid.UUID, apps []voucher.Application, now time.Time) error
	ListOpenApplications(ctx context.Context, orderID uuid.UUID) ([]AppliedVoucher, error)
	MarkRestored(ctx context.Context, applicationID uuid.UUID, now time.Time) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	LockByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, o *order.Order) error
	LinkBooking(ctx context.Context, itemID, bookingID uuid.UUID) error
	LinkVoucher(ctx context.Context, itemID, voucherID uuid.UUID) error
	ListExpiredPendingIDs(ctx context.Context, createdBefore time.Time, limit int32) ([]uuid.UUID, error)
	PendingIDBySession(ctx context.Context, sessionID string) (*uuid.UUID, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	LockByIntentID(ctx context.Context, intentID string) (*payment.Payment, error)
	LockByOrderID(ctx context.Context, orderID uuid.UUID) (*payment.Payment, error)
	Update(ctx context.Context, p *payment.Payment) error
}

type BookingRepository interface {
	// Insert is idempotent per order item; created is false when the booking already existed.
	Insert(ctx context.Context, b *booking.Booking) (id uuid.UUID, created bool, err error)
}

type CustomerRepository interface {
	FindOrCreate(ctx context.Context, c *customer.Customer) (uuid.UUID, error)
}

type WebhookEventRepository interface {
	// MarkProcessed reports false when the event id was already recorded.
	MarkProcessed(ctx context.Context, eventID, eventType string, now time.Time) (bool, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key, scope, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, key, scope string, orderID uuid.UUID) error
	ClaimExpired(ctx context.Context, key, scope, requestHash string, expiresAt, now time.Time) (int64, error)
	Delete(ctx context.Context, key, scope string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, now time.Time, maxAttempts, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt, now time.Time) error
}
