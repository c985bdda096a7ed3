//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"activity-booking/internal/domain/auth"
	"activity-booking/internal/handler/api"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/tests/common/dbtest"
	"activity-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingFlowSuite struct {
	e2e.SharedSuite
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(BookingFlowSuite))
}

func (s *BookingFlowSuite) addBooking(sessionID string, resourceID uuid.UUID, firstName string) resdto.CartMutationResponse {
	var out resdto.CartMutationResponse
	s.Decode(s.Public(http.MethodPost, "/api/cart/items", map[string]any{
		"checkout_session_id": sessionID,
		"resource_kind":       "multi_day_session",
		"resource_id":         resourceID,
		"participant":         e2e.Participant(firstName),
	}), http.StatusCreated, &out)
	return out
}

func (s *BookingFlowSuite) availability(resourceID uuid.UUID, quantity int) resdto.AvailabilityResponse {
	var out resdto.AvailabilityResponse
	path := fmt.Sprintf("/api/availability/multi_day_session/%s?quantity=%d", resourceID, quantity)
	s.Decode(s.Public(http.MethodGet, path, nil), http.StatusOK, &out)
	return out
}

func (s *BookingFlowSuite) TestDepositCheckout() {
	s.Run("cart to paid order with materialized bookings", func() {
		resourceID := s.MultiDaySession(6, 69000, 15000)
		session := "sess-" + uuid.NewString()

		cartResp := s.addBooking(session, resourceID, "ana")
		s.Require().NotNil(cartResp.Hold)
		s.Equal(1, cartResp.Hold.Quantity)
		cartResp = s.addBooking(session, resourceID, "bob")
		s.Equal(2, cartResp.Hold.Quantity)

		avail := s.availability(resourceID, 1)
		s.Equal(4, avail.AvailablePlaces)
		s.Equal(2, avail.HeldCount)

		body := map[string]any{"checkout_session_id": session, "contact": e2e.Contact()}
		key := map[string]string{api.HeaderIdempotencyKey: "checkout-" + session}

		var created resdto.CreateOrderResponse
		s.Decode(s.Public(http.MethodPost, "/api/orders", body, key), http.StatusCreated, &created)
		s.Equal("PENDING", created.Order.Status)
		s.Equal(int64(138000), created.Order.Total)
		s.Equal(int64(30000), created.Order.Deposit)
		s.Require().NotNil(created.PaymentIntent)
		s.Equal(int64(30000), created.PaymentIntent.Amount)

		replay := s.Public(http.MethodPost, "/api/orders", body, key)
		var replayed resdto.CreateOrderResponse
		s.Decode(replay, http.StatusOK, &replayed)
		s.Equal("true", replay.Header().Get(api.HeaderReplayed))
		s.Equal(created.Order.ID, replayed.Order.ID)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "orders", ""))

		callback := map[string]any{"payment_intent_id": created.PaymentIntent.ID, "status": "SUCCEEDED"}
		var outcome resdto.PaymentOutcomeResponse
		s.Decode(s.Admin(auth.RoleAdmin, http.MethodPost, "/api/admin/payments/callback", callback), http.StatusOK, &outcome)
		s.Equal(resdto.CallbackProcessed, outcome.Status)
		s.Equal("PAID", outcome.OrderStatus)
		s.Require().NotNil(outcome.Materialized)
		s.Equal(2, outcome.Materialized.BookingsCreated)

		s.Decode(s.Admin(auth.RoleAdmin, http.MethodPost, "/api/admin/payments/callback", callback), http.StatusOK, &outcome)
		s.True(outcome.Replayed)
		s.Equal(2, dbtest.CountRows(s.T(), s.DB, "bookings", "order_id = $1", created.Order.ID))

		// holds are consumed by settlement, seats are now confirmed
		avail = s.availability(resourceID, 1)
		s.Equal(2, avail.ConfirmedCount)
		s.Equal(0, avail.HeldCount)
		s.Equal(4, avail.AvailablePlaces)

		var order resdto.OrderResponse
		s.Decode(s.Admin(auth.RoleMonitor, http.MethodGet, "/api/admin/orders/"+created.Order.ID.String(), nil), http.StatusOK, &order)
		s.Equal("PAID", order.Status)
		s.Require().NotNil(order.CustomerID)
	})

	s.Run("failed payment cancels the order and frees the seats", func() {
		resourceID := s.MultiDaySession(2, 69000, 15000)
		session := "sess-" + uuid.NewString()
		s.addBooking(session, resourceID, "ana")

		var created resdto.CreateOrderResponse
		s.Decode(s.Public(http.MethodPost, "/api/orders",
			map[string]any{"checkout_session_id": session, "contact": e2e.Contact()}), http.StatusCreated, &created)

		var outcome resdto.PaymentOutcomeResponse
		s.Decode(s.Admin(auth.RoleAdmin, http.MethodPost, "/api/admin/payments/callback",
			map[string]any{"payment_intent_id": created.PaymentIntent.ID, "status": "FAILED"}), http.StatusOK, &outcome)
		s.Equal("CANCELLED", outcome.OrderStatus)

		s.Equal(2, s.availability(resourceID, 2).AvailablePlaces)
		s.Zero(dbtest.CountRows(s.T(), s.DB, "bookings", ""))
	})

	s.Run("public api key cannot settle an order", func() {
		resourceID := s.MultiDaySession(2, 69000, 15000)
		session := "sess-" + uuid.NewString()
		s.addBooking(session, resourceID, "ana")

		var created resdto.CreateOrderResponse
		s.Decode(s.Public(http.MethodPost, "/api/orders",
			map[string]any{"checkout_session_id": session, "contact": e2e.Contact()}), http.StatusCreated, &created)

		w := s.Public(http.MethodPost, "/api/admin/payments/callback",
			map[string]any{"payment_intent_id": created.PaymentIntent.ID, "status": "SUCCEEDED"})
		s.Equal(http.StatusUnauthorized, w.Code, w.Body.String())
		s.Zero(dbtest.CountRows(s.T(), s.DB, "bookings", ""))
	})

	s.Run("unknown intent is acknowledged and ignored", func() {
		var outcome resdto.PaymentOutcomeResponse
		s.Decode(s.Admin(auth.RoleAdmin, http.MethodPost, "/api/admin/payments/callback",
			map[string]any{"payment_intent_id": "pi_local_unknown", "status": "SUCCEEDED"}), http.StatusOK, &outcome)
		s.Equal(resdto.CallbackIgnored, outcome.Status)
	})
}

func (s *BookingFlowSuite) TestCapacity() {
	s.Run("a hold from another session blocks the last seat", func() {
		resourceID := s.MultiDaySession(1, 69000, 15000)
		s.addBooking("sess-first-buyer", resourceID, "ana")

		w := s.Public(http.MethodPost, "/api/cart/items", map[string]any{
			"checkout_session_id": "sess-second-buyer",
			"resource_kind":       "multi_day_session",
			"resource_id":         resourceID,
			"participant":         e2e.Participant("bob"),
		})
		s.Equal(http.StatusConflict, w.Code, w.Body.String())
		s.Contains(w.Body.String(), `"available_places":0`)

		avail := s.availability(resourceID, 1)
		s.False(avail.Available)
	})

	s.Run("concurrent reservations never oversell", func() {
		const capacity, buyers = 3, 12
		resourceID := s.MultiDaySession(capacity, 69000, 15000)

		var wg sync.WaitGroup
		var created, conflicts atomic.Int32
		for i := range buyers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := s.Public(http.MethodPost, "/api/availability/reserve", map[string]any{
					"checkout_session_id": fmt.Sprintf("sess-race-%02d", i),
					"resource_kind":       "multi_day_session",
					"resource_id":         resourceID,
					"quantity":            1,
				})
				switch w.Code {
				case http.StatusCreated:
					created.Add(1)
				case http.StatusConflict:
					conflicts.Add(1)
				}
			}()
		}
		wg.Wait()

		s.Equal(int32(capacity), created.Load())
		s.Equal(int32(buyers-capacity), conflicts.Load())
		s.Equal(capacity, dbtest.CountRows(s.T(), s.DB, "temporary_holds", "resource_id = $1", resourceID))
	})

	s.Run("a session holds at most one pending order", func() {
		resourceID := s.MultiDaySession(1, 69000, 15000)
		session := "sess-" + uuid.NewString()
		s.addBooking(session, resourceID, "ana")
		body := map[string]any{"checkout_session_id": session, "contact": e2e.Contact()}

		var first resdto.CreateOrderResponse
		s.Decode(s.Public(http.MethodPost, "/api/orders", body), http.StatusCreated, &first)

		w := s.Public(http.MethodPost, "/api/orders", body)
		s.Equal(http.StatusConflict, w.Code, w.Body.String())
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "orders", "checkout_session_id = $1", session))
		s.False(s.availability(resourceID, 1).Available)
	})

	s.Run("releasing a hold returns the seat", func() {
		resourceID := s.MultiDaySession(1, 69000, 15000)
		session := "sess-release"
		s.addBooking(session, resourceID, "ana")

		var released resdto.ReleaseHoldResponse
		s.Decode(s.Public(http.MethodDelete, "/api/availability/release",
			map[string]any{"checkout_session_id": session}), http.StatusOK, &released)
		s.Equal(int64(1), released.Released)
		s.True(s.availability(resourceID, 1).Available)
	})
}

func (s *BookingFlowSuite) TestVouchers() {
	s.Run("voucher covering the order settles it without a payment intent", func() {
		resourceID := s.MultiDaySession(6, 69000, 15000)
		dbtest.InsertVoucher(s.T(), s.DB, "SCP-GIFT-0001", 100000, 100000, timeNow())
		session := "sess-" + uuid.NewString()
		s.addBooking(session, resourceID, "ana")

		var created resdto.CreateOrderResponse
		s.Decode(s.Public(http.MethodPost, "/api/orders", map[string]any{
			"checkout_session_id": session,
			"voucher_codes":       []string{"scp-gift-0001"},
			"contact":             e2e.Contact(),
		}), http.StatusCreated, &created)

		s.Nil(created.PaymentIntent)
		s.Equal("PAID", created.Order.Status)
		s.Equal(int64(69000), created.Order.Discount)
		s.Equal(int64(31000), dbtest.VoucherRemaining(s.T(), s.DB, "SCP-GIFT-0001"))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "bookings", "order_id = $1", created.Order.ID))
	})

	s.Run("expired voucher is rejected with its code", func() {
		resourceID := s.MultiDaySession(6, 69000, 15000)
		dbtest.InsertVoucher(s.T(), s.DB, "SCP-OLD-0001", 5000, 5000, timeNow().AddDate(-2, 0, 0))
		session := "sess-" + uuid.NewString()
		s.addBooking(session, resourceID, "ana")

		w := s.Public(http.MethodPost, "/api/orders", map[string]any{
			"checkout_session_id": session,
			"voucher_codes":       []string{"SCP-OLD-0001"},
			"contact":             e2e.Contact(),
		})
		s.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
		s.Contains(w.Body.String(), "SCP-OLD-0001")
		s.Zero(dbtest.CountRows(s.T(), s.DB, "orders", ""))
	})

	s.Run("cancelling an unpaid order restores the voucher balance", func() {
		resourceID := s.MultiDaySession(6, 69000, 15000)
		dbtest.InsertVoucher(s.T(), s.DB, "SCP-GIFT-0002", 20000, 20000, timeNow())
		session := "sess-" + uuid.NewString()
		s.addBooking(session, resourceID, "ana")

		var created resdto.CreateOrderResponse
		s.Decode(s.Public(http.MethodPost, "/api/orders", map[string]any{
			"checkout_session_id": session,
			"voucher_codes":       []string{"SCP-GIFT-0002"},
			"contact":             e2e.Contact(),
		}), http.StatusCreated, &created)
		s.Equal("PENDING", created.Order.Status)
		s.Require().NotNil(created.PaymentIntent)
		s.Equal(int64(10653), created.Order.Deposit)
		s.Zero(dbtest.VoucherRemaining(s.T(), s.DB, "SCP-GIFT-0002"))

		var cancelled resdto.OrderResponse
		s.Decode(s.Admin(auth.RoleAdmin, http.MethodPost, "/api/admin/orders/"+created.Order.ID.String()+"/cancel", nil),
			http.StatusOK, &cancelled)
		s.Equal("CANCELLED", cancelled.Status)
		s.Equal(int64(20000), dbtest.VoucherRemaining(s.T(), s.DB, "SCP-GIFT-0002"))
	})

	s.Run("monitor role cannot cancel", func() {
		w := s.Admin(auth.RoleMonitor, http.MethodPost, "/api/admin/orders/"+uuid.NewString()+"/cancel", nil)
		s.Equal(http.StatusForbidden, w.Code)
	})
}
