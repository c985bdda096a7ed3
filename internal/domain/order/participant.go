package order

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"activity-booking/internal/domain/money"
)

var (
	ErrParticipantName   = errors.New("participant first and last name are required")
	ErrParticipantEmail  = errors.New("participant email is invalid")
	ErrParticipantPhone  = errors.New("participant phone is required")
	ErrParticipantWeight = errors.New("participant weight must be between 20 and 120 kg")
	ErrParticipantHeight = errors.New("participant height must be between 120 and 220 cm")
	ErrContactName       = errors.New("contact first and last name are required")
	ErrContactEmail      = errors.New("contact email is invalid")
	ErrVoucherAmount     = errors.New("voucher amount must be between 1 and 100000 EUR")
	ErrRecipientEmail    = errors.New("voucher recipient email is invalid")
)

var (
	minVoucherPurchase = money.Euros(1)
	maxVoucherPurchase = money.Euros(100000)
)

type Participant struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	WeightKg  int        `json:"weight_kg"`
	HeightCm  int        `json:"height_cm"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

func (p Participant) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return ErrParticipantName
	}
	if !validEmail(p.Email) {
		return ErrParticipantEmail
	}
	if strings.TrimSpace(p.Phone) == "" {
		return ErrParticipantPhone
	}
	if p.WeightKg < 20 || p.WeightKg > 120 {
		return ErrParticipantWeight
	}
	if p.HeightCm < 120 || p.HeightCm > 220 {
		return ErrParticipantHeight
	}
	return nil
}

type VoucherPurchase struct {
	Amount         money.Money
	RecipientName  string
	RecipientEmail string
}

func (v VoucherPurchase) Validate() error {
	if v.Amount.LessThan(minVoucherPurchase) || v.Amount.GreaterThan(maxVoucherPurchase) {
		return ErrVoucherAmount
	}
	if v.RecipientEmail != "" && !validEmail(v.RecipientEmail) {
		return ErrRecipientEmail
	}
	return nil
}

type Contact struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

func NewContact(email, firstName, lastName, phone string) (Contact, error) {
	c := Contact{
		Email:     strings.ToLower(strings.TrimSpace(email)),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Phone:     strings.TrimSpace(phone),
	}
	if !validEmail(c.Email) {
		return Contact{}, ErrContactEmail
	}
	if c.FirstName == "" || c.LastName == "" {
		return Contact{}, ErrContactName
	}
	return c, nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil && addr.Address == strings.TrimSpace(s)
}
