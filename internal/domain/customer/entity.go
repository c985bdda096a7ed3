package customer

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("customer email is invalid")

type Customer struct {
	id        uuid.UUID
	email     string
	firstName string
	lastName  string
	phone     string
	createdAt time.Time
}

// NormalizeEmail lower-cases the address; customers are unique on it.
func NormalizeEmail(email string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(e); err != nil {
		return "", ErrInvalidEmail
	}
	return e, nil
}

func NewCustomer(email, firstName, lastName, phone string, now time.Time) (*Customer, error) {
	e, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return &Customer{
		id:        uuid.New(),
		email:     e,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		phone:     strings.TrimSpace(phone),
		createdAt: now,
	}, nil
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) FirstName() string    { return c.firstName }
func (c *Customer) LastName() string     { return c.lastName }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
