package customer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrBlankName       = errors.New("customer name cannot be blank")
	ErrBlankAddress    = errors.New("address cannot be blank")
	ErrBlankPostalCode = errors.New("postal code cannot be blank")
	ErrBlankPhone      = errors.New("phone cannot be blank")
	ErrMissingDivision = errors.New("first-level division is required")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

const MaxFieldLength = 50

// Customer entity. Division identifies the first-level division (state,
// province, ...); the country is derived from the division, never stored
// separately.
type Customer struct {
	id         uuid.UUID
	name       string
	address    string
	postalCode string
	phone      string
	divisionID uuid.UUID
}

func NewCustomer(id uuid.UUID, name, address, postalCode, phone string, divisionID uuid.UUID) (*Customer, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	postalCode = strings.TrimSpace(postalCode)
	phone = strings.TrimSpace(phone)

	switch {
	case name == "":
		return nil, ErrBlankName
	case address == "":
		return nil, ErrBlankAddress
	case postalCode == "":
		return nil, ErrBlankPostalCode
	case phone == "":
		return nil, ErrBlankPhone
	case divisionID == uuid.Nil:
		return nil, ErrMissingDivision
	}

	for _, v := range []string{name, address, postalCode, phone} {
		if utf8.RuneCountInString(v) > MaxFieldLength {
			return nil, ErrFieldTooLong
		}
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Customer{
		id:         id,
		name:       name,
		address:    address,
		postalCode: postalCode,
		phone:      phone,
		divisionID: divisionID,
	}, nil
}

func (c *Customer) ID() uuid.UUID         { return c.id }
func (c *Customer) Name() string          { return c.name }
func (c *Customer) Address() string       { return c.address }
func (c *Customer) PostalCode() string    { return c.postalCode }
func (c *Customer) Phone() string         { return c.phone }
func (c *Customer) DivisionID() uuid.UUID { return c.divisionID }
