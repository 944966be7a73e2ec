//go:build unit || e2e

package builder

import (
	"time"

	"client-scheduler/internal/domain/customer"
	reqdto "client-scheduler/internal/handler/dto/request"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID         uuid.UUID
	Name       string
	Address    string
	PostalCode string
	Phone      string
	DivisionID uuid.UUID
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:         uuid.New(),
		Name:       "Acme Corp",
		Address:    "123 Main Street",
		PostalCode: "10001",
		Phone:      "212-555-0100",
		DivisionID: uuid.New(),
	}
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = name
	return b
}

func (b *CustomerBuilder) WithAddress(address string) *CustomerBuilder {
	b.Address = address
	return b
}

func (b *CustomerBuilder) WithPostalCode(postalCode string) *CustomerBuilder {
	b.PostalCode = postalCode
	return b
}

func (b *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	b.Phone = phone
	return b
}

func (b *CustomerBuilder) WithDivisionID(id uuid.UUID) *CustomerBuilder {
	b.DivisionID = id
	return b
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(b.ID, b.Name, b.Address, b.PostalCode, b.Phone, b.DivisionID)
}

func (b *CustomerBuilder) BuildDTO() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{
		Name:       b.Name,
		Address:    b.Address,
		PostalCode: b.PostalCode,
		Phone:      b.Phone,
		DivisionID: b.DivisionID,
	}
}

func (b *CustomerBuilder) BuildView() *queries.CustomerView {
	now := time.Now()
	return &queries.CustomerView{
		ID:           b.ID,
		Name:         b.Name,
		Address:      b.Address,
		PostalCode:   b.PostalCode,
		Phone:        b.Phone,
		DivisionID:   b.DivisionID,
		DivisionName: "New York",
		CountryName:  "United States",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
