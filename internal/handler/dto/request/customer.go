package request

import (
	"client-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name       string    `json:"name" binding:"required"`
	Address    string    `json:"address" binding:"required"`
	PostalCode string    `json:"postal_code" binding:"required"`
	Phone      string    `json:"phone" binding:"required"`
	DivisionID uuid.UUID `json:"division_id" binding:"required"`
}

func (r *CustomerRequest) ToParams() commands.CustomerParams {
	return commands.CustomerParams{
		Name:       r.Name,
		Address:    r.Address,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		DivisionID: r.DivisionID,
	}
}
