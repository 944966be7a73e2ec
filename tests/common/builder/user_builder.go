//go:build unit || e2e

package builder

import (
	"client-scheduler/internal/domain/user"
	reqdto "client-scheduler/internal/handler/dto/request"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Username string
	Password string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Username: "scheduler1",
		Password: "password123",
		Role:     user.RoleScheduler.String(),
		IsActive: true,
	}
}

func (b *UserBuilder) WithRole(role user.Role) *UserBuilder {
	b.Role = role.String()
	return b
}

func (b *UserBuilder) WithInactive() *UserBuilder {
	b.IsActive = false
	return b
}

func (b *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Username: b.Username,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}

func (b *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: b.Username,
		Password: b.Password,
	}
}

func (b *UserBuilder) BuildCredentials() (user.Credentials, error) {
	dto := b.BuildLoginDTO()
	return dto.ToDomain()
}
