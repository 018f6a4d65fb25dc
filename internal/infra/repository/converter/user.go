package converter

import (
	"commerce-order-core/internal/domain/user"
	sqlc "commerce-order-core/internal/infra/sqlc/generated"
)

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(row.ID, email, row.Name), nil
}
