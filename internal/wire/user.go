package wire

import (
	"fmt"

	"github.com/edusync/schoolclient/internal/core/domain"
)

var (
	userIDReads    = readRule{"id", "_id"}
	userNameReads  = readRule{"name", "nome"}
	userEmailReads = readRule{"email"}
	userRoleReads  = readRule{"role"}
)

// UserFromWire decodes the principal returned by the login endpoint. The
// service reports staff as role "teacher"; the client canonical value is
// "professor", and any other role collapses to "student".
func UserFromWire(rec Record) (domain.User, error) {
	id, ok := rec.resolve(userIDReads)
	if !ok {
		return domain.User{}, fmt.Errorf("user: %w", domain.ErrMissingID)
	}

	role := domain.RoleStudent
	if rec.str(userRoleReads) == "teacher" {
		role = domain.RoleProfessor
	}

	return domain.User{
		ID:    id,
		Name:  rec.str(userNameReads),
		Email: rec.str(userEmailReads),
		Role:  role,
	}, nil
}
