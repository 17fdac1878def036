package wire

import (
	"errors"
	"testing"

	"github.com/edusync/schoolclient/internal/core/domain"
)

func TestUserFromWire_TeacherBecomesProfessor(t *testing.T) {
	u, err := UserFromWire(Record{"_id": "9", "nome": "Ana", "email": "professor@escola.com", "role": "teacher"})
	if err != nil {
		t.Fatalf("UserFromWire: %v", err)
	}
	want := domain.User{ID: "9", Name: "Ana", Email: "professor@escola.com", Role: domain.RoleProfessor}
	if u != want {
		t.Fatalf("want %+v, got %+v", want, u)
	}
}

func TestUserFromWire_AnyOtherRoleBecomesStudent(t *testing.T) {
	for _, role := range []string{"student", "aluno", "admin", ""} {
		u, err := UserFromWire(Record{"id": "1", "name": "X", "role": role})
		if err != nil {
			t.Fatalf("role %q: %v", role, err)
		}
		if u.Role != domain.RoleStudent {
			t.Fatalf("role %q: expected student, got %q", role, u.Role)
		}
	}
}

func TestUserFromWire_MissingID(t *testing.T) {
	_, err := UserFromWire(Record{"name": "X", "role": "teacher"})
	if !errors.Is(err, domain.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}
