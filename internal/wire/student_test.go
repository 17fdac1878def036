package wire

import (
	"errors"
	"testing"

	"github.com/edusync/schoolclient/internal/core/domain"
)

func TestStudents_FromWire_CursoFallback(t *testing.T) {
	s, err := Students{}.FromWire(Record{"_id": "20", "nome": "Ana", "curso": "Redes", "turma": "3A"})
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	if s.Name != "Ana" || s.Course != "Redes" || s.Turma != "3A" {
		t.Fatalf("unexpected student: %+v", s)
	}
}

func TestStudents_FromWire_MissingID(t *testing.T) {
	_, err := Students{}.FromWire(Record{"nome": "Ana"})
	if !errors.Is(err, domain.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestStudents_DraftToWire(t *testing.T) {
	rec := Students{}.DraftToWire(domain.StudentDraft{
		Name: "Ana", Email: "a@e.com", Course: "Redes", Senha: "secret1",
	})
	if rec["nome"] != "Ana" || rec["curso"] != "Redes" || rec["senha"] != "secret1" {
		t.Fatalf("write-canonical keys wrong: %v", rec)
	}
	if _, ok := rec["turma"]; ok {
		t.Fatalf("absent turma must be omitted, got %v", rec)
	}
}

func TestStudents_PatchToWire_Sparse(t *testing.T) {
	turma := "4B"
	rec := Students{}.PatchToWire(domain.StudentPatch{Turma: &turma})
	if len(rec) != 1 || rec["turma"] != "4B" {
		t.Fatalf("patch must contain turma only, got %v", rec)
	}
}

func TestStudents_RoundTrip(t *testing.T) {
	draft := domain.StudentDraft{
		Name: "Ana", Email: "a@e.com", Course: "Redes", Turma: "3A",
		CPF: "123", Matricula: "M2", Telefone: "555", Nascimento: "2002-02-02",
		Senha: "secret1",
	}
	rec := Students{}.DraftToWire(draft)
	rec["_id"] = "20"

	s, err := Students{}.FromWire(rec)
	if err != nil {
		t.Fatalf("FromWire: %v", err)
	}
	if s.Name != draft.Name || s.Email != draft.Email || s.Course != draft.Course ||
		s.Turma != draft.Turma || s.CPF != draft.CPF || s.Matricula != draft.Matricula ||
		s.Telefone != draft.Telefone || s.Nascimento != draft.Nascimento {
		t.Fatalf("round trip lost fields: %+v", s)
	}
}
