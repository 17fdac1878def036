package wire

import (
	"fmt"

	"github.com/edusync/schoolclient/internal/core/domain"
)

var (
	studentIDReads     = readRule{"id", "_id"}
	studentNameReads   = readRule{"name", "nome"}
	studentEmailReads  = readRule{"email"}
	studentCourseReads = readRule{"course", "curso"}
	turmaReads         = readRule{"turma"}
)

// Students is the student-profile wire codec.
type Students struct{}

func (Students) FromWire(rec Record) (domain.Student, error) {
	id, ok := rec.resolve(studentIDReads)
	if !ok {
		return domain.Student{}, fmt.Errorf("student: %w", domain.ErrMissingID)
	}

	return domain.Student{
		ID:         id,
		Name:       rec.str(studentNameReads),
		Email:      rec.str(studentEmailReads),
		Course:     rec.str(studentCourseReads),
		Turma:      rec.str(turmaReads),
		CPF:        rec.str(cpfReads),
		Matricula:  rec.str(matriculaReads),
		Telefone:   rec.str(telefoneReads),
		Nascimento: rec.str(nascimentoReads),
	}, nil
}

func (Students) DraftToWire(d domain.StudentDraft) Record {
	rec := Record{
		"nome":  d.Name,
		"email": d.Email,
		"curso": d.Course,
	}
	rec.set("turma", d.Turma)
	rec.set("cpf", d.CPF)
	rec.set("matricula", d.Matricula)
	rec.set("telefone", d.Telefone)
	rec.set("nascimento", d.Nascimento)
	rec.set("senha", d.Senha)
	return rec
}

func (Students) PatchToWire(p domain.StudentPatch) Record {
	rec := Record{}
	rec.setPtr("nome", p.Name)
	rec.setPtr("email", p.Email)
	rec.setPtr("curso", p.Course)
	rec.setPtr("turma", p.Turma)
	rec.setPtr("cpf", p.CPF)
	rec.setPtr("matricula", p.Matricula)
	rec.setPtr("telefone", p.Telefone)
	rec.setPtr("nascimento", p.Nascimento)
	return rec
}

func (Students) ID(s domain.Student) string { return s.ID }

func (Students) Merge(s domain.Student, patch domain.StudentPatch) domain.Student {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.Course != nil {
		s.Course = *patch.Course
	}
	if patch.Turma != nil {
		s.Turma = *patch.Turma
	}
	if patch.CPF != nil {
		s.CPF = *patch.CPF
	}
	if patch.Matricula != nil {
		s.Matricula = *patch.Matricula
	}
	if patch.Telefone != nil {
		s.Telefone = *patch.Telefone
	}
	if patch.Nascimento != nil {
		s.Nascimento = *patch.Nascimento
	}
	return s
}
