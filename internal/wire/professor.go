package wire

import (
	"fmt"

	"github.com/edusync/schoolclient/internal/core/domain"
)

var (
	professorIDReads      = readRule{"id", "_id"}
	professorNameReads    = readRule{"name", "nome"}
	professorEmailReads   = readRule{"email"}
	professorSubjectReads = readRule{"subject", "materia", "disciplina"}
	cpfReads              = readRule{"cpf"}
	matriculaReads        = readRule{"matricula"}
	telefoneReads         = readRule{"telefone"}
	nascimentoReads       = readRule{"nascimento"}
)

// Professors is the staff-profile wire codec. The service writes staff
// records with Portuguese field names (nome, disciplina).
type Professors struct{}

func (Professors) FromWire(rec Record) (domain.Professor, error) {
	id, ok := rec.resolve(professorIDReads)
	if !ok {
		return domain.Professor{}, fmt.Errorf("professor: %w", domain.ErrMissingID)
	}

	return domain.Professor{
		ID:         id,
		Name:       rec.str(professorNameReads),
		Email:      rec.str(professorEmailReads),
		Subject:    rec.str(professorSubjectReads),
		CPF:        rec.str(cpfReads),
		Matricula:  rec.str(matriculaReads),
		Telefone:   rec.str(telefoneReads),
		Nascimento: rec.str(nascimentoReads),
	}, nil
}

// DraftToWire builds the create payload. Senha goes out only here, and only
// when the caller supplied one.
func (Professors) DraftToWire(d domain.ProfessorDraft) Record {
	rec := Record{
		"nome":       d.Name,
		"email":      d.Email,
		"disciplina": d.Subject,
	}
	rec.set("cpf", d.CPF)
	rec.set("matricula", d.Matricula)
	rec.set("telefone", d.Telefone)
	rec.set("nascimento", d.Nascimento)
	rec.set("senha", d.Senha)
	return rec
}

func (Professors) PatchToWire(p domain.ProfessorPatch) Record {
	rec := Record{}
	rec.setPtr("nome", p.Name)
	rec.setPtr("email", p.Email)
	rec.setPtr("disciplina", p.Subject)
	rec.setPtr("cpf", p.CPF)
	rec.setPtr("matricula", p.Matricula)
	rec.setPtr("telefone", p.Telefone)
	rec.setPtr("nascimento", p.Nascimento)
	return rec
}

func (Professors) ID(p domain.Professor) string { return p.ID }

func (Professors) Merge(p domain.Professor, patch domain.ProfessorPatch) domain.Professor {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Subject != nil {
		p.Subject = *patch.Subject
	}
	if patch.CPF != nil {
		p.CPF = *patch.CPF
	}
	if patch.Matricula != nil {
		p.Matricula = *patch.Matricula
	}
	if patch.Telefone != nil {
		p.Telefone = *patch.Telefone
	}
	if patch.Nascimento != nil {
		p.Nascimento = *patch.Nascimento
	}
	return p
}
