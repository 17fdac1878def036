package domain

// Student is a student profile.
type Student struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Course     string `json:"course"`
	Turma      string `json:"turma,omitempty"`
	CPF        string `json:"cpf,omitempty"`
	Matricula  string `json:"matricula,omitempty"`
	Telefone   string `json:"telefone,omitempty"`
	Nascimento string `json:"nascimento,omitempty"`
}

// StudentDraft carries the fields for a new student account. Senha is
// write-only, as on ProfessorDraft.
type StudentDraft struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Course     string `validate:"required"`
	Turma      string
	CPF        string
	Matricula  string
	Telefone   string
	Nascimento string
	Senha      string `validate:"required,min=6"`
}

// StudentPatch is a partial update; nil fields are left untouched.
type StudentPatch struct {
	Name       *string
	Email      *string
	Course     *string
	Turma      *string
	CPF        *string
	Matricula  *string
	Telefone   *string
	Nascimento *string
}
