package domain

// Professor is a staff profile. Optional fields are empty strings when the
// service did not report them.
type Professor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	CPF        string `json:"cpf,omitempty"`
	Matricula  string `json:"matricula,omitempty"`
	Telefone   string `json:"telefone,omitempty"`
	Nascimento string `json:"nascimento,omitempty"`
}

// ProfessorDraft carries the fields for a new staff account. Senha is
// write-only: it goes out on the create payload and is never read back or
// cached.
type ProfessorDraft struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Subject    string `validate:"required"`
	CPF        string
	Matricula  string
	Telefone   string
	Nascimento string
	Senha      string `validate:"required,min=6"`
}

// ProfessorPatch is a partial update; nil fields are left untouched.
// There is deliberately no password field here.
type ProfessorPatch struct {
	Name       *string
	Email      *string
	Subject    *string
	CPF        *string
	Matricula  *string
	Telefone   *string
	Nascimento *string
}
