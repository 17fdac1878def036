package mockapi

import "golang.org/x/crypto/bcrypt"

// Seed credentials for local development.
const (
	SeedProfessorEmail = "professor@escola.com"
	SeedStudentEmail   = "ana.paula@aluno.escola.com"
	SeedPassword       = "senha123"
)

// seed loads the development fixtures. The records deliberately mix wire
// synonyms (materia vs disciplina, name vs nome, missing createdAt, one
// record without any id) so every mapper fallback gets exercised against
// the mock.
func (s *Server) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		panic("mockapi: seeding password hash: " + err.Error())
	}

	s.accounts = []account{
		{id: "9", name: "Ana", email: SeedProfessorEmail, passwordHash: hash, role: "teacher"},
		{id: "20", name: "Ana Paula", email: SeedStudentEmail, passwordHash: hash, role: "student"},
	}

	s.posts = []map[string]any{
		{
			"_id":       "1",
			"title":     "Introdução ao React Native",
			"subject":   "Aprenda os conceitos básicos do React Native",
			"content":   "React Native é um framework para desenvolvimento mobile multiplataforma.",
			"author":    "Prof. Silva",
			"authorId":  "1",
			"createdAt": "2025-01-15",
		},
		{
			"_id":        "2",
			"title":      "Node.js e APIs REST",
			"subject":    "Como construir APIs robustas com Node.js",
			"content":    "Node.js é uma plataforma poderosa para construir APIs REST.",
			"authorName": "Prof. Santos",
			// no createdAt: the client synthesizes today's date
		},
		{
			// no id at all: the client must drop this record
			"title":   "Rascunho sem identificador",
			"content": "Registro corrompido usado para exercitar o filtro de id.",
		},
	}

	s.teachers = []map[string]any{
		{"_id": "1", "nome": "Prof. João Silva", "email": "joao.silva@escola.com", "disciplina": "Desenvolvimento Mobile"},
		{"_id": "2", "nome": "Prof. Maria Santos", "email": "maria.santos@escola.com", "materia": "Backend e APIs"},
		{"_id": "3", "name": "Prof. Carlos Oliveira", "email": "carlos.oliveira@escola.com", "subject": "TypeScript e JavaScript"},
	}

	s.students = []map[string]any{
		{"_id": "20", "nome": "Ana Paula", "email": SeedStudentEmail, "curso": "Desenvolvimento de Sistemas", "turma": "3A"},
		{"_id": "21", "nome": "Bruno Costa", "email": "bruno.costa@aluno.escola.com", "curso": "Redes de Computadores"},
	}
}
