package service

import (
	"github.com/rs/zerolog"

	"github.com/edusync/schoolclient/internal/core/domain"
	"github.com/edusync/schoolclient/internal/core/ports"
	"github.com/edusync/schoolclient/internal/wire"
)

type (
	PostStore      = Store[domain.Post, domain.PostDraft, domain.PostPatch]
	ProfessorStore = Store[domain.Professor, domain.ProfessorDraft, domain.ProfessorPatch]
	StudentStore   = Store[domain.Student, domain.StudentDraft, domain.StudentPatch]
)

// NewPostStore builds the feed store. New posts go to the front of the cache
// so the feed reads newest-first.
func NewPostStore(gw ports.Gateway, log zerolog.Logger) *PostStore {
	return newStore("post", "/api/posts", gw, wire.Posts{}, true, log)
}

// NewProfessorStore builds the staff-profile store; new records append.
func NewProfessorStore(gw ports.Gateway, log zerolog.Logger) *ProfessorStore {
	return newStore("professor", "/api/teachers", gw, wire.Professors{}, false, log)
}

// NewStudentStore builds the student-profile store; new records append.
func NewStudentStore(gw ports.Gateway, log zerolog.Logger) *StudentStore {
	return newStore("student", "/api/students", gw, wire.Students{}, false, log)
}
