package domain

const (
	RoleProfessor = "professor"
	RoleStudent   = "student"
)

// User is the authenticated session principal.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsProfessor reports whether the user may manage records.
func (u User) IsProfessor() bool {
	return u.Role == RoleProfessor
}

// SessionState describes the session lifecycle.
type SessionState string

const (
	StateAnonymous     SessionState = "anonymous"
	StateRestoring     SessionState = "restoring"
	StateAuthenticated SessionState = "authenticated"
)
