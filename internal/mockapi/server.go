// Package mockapi is an in-memory stand-in for the school service, used for
// local development and end-to-end tests of the sync client. It reproduces
// the production wire schema quirks on purpose: Mongo-style _id, Portuguese
// field names on people records, posts whose description travels as
// "subject", and a login response that reports staff as role "teacher".
package mockapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type account struct {
	id           string
	name         string
	email        string
	passwordHash []byte
	role         string // "teacher" or "student", as the service reports it
}

// Server holds the mock collections. Everything lives in memory; restarting
// the process reseeds it.
type Server struct {
	secret []byte
	log    zerolog.Logger

	mu       sync.Mutex
	accounts []account
	posts    []map[string]any
	teachers []map[string]any
	students []map[string]any
}

func New(secret string, log zerolog.Logger) *Server {
	s := &Server{secret: []byte(secret), log: log}
	s.seed()
	return s
}

// Handler builds the echo router. Posts are publicly listable; every other
// collection route and every mutation requires a valid bearer token.
func (s *Server) Handler() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.POST("/api/auth/login", s.login)
	e.GET("/api/posts", s.list(&s.posts))

	auth := s.requireAuth
	e.POST("/api/posts", s.create(&s.posts), auth)
	e.PATCH("/api/posts/:id", s.patch(&s.posts), auth)
	e.DELETE("/api/posts/:id", s.remove(&s.posts), auth)

	for path, coll := range map[string]*[]map[string]any{
		"/api/teachers": &s.teachers,
		"/api/students": &s.students,
	} {
		e.GET(path, s.list(coll), auth)
		e.POST(path, s.create(coll), auth)
		e.PATCH(path+"/:id", s.patch(coll), auth)
		e.DELETE(path+"/:id", s.remove(coll), auth)
	}

	return e
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.email != req.Email {
			continue
		}
		if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(req.Senha)) != nil {
			break
		}
		token, err := s.mintToken(a)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]any{
			"token": token,
			"user": map[string]any{
				"_id":   a.id,
				"nome":  a.name,
				"email": a.email,
				"role":  a.role,
			},
		})
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
}

func (s *Server) mintToken(a account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   a.id,
		"email": a.email,
		"role":  a.role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// requireAuth validates the bearer token, mirroring the production service's
// behaviour of answering 401 for missing, malformed, or expired credentials.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !tkn.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		return next(c)
	}
}

func (s *Server) list(coll *[]map[string]any) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := make([]map[string]any, len(*coll))
		copy(out, *coll)
		return c.JSON(http.StatusOK, out)
	}
}

func (s *Server) create(coll *[]map[string]any) echo.HandlerFunc {
	return func(c echo.Context) error {
		rec := map[string]any{}
		if err := c.Bind(&rec); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		// Accounts never echo the password back.
		delete(rec, "senha")
		rec["_id"] = strings.ReplaceAll(uuid.NewString(), "-", "")

		s.mu.Lock()
		*coll = append(*coll, rec)
		s.mu.Unlock()

		s.log.Debug().Str("id", rec["_id"].(string)).Str("path", c.Path()).Msg("record created")
		return c.JSON(http.StatusCreated, rec)
	}
}

func (s *Server) patch(coll *[]map[string]any) echo.HandlerFunc {
	return func(c echo.Context) error {
		fields := map[string]any{}
		if err := c.Bind(&fields); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		delete(fields, "senha")
		delete(fields, "_id")

		id := c.Param("id")
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, rec := range *coll {
			if rec["_id"] == id || rec["id"] == id {
				for k, v := range fields {
					rec[k] = v
				}
				return c.JSON(http.StatusOK, rec)
			}
		}
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	}
}

func (s *Server) remove(coll *[]map[string]any) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, rec := range *coll {
			if rec["_id"] == id || rec["id"] == id {
				*coll = append((*coll)[:i], (*coll)[i+1:]...)
				return c.NoContent(http.StatusNoContent)
			}
		}
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	}
}
