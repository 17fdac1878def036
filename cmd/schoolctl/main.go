// schoolctl drives the school sync client from the terminal: it restores the
// persisted session, runs one command against the service, and exits. It is
// the reference consumer of the SDK packages.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/edusync/schoolclient/internal/core/domain"
	"github.com/edusync/schoolclient/internal/core/service"
	"github.com/edusync/schoolclient/internal/infrastructure/config"
	"github.com/edusync/schoolclient/internal/infrastructure/keystore"
	"github.com/edusync/schoolclient/internal/infrastructure/transport"
	"github.com/edusync/schoolclient/internal/validate"
	"github.com/edusync/schoolclient/pkg/logger"
)

const usage = `usage: schoolctl <command> [flags]

commands:
  login             -email -password
  logout
  whoami
  posts | professors | students
  create-post       -title -description -content [-author]
  create-professor  -name -email -subject -senha [-cpf -matricula -telefone -nascimento]
  create-student    -name -email -course -senha [-turma -cpf -matricula -telefone -nascimento]
  update-post       -id [-title -description -content -author]
  delete            -entity post|professor|student -id
`

// app bundles the explicitly constructed session and stores handed to every
// command.
type app struct {
	session    *service.SessionManager
	posts      *service.PostStore
	professors *service.ProfessorStore
	students   *service.StudentStore
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	keys, err := keystore.NewFile(cfg.StateDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.StateDir).Msg("opening state dir")
	}

	gw := transport.New(cfg.APIBaseURL, keys, log, transport.WithTimeout(cfg.RequestTimeout))
	session := service.NewSessionManager(gw, keys, log)
	gw.OnUnauthorized(session.Evict)
	session.Restore()

	a := &app{
		session:    session,
		posts:      service.NewPostStore(gw, log),
		professors: service.NewProfessorStore(gw, log),
		students:   service.NewStudentStore(gw, log),
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.session.Logout()
		return nil
	case "whoami":
		return a.whoami()
	case "posts":
		a.posts.Load(ctx)
		return printJSON(a.posts.All())
	case "professors":
		a.professors.Load(ctx)
		return printJSON(a.professors.All())
	case "students":
		a.students.Load(ctx)
		return printJSON(a.students.All())
	case "create-post":
		return a.createPost(ctx, args)
	case "create-professor":
		return a.createProfessor(ctx, args)
	case "create-student":
		return a.createStudent(ctx, args)
	case "update-post":
		return a.updatePost(ctx, args)
	case "delete":
		return a.deleteRecord(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	if !a.session.Login(ctx, *email, *password) {
		return fmt.Errorf("login failed")
	}
	return a.whoami()
}

func (a *app) whoami() error {
	u, ok := a.session.Current()
	if !ok {
		fmt.Println("not logged in")
		return nil
	}
	return printJSON(u)
}

func (a *app) createPost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-post", flag.ExitOnError)
	draft := domain.PostDraft{}
	fs.StringVar(&draft.Title, "title", "", "post title")
	fs.StringVar(&draft.Description, "description", "", "short description")
	fs.StringVar(&draft.Content, "content", "", "post body")
	fs.StringVar(&draft.Author, "author", "", "author display name")
	_ = fs.Parse(args)

	if u, ok := a.session.Current(); ok {
		if draft.Author == "" {
			draft.Author = u.Name
		}
		draft.AuthorID = u.ID
	}
	if err := validate.Struct(draft); err != nil {
		return err
	}

	post, err := a.posts.Create(ctx, draft)
	if err != nil {
		return err
	}
	return printJSON(post)
}

func (a *app) createProfessor(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-professor", flag.ExitOnError)
	draft := domain.ProfessorDraft{}
	fs.StringVar(&draft.Name, "name", "", "full name")
	fs.StringVar(&draft.Email, "email", "", "email")
	fs.StringVar(&draft.Subject, "subject", "", "taught subject")
	fs.StringVar(&draft.Senha, "senha", "", "initial password")
	fs.StringVar(&draft.CPF, "cpf", "", "CPF")
	fs.StringVar(&draft.Matricula, "matricula", "", "registration number")
	fs.StringVar(&draft.Telefone, "telefone", "", "phone")
	fs.StringVar(&draft.Nascimento, "nascimento", "", "birth date")
	_ = fs.Parse(args)

	if err := validate.Struct(draft); err != nil {
		return err
	}
	prof, err := a.professors.Create(ctx, draft)
	if err != nil {
		return err
	}
	return printJSON(prof)
}

func (a *app) createStudent(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-student", flag.ExitOnError)
	draft := domain.StudentDraft{}
	fs.StringVar(&draft.Name, "name", "", "full name")
	fs.StringVar(&draft.Email, "email", "", "email")
	fs.StringVar(&draft.Course, "course", "", "course")
	fs.StringVar(&draft.Senha, "senha", "", "initial password")
	fs.StringVar(&draft.Turma, "turma", "", "class section")
	fs.StringVar(&draft.CPF, "cpf", "", "CPF")
	fs.StringVar(&draft.Matricula, "matricula", "", "registration number")
	fs.StringVar(&draft.Telefone, "telefone", "", "phone")
	fs.StringVar(&draft.Nascimento, "nascimento", "", "birth date")
	_ = fs.Parse(args)

	if err := validate.Struct(draft); err != nil {
		return err
	}
	student, err := a.students.Create(ctx, draft)
	if err != nil {
		return err
	}
	return printJSON(student)
}

// updatePost builds a sparse patch from only the flags the caller actually
// passed, so untouched fields never reach the wire.
func (a *app) updatePost(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-post", flag.ExitOnError)
	id := fs.String("id", "", "post id")
	title := fs.String("title", "", "post title")
	description := fs.String("description", "", "short description")
	content := fs.String("content", "", "post body")
	author := fs.String("author", "", "author display name")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	patch := domain.PostPatch{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "description":
			patch.Description = description
		case "content":
			patch.Content = content
		case "author":
			patch.Author = author
		}
	})

	return a.posts.Update(ctx, *id, patch)
}

func (a *app) deleteRecord(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	entity := fs.String("entity", "", "post, professor, or student")
	id := fs.String("id", "", "record id")
	_ = fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	switch *entity {
	case "post":
		return a.posts.Delete(ctx, *id)
	case "professor":
		return a.professors.Delete(ctx, *id)
	case "student":
		return a.students.Delete(ctx, *id)
	default:
		return fmt.Errorf("unknown entity %q", *entity)
	}
}

func printJSON(v any) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}
