package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edusync/schoolclient/internal/core/domain"
	"github.com/edusync/schoolclient/internal/wire"
)

// ---------------------------------------------------------------------------
// Stub gateway
// ---------------------------------------------------------------------------

type stubGateway struct {
	listRecs []wire.Record
	listErr  error

	postResp wire.Record
	postErr  error

	patchErr  error
	deleteErr error

	lastPath string
	lastBody wire.Record
}

func (g *stubGateway) GetList(_ context.Context, path string) ([]wire.Record, error) {
	g.lastPath = path
	return g.listRecs, g.listErr
}

func (g *stubGateway) Post(_ context.Context, path string, body wire.Record) (wire.Record, error) {
	g.lastPath = path
	g.lastBody = body
	if g.postErr != nil {
		return nil, g.postErr
	}
	return g.postResp, nil
}

func (g *stubGateway) Patch(_ context.Context, path string, body wire.Record) (wire.Record, error) {
	g.lastPath = path
	g.lastBody = body
	return nil, g.patchErr
}

func (g *stubGateway) Delete(_ context.Context, path string) error {
	g.lastPath = path
	return g.deleteErr
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestStore_Load_ReplacesCacheAndDropsInvalid(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{
		{"_id": "1", "title": "kept"},
		{"title": "no id, dropped"},
		{"id": "2", "title": "also kept"},
	}}
	store := NewPostStore(gw, zerolog.Nop())

	store.Load(context.Background())

	if got := store.All(); len(got) != 2 {
		t.Fatalf("expected 2 valid posts, got %d", len(got))
	}
	if _, ok := store.Get("1"); !ok {
		t.Fatalf("post 1 missing from cache")
	}
	if _, ok := store.Get(""); ok {
		t.Fatalf("invalid record must never be reachable")
	}

	// A reload replaces, never merges.
	gw.listRecs = []wire.Record{{"_id": "3", "title": "only"}}
	store.Load(context.Background())
	got := store.All()
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("reload must replace the cache, got %+v", got)
	}
}

func TestStore_Load_FailureClearsCache(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{{"_id": "1"}}}
	store := NewPostStore(gw, zerolog.Nop())
	store.Load(context.Background())
	if len(store.All()) != 1 {
		t.Fatalf("seed load failed")
	}

	gw.listErr = errors.New("boom")
	store.Load(context.Background()) // must not panic or return the error

	if got := store.All(); len(got) != 0 {
		t.Fatalf("failed load must clear the cache, got %+v", got)
	}
	if store.Loading() {
		t.Fatalf("loading flag stuck")
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestStore_Create_PostPrepends(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{{"_id": "1", "title": "old"}}}
	store := NewPostStore(gw, zerolog.Nop())
	store.Load(context.Background())

	gw.postResp = wire.Record{"_id": "5", "title": "A", "subject": "B", "content": "C", "authorName": "X"}
	post, err := store.Create(context.Background(), domain.PostDraft{
		Title: "A", Description: "B", Content: "C", Author: "X",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if gw.lastBody["subject"] != "B" || gw.lastBody["author"] != "X" {
		t.Fatalf("wire payload wrong: %v", gw.lastBody)
	}
	if post.ID != "5" || post.Description != "B" || post.Author != "X" {
		t.Fatalf("mapped response wrong: %+v", post)
	}

	got := store.All()
	if len(got) != 2 || got[0].ID != "5" {
		t.Fatalf("new post must be at index 0, got %+v", got)
	}
}

func TestStore_Create_ProfessorAppends(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{{"_id": "1", "nome": "first"}}}
	store := NewProfessorStore(gw, zerolog.Nop())
	store.Load(context.Background())

	gw.postResp = wire.Record{"_id": "2", "nome": "second", "disciplina": "S"}
	if _, err := store.Create(context.Background(), domain.ProfessorDraft{
		Name: "second", Email: "s@e.com", Subject: "S", Senha: "secret1",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got := store.All()
	if len(got) != 2 || got[1].ID != "2" {
		t.Fatalf("new professor must append, got %+v", got)
	}
}

func TestStore_Create_FailureLeavesCacheUntouched(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{{"_id": "1", "title": "only"}}}
	store := NewPostStore(gw, zerolog.Nop())
	store.Load(context.Background())

	gw.postErr = errors.New("rejected")
	if _, err := store.Create(context.Background(), domain.PostDraft{Title: "A"}); err == nil {
		t.Fatalf("expected the error to propagate")
	}
	if got := store.All(); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("cache must be untouched, got %+v", got)
	}
}

func TestStore_Create_ResponseWithoutIDNeverEntersCache(t *testing.T) {
	gw := &stubGateway{postResp: wire.Record{"title": "confirmed but unusable"}}
	store := NewPostStore(gw, zerolog.Nop())

	if _, err := store.Create(context.Background(), domain.PostDraft{Title: "A"}); !errors.Is(err, domain.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if len(store.All()) != 0 {
		t.Fatalf("record without id entered the cache")
	}
}

// ---------------------------------------------------------------------------
// Update / Delete
// ---------------------------------------------------------------------------

func TestStore_Update_SparsePayloadAndMerge(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{
		{"_id": "1", "title": "old", "content": "keep"},
	}}
	store := NewPostStore(gw, zerolog.Nop())
	store.Load(context.Background())

	title := "T"
	if err := store.Update(context.Background(), "1", domain.PostPatch{Title: &title}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if gw.lastPath != "/api/posts/1" {
		t.Fatalf("unexpected path %q", gw.lastPath)
	}
	if len(gw.lastBody) != 1 || gw.lastBody["title"] != "T" {
		t.Fatalf("payload must contain only the translated title, got %v", gw.lastBody)
	}

	p, _ := store.Get("1")
	if p.Title != "T" || p.Content != "keep" {
		t.Fatalf("merge wrong: %+v", p)
	}
}

func TestStore_Update_FailureLeavesCacheUntouched(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{{"_id": "1", "title": "old"}}}
	store := NewPostStore(gw, zerolog.Nop())
	store.Load(context.Background())

	gw.patchErr = errors.New("rejected")
	title := "T"
	if err := store.Update(context.Background(), "1", domain.PostPatch{Title: &title}); err == nil {
		t.Fatalf("expected the error to propagate")
	}
	p, _ := store.Get("1")
	if p.Title != "old" {
		t.Fatalf("cache must be untouched, got %+v", p)
	}
}

func TestStore_Delete(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{{"_id": "1"}, {"_id": "2"}}}
	store := NewPostStore(gw, zerolog.Nop())
	store.Load(context.Background())

	if err := store.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gw.lastPath != "/api/posts/1" {
		t.Fatalf("unexpected path %q", gw.lastPath)
	}
	if _, ok := store.Get("1"); ok {
		t.Fatalf("deleted record still cached")
	}
	if _, ok := store.Get("2"); !ok {
		t.Fatalf("wrong record removed")
	}
}

func TestStore_Delete_FailureLeavesCacheUntouched(t *testing.T) {
	gw := &stubGateway{listRecs: []wire.Record{{"_id": "1"}}}
	store := NewPostStore(gw, zerolog.Nop())
	store.Load(context.Background())

	gw.deleteErr = errors.New("rejected")
	if err := store.Delete(context.Background(), "1"); err == nil {
		t.Fatalf("expected the error to propagate")
	}
	if _, ok := store.Get("1"); !ok {
		t.Fatalf("cache must be untouched")
	}
}

func TestStore_Get_IsPureLookup(t *testing.T) {
	gw := &stubGateway{}
	store := NewStudentStore(gw, zerolog.Nop())

	if _, ok := store.Get("42"); ok {
		t.Fatalf("empty cache returned a record")
	}
	if gw.lastPath != "" {
		t.Fatalf("Get must not call the service, hit %q", gw.lastPath)
	}
}
