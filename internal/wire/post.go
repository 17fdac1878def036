package wire

import (
	"fmt"

	"github.com/edusync/schoolclient/internal/core/domain"
)

// defaultAuthor is what the original client shows when a post arrives with no
// author display name at all.
const defaultAuthor = "Autor Desconhecido"

// Read rules for the feed. Note the asymmetry: reading accepts "subject" as a
// description fallback, writing always emits "subject".
var (
	postIDReads          = readRule{"id", "_id"}
	postTitleReads       = readRule{"title"}
	postContentReads     = readRule{"content"}
	postAuthorReads      = readRule{"author", "authorName"}
	postAuthorIDReads    = readRule{"authorId"}
	postCreatedAtReads   = readRule{"createdAt"}
	postDescriptionReads = readRule{"description", "subject"}
)

// Posts is the Post wire codec.
type Posts struct{}

// FromWire decodes one service record. A record with no resolvable id is a
// data-quality skip: the error wraps domain.ErrMissingID and the caller drops
// the record.
func (Posts) FromWire(rec Record) (domain.Post, error) {
	id, ok := rec.resolve(postIDReads)
	if !ok {
		return domain.Post{}, fmt.Errorf("post: %w", domain.ErrMissingID)
	}

	p := domain.Post{
		ID:          id,
		Title:       rec.str(postTitleReads),
		Content:     rec.str(postContentReads),
		Author:      rec.str(postAuthorReads),
		AuthorID:    rec.str(postAuthorIDReads),
		CreatedAt:   rec.str(postCreatedAtReads),
		Description: rec.str(postDescriptionReads),
	}
	if p.AuthorID == "" {
		p.AuthorID = id
	}
	if p.CreatedAt == "" {
		p.CreatedAt = today()
	}
	return p, nil
}

func (Posts) DraftToWire(d domain.PostDraft) Record {
	author := d.Author
	if author == "" {
		author = defaultAuthor
	}
	return Record{
		"title":   d.Title,
		"content": d.Content,
		"subject": d.Description,
		"author":  author,
	}
}

func (Posts) PatchToWire(p domain.PostPatch) Record {
	rec := Record{}
	rec.setPtr("title", p.Title)
	rec.setPtr("content", p.Content)
	rec.setPtr("subject", p.Description)
	rec.setPtr("author", p.Author)
	return rec
}

func (Posts) ID(p domain.Post) string { return p.ID }

func (Posts) Merge(p domain.Post, patch domain.PostPatch) domain.Post {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	return p
}
