// Package editor builds and mutates an article's block sequence and hands
// the finished article to a storage collaborator on submit.
package editor

import (
	"context"
	"errors"
	"fmt"

	"blog-cms/helper"
	"blog-cms/models"

	"gopkg.in/go-playground/validator.v9"
)

// ErrSubmitInFlight is returned when a submission is attempted while a
// previous one has not finished. One outstanding request per editor.
var ErrSubmitInFlight = errors.New("submission already in flight")

// Publisher is the external storage collaborator. The bearer token is an
// explicit parameter, not ambient state.
type Publisher interface {
	CreateArticle(ctx context.Context, token string, input models.ArticleInput) (*models.StoredArticle, error)
	UpdateArticle(ctx context.Context, token string, id uint, input models.ArticleInput) (*models.StoredArticle, error)
}

// Editor owns one in-progress article. All mutations are synchronous; the
// block sequence is never shared with another editor instance.
type Editor struct {
	publisher Publisher
	validate  *validator.Validate

	articleID  uint
	title      string
	coverImage string
	author     string
	blocks     models.Blocks

	inFlight bool
}

func New(publisher Publisher) *Editor {
	return &Editor{
		publisher: publisher,
		validate:  validator.New(),
	}
}

// Load opens a stored article for re-editing. Subsequent submits update the
// existing record instead of creating a new one.
func Load(publisher Publisher, stored models.StoredArticle) *Editor {
	e := New(publisher)
	e.articleID = stored.ID
	e.title = stored.Title
	e.coverImage = stored.CoverImage
	e.author = stored.Author
	e.blocks = append(models.Blocks(nil), stored.Blocks...)
	return e
}

func (e *Editor) SetTitle(title string) { e.title = title }

func (e *Editor) SetCoverImage(coverImage string) { e.coverImage = coverImage }

func (e *Editor) SetAuthor(author string) { e.author = author }

// AddBlock appends a block of the given type and returns its id. Payload
// content is not validated, an empty text or url is fine while drafting.
func (e *Editor) AddBlock(blockType models.BlockType, data models.BlockData) string {
	return e.blocks.Add(blockType, data)
}

func (e *Editor) DeleteBlock(id string) {
	e.blocks.Delete(id)
}

func (e *Editor) Reorder(sourceID, targetID string) error {
	return e.blocks.Reorder(sourceID, targetID)
}

// Blocks returns the live sequence. A preview renderer reading it sees every
// mutation immediately.
func (e *Editor) Blocks() models.Blocks {
	return e.blocks
}

// Submit validates the draft, derives the slug and hands the article to the
// publisher: a create for a fresh editor, an update when a stored article
// was loaded. Failures leave the block sequence untouched and editable.
func (e *Editor) Submit(ctx context.Context, token string) (*models.StoredArticle, error) {
	if e.inFlight {
		return nil, ErrSubmitInFlight
	}
	e.inFlight = true
	defer func() { e.inFlight = false }()

	input := models.ArticleInput{
		Title:      e.title,
		CoverImage: e.coverImage,
		Author:     e.author,
		Blocks:     e.blocks,
	}

	if err := e.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalid, err.Error())
	}

	input.Slug = helper.Slugify(e.title)
	if input.Slug == "" {
		return nil, fmt.Errorf("%w: title produces an empty slug", models.ErrInvalid)
	}

	var (
		stored *models.StoredArticle
		err    error
	)
	if e.articleID > 0 {
		stored, err = e.publisher.UpdateArticle(ctx, token, e.articleID, input)
	} else {
		stored, err = e.publisher.CreateArticle(ctx, token, input)
	}
	if err != nil {
		return nil, err
	}

	// Further submits edit the persisted record.
	e.articleID = stored.ID
	return stored, nil
}
