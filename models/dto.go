package models

import "encoding/json"

// TimeLayout is the timestamp format of the stored shapes. The admin
// frontend re-parses it by swapping the space for a "T".
const TimeLayout = "2006-01-02 15:04:05"

// ArticleInput is the pre-persistence article shape produced by the editor
// on submit. Field names are camelCase, distinct from the stored shape.
type ArticleInput struct {
	Title      string `json:"title" validate:"required"`
	Slug       string `json:"slug"`
	CoverImage string `json:"coverImage" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Blocks     Blocks `json:"blocks" validate:"required,min=1"`
}

// StoredArticle is the article shape as persistence returns it: server
// assigned id and timestamps, all-lower-case keys.
type StoredArticle struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	CoverImage string `json:"coverimage"`
	Author     string `json:"author"`
	CreatedAt  string `json:"createdat"`
	UpdatedAt  string `json:"updatedat"`
	Blocks     Blocks `json:"blocks"`
}

// Stored translates the gorm entity into the stored wire shape, decoding
// the blocks column defensively (array or double-encoded string).
func (a Article) Stored() (StoredArticle, error) {
	var blocks Blocks
	if len(a.Blocks) > 0 {
		if err := json.Unmarshal(a.Blocks, &blocks); err != nil {
			return StoredArticle{}, err
		}
	}

	return StoredArticle{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		CoverImage: a.CoverImage,
		Author:     a.Author,
		CreatedAt:  a.CreatedAt.Format(TimeLayout),
		UpdatedAt:  a.UpdatedAt.Format(TimeLayout),
		Blocks:     blocks,
	}, nil
}

// Input translates a stored article back into the editable camelCase shape,
// used when an existing article is loaded into the editor.
func (s StoredArticle) Input() ArticleInput {
	return ArticleInput{
		Title:      s.Title,
		Slug:       s.Slug,
		CoverImage: s.CoverImage,
		Author:     s.Author,
		Blocks:     s.Blocks,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  StoredUser `json:"user"`
}

type UserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// StoredUser mirrors the stored article shape conventions for users.
type StoredUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdat"`
	UpdatedAt string `json:"updatedat"`
}

func (u User) Stored() StoredUser {
	return StoredUser{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(TimeLayout),
		UpdatedAt: u.UpdatedAt.Format(TimeLayout),
	}
}
