// Package render maps a stored article to its display form, one rule per
// block type.
package render

import (
	"bytes"
	"fmt"
	"html"

	"blog-cms/models"

	"github.com/yuin/goldmark"
)

const (
	headingPlaceholder    = "Untitled heading"
	subheadingPlaceholder = "Untitled subheading"
)

// markdown renders the lightweight paragraph markup (bold, italic, links).
// Raw HTML in the source is omitted by goldmark, never passed through.
var markdown = goldmark.New()

type RenderedBlock struct {
	ID   string
	Type models.BlockType
	HTML string
}

// Page is the display form of one stored article.
type Page struct {
	Title      string
	CoverImage string
	Author     string
	Blocks     []RenderedBlock
}

// Article renders a stored article. Rendering never mutates the input, so
// rendering the same article twice yields identical output.
func Article(stored models.StoredArticle) (Page, error) {
	page := Page{
		Title:      stored.Title,
		CoverImage: stored.CoverImage,
		Author:     stored.Author,
		Blocks:     make([]RenderedBlock, 0, len(stored.Blocks)),
	}

	for _, block := range stored.Blocks {
		rendered, err := renderBlock(block)
		if err != nil {
			return Page{}, err
		}
		if rendered == "" {
			// An image block without a url renders nothing.
			continue
		}
		page.Blocks = append(page.Blocks, RenderedBlock{
			ID:   block.ID,
			Type: block.Type,
			HTML: rendered,
		})
	}

	return page, nil
}

func renderBlock(block models.Block) (string, error) {
	switch block.Type {
	case models.BlockHeading:
		text := block.Data.Text
		if text == "" {
			text = headingPlaceholder
		}
		return fmt.Sprintf("<h2>%s</h2>", html.EscapeString(text)), nil

	case models.BlockSubheading:
		text := block.Data.Text
		if text == "" {
			text = subheadingPlaceholder
		}
		return fmt.Sprintf("<h3>%s</h3>", html.EscapeString(text)), nil

	case models.BlockParagraph:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(block.Data.Text), &buf); err != nil {
			return "", err
		}
		return buf.String(), nil

	case models.BlockImage:
		if block.Data.URL == "" {
			return "", nil
		}
		return fmt.Sprintf(
			`<img src="%s" alt="%s">`,
			html.EscapeString(block.Data.URL),
			html.EscapeString(block.Data.Caption),
		), nil

	default:
		// Unknown block types render nothing rather than failing the page.
		return "", nil
	}
}
