package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type BlockType string

const (
	BlockHeading    BlockType = "heading"
	BlockSubheading BlockType = "subheading"
	BlockParagraph  BlockType = "paragraph"
	BlockImage      BlockType = "image"
)

// BlockData is the per-type payload. Text blocks carry Text only, image
// blocks carry URL and Caption only. Use TextData/ImageData so a payload
// never mixes fields from the wrong variant.
type BlockData struct {
	Text    string `json:"text,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

func TextData(text string) BlockData {
	return BlockData{Text: text}
}

func ImageData(url, caption string) BlockData {
	return BlockData{URL: url, Caption: caption}
}

type Block struct {
	ID   string    `json:"id"`
	Type BlockType `json:"type"`
	Data BlockData `json:"data"`
}

// Blocks is an ordered block sequence. Order is render order; ids are unique
// within the sequence and stable across reorders.
type Blocks []Block

// Add appends a new block with a freshly assigned id and returns the id.
// Payload content is not validated here, empty text or url is allowed.
func (b *Blocks) Add(blockType BlockType, data BlockData) string {
	block := Block{
		ID:   uuid.NewString(),
		Type: blockType,
		Data: data,
	}
	*b = append(*b, block)
	return block.ID
}

// Delete removes the block with the given id. Unknown ids are a no-op and
// remaining ids are never renumbered.
func (b *Blocks) Delete(id string) {
	for i, block := range *b {
		if block.ID == id {
			*b = append((*b)[:i], (*b)[i+1:]...)
			return
		}
	}
}

// Reorder moves the block identified by sourceID to the position where
// targetID currently sits, shifting the blocks in between. Equal ids are a
// no-op; an unknown id rejects the call.
func (b Blocks) Reorder(sourceID, targetID string) error {
	if sourceID == targetID {
		return nil
	}

	src := b.indexOf(sourceID)
	dst := b.indexOf(targetID)
	if src < 0 || dst < 0 {
		return ErrUnknownBlock
	}

	moved := b[src]
	if src < dst {
		copy(b[src:dst], b[src+1:dst+1])
	} else {
		copy(b[dst+1:src+1], b[dst:src])
	}
	b[dst] = moved
	return nil
}

func (b Blocks) indexOf(id string) int {
	for i, block := range b {
		if block.ID == id {
			return i
		}
	}
	return -1
}

// UnmarshalJSON accepts the block sequence either as a JSON array or as a
// JSON string containing one. Some stored rows double-encode the blocks
// column, so decoding has to handle both.
func (b *Blocks) UnmarshalJSON(data []byte) error {
	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err == nil {
		*b = blocks
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("blocks: expected array or JSON-encoded string")
	}
	if err := json.Unmarshal([]byte(encoded), &blocks); err != nil {
		return fmt.Errorf("blocks: invalid encoded array: %w", err)
	}
	*b = blocks
	return nil
}
