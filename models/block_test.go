package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequenceIDs(blocks Blocks) []string {
	ids := make([]string, 0, len(blocks))
	for _, b := range blocks {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestBlocksAddAssignsUniqueIDs(t *testing.T) {
	var blocks Blocks
	seen := map[string]bool{}

	for i := 0; i < 50; i++ {
		id := blocks.Add(BlockParagraph, TextData("text"))
		assert.False(t, seen[id], "id %q assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, blocks, 50)
}

func TestBlocksAddAppendsInOrder(t *testing.T) {
	var blocks Blocks
	first := blocks.Add(BlockHeading, TextData("Intro"))
	second := blocks.Add(BlockParagraph, TextData("Hello"))

	require.Len(t, blocks, 2)
	assert.Equal(t, first, blocks[0].ID)
	assert.Equal(t, second, blocks[1].ID)
	assert.Equal(t, BlockHeading, blocks[0].Type)
	assert.Equal(t, BlockParagraph, blocks[1].Type)
}

func TestBlocksDelete(t *testing.T) {
	var blocks Blocks
	first := blocks.Add(BlockHeading, TextData("a"))
	second := blocks.Add(BlockParagraph, TextData("b"))
	third := blocks.Add(BlockImage, ImageData("https://example.com/x.jpg", "x"))

	blocks.Delete(second)

	require.Len(t, blocks, 2)
	// Surviving ids are untouched, never renumbered.
	assert.Equal(t, []string{first, third}, sequenceIDs(blocks))
}

func TestBlocksDeleteUnknownIDIsNoOp(t *testing.T) {
	var blocks Blocks
	blocks.Add(BlockHeading, TextData("a"))
	blocks.Add(BlockParagraph, TextData("b"))

	before := append([]string(nil), sequenceIDs(blocks)...)
	blocks.Delete("missing")

	assert.Equal(t, before, sequenceIDs(blocks))
}

func TestBlocksReorder(t *testing.T) {
	var blocks Blocks
	a := blocks.Add(BlockHeading, TextData("a"))
	b := blocks.Add(BlockSubheading, TextData("b"))
	c := blocks.Add(BlockParagraph, TextData("c"))

	// Move a to where c sits.
	require.NoError(t, blocks.Reorder(a, c))
	assert.Equal(t, []string{b, c, a}, sequenceIDs(blocks))

	// Move it back; original order restored.
	require.NoError(t, blocks.Reorder(a, b))
	assert.Equal(t, []string{a, b, c}, sequenceIDs(blocks))
}

func TestBlocksReorderBackward(t *testing.T) {
	var blocks Blocks
	a := blocks.Add(BlockHeading, TextData("a"))
	b := blocks.Add(BlockSubheading, TextData("b"))
	c := blocks.Add(BlockParagraph, TextData("c"))
	d := blocks.Add(BlockParagraph, TextData("d"))

	require.NoError(t, blocks.Reorder(d, b))
	assert.Equal(t, []string{a, d, b, c}, sequenceIDs(blocks))
}

func TestBlocksReorderSameIDIsNoOp(t *testing.T) {
	var blocks Blocks
	a := blocks.Add(BlockHeading, TextData("a"))
	b := blocks.Add(BlockParagraph, TextData("b"))

	require.NoError(t, blocks.Reorder(a, a))
	assert.Equal(t, []string{a, b}, sequenceIDs(blocks))
}

func TestBlocksReorderUnknownIDRejected(t *testing.T) {
	var blocks Blocks
	a := blocks.Add(BlockHeading, TextData("a"))
	blocks.Add(BlockParagraph, TextData("b"))

	assert.ErrorIs(t, blocks.Reorder(a, "missing"), ErrUnknownBlock)
	assert.ErrorIs(t, blocks.Reorder("missing", a), ErrUnknownBlock)
}

func TestBlocksIDsUniqueUnderMixedOps(t *testing.T) {
	var blocks Blocks
	ids := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		ids = append(ids, blocks.Add(BlockParagraph, TextData("p")))
	}

	blocks.Delete(ids[3])
	blocks.Delete(ids[7])
	require.NoError(t, blocks.Reorder(ids[0], ids[9]))
	blocks.Add(BlockHeading, TextData("h"))

	seen := map[string]bool{}
	for _, id := range sequenceIDs(blocks) {
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestBlocksWireRoundTrip(t *testing.T) {
	var blocks Blocks
	blocks.Add(BlockHeading, TextData("Intro"))
	blocks.Add(BlockParagraph, TextData("Hello **world**"))
	blocks.Add(BlockImage, ImageData("https://example.com/pic.jpg", "A picture"))

	encoded, err := json.Marshal(blocks)
	require.NoError(t, err)

	var decoded Blocks
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, blocks, decoded)
}

func TestBlocksDecodeDoubleEncoded(t *testing.T) {
	var blocks Blocks
	blocks.Add(BlockHeading, TextData("Intro"))
	blocks.Add(BlockImage, ImageData("https://example.com/pic.jpg", "A picture"))

	once, err := json.Marshal(blocks)
	require.NoError(t, err)
	// Some stored rows carry the array as a JSON string.
	twice, err := json.Marshal(string(once))
	require.NoError(t, err)

	var fromArray, fromString Blocks
	require.NoError(t, json.Unmarshal(once, &fromArray))
	require.NoError(t, json.Unmarshal(twice, &fromString))
	assert.Equal(t, fromArray, fromString)
}

func TestBlocksDecodeRejectsGarbage(t *testing.T) {
	var blocks Blocks
	assert.Error(t, json.Unmarshal([]byte(`42`), &blocks))
	assert.Error(t, json.Unmarshal([]byte(`"not json at all"`), &blocks))
}

func TestBlockDataConstructors(t *testing.T) {
	text := TextData("hello")
	assert.Equal(t, "hello", text.Text)
	assert.Empty(t, text.URL)
	assert.Empty(t, text.Caption)

	image := ImageData("https://example.com/x.jpg", "caption")
	assert.Empty(t, image.Text)
	assert.Equal(t, "https://example.com/x.jpg", image.URL)
	assert.Equal(t, "caption", image.Caption)
}
