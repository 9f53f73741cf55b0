package types

import "strings"

type JournalEntry struct {
	ID         string `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	Tags       string `json:"tags" db:"tags"` // comma joined
	IsFavorite bool   `json:"is_favorite" db:"is_favorite"`
	CreatedAt  int64  `json:"created_at" db:"created_at"` // unix milli
}

// TagList splits the comma joined tags column, dropping blanks.
func (e JournalEntry) TagList() []string {
	var res []string
	for _, t := range strings.Split(e.Tags, ",") {
		if strings.TrimSpace(t) != "" {
			res = append(res, t)
		}
	}
	return res
}

type BlockType string

const (
	BLOCK_TYPE_TEXT  BlockType = "TEXT"
	BLOCK_TYPE_IMAGE BlockType = "IMAGE"
)

// JournalBlock is the content variant of one entry segment.
// Consumers must switch on the concrete type and treat any
// other implementation as unreachable.
type JournalBlock interface {
	BlockID() string
	Type() BlockType
}

type TextBlock struct {
	ID      string `json:"id"`
	Content string `json:"content"` // serialized rich-text markup
}

func (b TextBlock) BlockID() string { return b.ID }
func (b TextBlock) Type() BlockType { return BLOCK_TYPE_TEXT }

type GalleryBlock struct {
	ID     string   `json:"id"`
	Images [][]byte `json:"images"`
}

func (b GalleryBlock) BlockID() string { return b.ID }
func (b GalleryBlock) Type() BlockType { return BLOCK_TYPE_IMAGE }

// JournalBlockRow is the persisted shape of a block.
type JournalBlockRow struct {
	ID        string    `json:"id" db:"id"`
	EntryID   string    `json:"entry_id" db:"entry_id"`
	BlockType BlockType `json:"block_type" db:"block_type"`
	Content   *string   `json:"content" db:"content"`
	SortOrder int64     `json:"sort_order" db:"sort_order"`
}

type JournalImage struct {
	ID        string `json:"id" db:"id"`
	BlockID   string `json:"block_id" db:"block_id"`
	ImageData []byte `json:"image_data" db:"image_data"`
}

// EntryWithPreview is a feed row: the entry plus the raw content of
// its first text block, still carrying markup.
type EntryWithPreview struct {
	JournalEntry
	PreviewContent *string `db:"preview_content"`
}

// FeedItem is the UI-ready projection: entry plus plain-text preview.
type FeedItem struct {
	Entry   JournalEntry `json:"entry"`
	Preview string       `json:"preview"`
}

type GroupMode string

const (
	GROUP_BY_MONTH GroupMode = "Months"
	GROUP_BY_YEAR  GroupMode = "Years"
	GROUP_BY_TAG   GroupMode = "Tagged"
)
