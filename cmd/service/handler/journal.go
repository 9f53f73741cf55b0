package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/liveem/livem-core/internal/core"
	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/internal/response"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

// BlockPayload is the wire shape of one entry block. Exactly one of
// Content or Images is meaningful depending on Type.
type BlockPayload struct {
	ID      string          `json:"id"`
	Type    types.BlockType `json:"type" binding:"required"`
	Content string          `json:"content"`
	Images  [][]byte        `json:"images"`
}

func (p BlockPayload) toBlock() types.JournalBlock {
	if p.Type == types.BLOCK_TYPE_IMAGE {
		return types.GalleryBlock{ID: p.ID, Images: p.Images}
	}
	return types.TextBlock{ID: p.ID, Content: p.Content}
}

type SaveJournalRequest struct {
	ID         *string        `json:"id"`
	Title      string         `json:"title"`
	Blocks     []BlockPayload `json:"blocks"`
	Tags       []string       `json:"tags"`
	IsFavorite bool           `json:"is_favorite"`
}

type SaveJournalResponse struct {
	ID string `json:"id"`
}

func (s *HttpSrv) SaveJournal(c *gin.Context) {
	var req SaveJournalRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	blocks := make([]types.JournalBlock, 0, len(req.Blocks))
	for _, b := range req.Blocks {
		blocks = append(blocks, b.toBlock())
	}

	id, err := v1.NewJournalLogic(c, s.Core).SaveJournal(v1.SaveJournalArgs{
		ID:         req.ID,
		Title:      req.Title,
		Blocks:     blocks,
		Tags:       req.Tags,
		IsFavorite: req.IsFavorite,
	})
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, SaveJournalResponse{ID: id})
}

type GetJournalResponse struct {
	Entry  *types.JournalEntry `json:"entry"`
	Blocks []BlockPayload      `json:"blocks"`
}

func (s *HttpSrv) GetJournal(c *gin.Context) {
	entryID := c.Param("id")
	logic := v1.NewJournalLogic(c, s.Core)

	entry, err := logic.GetEntry(entryID)
	if err != nil {
		response.APIError(c, err)
		return
	}
	blocks, err := logic.LoadJournalEntry(entryID)
	if err != nil {
		response.APIError(c, err)
		return
	}

	payload := make([]BlockPayload, 0, len(blocks))
	for _, b := range blocks {
		switch v := b.(type) {
		case types.TextBlock:
			payload = append(payload, BlockPayload{ID: v.ID, Type: v.Type(), Content: v.Content})
		case types.GalleryBlock:
			payload = append(payload, BlockPayload{ID: v.ID, Type: v.Type(), Images: v.Images})
		}
	}
	response.APISuccess(c, GetJournalResponse{Entry: entry, Blocks: payload})
}

func (s *HttpSrv) DeleteJournal(c *gin.Context) {
	if err := v1.NewJournalLogic(c, s.Core).DeleteJournal(c.Param("id")); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type ToggleFavoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

func (s *HttpSrv) ToggleFavorite(c *gin.Context) {
	var req ToggleFavoriteRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewJournalLogic(c, s.Core).ToggleFavorite(c.Param("id"), req.IsFavorite); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) ListJournalFeed(c *gin.Context) {
	items, err := v1.NewJournalLogic(c, s.Core).GetFeedWithPreviews()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, items)
}

func (s *HttpSrv) ListFavorites(c *gin.Context) {
	items, err := v1.NewJournalLogic(c, s.Core).GetFavoritesWithPreviews()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, items)
}

func (s *HttpSrv) ListThisWeek(c *gin.Context) {
	items, err := v1.NewJournalLogic(c, s.Core).GetThisWeekWithPreviews()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, items)
}

type SearchJournalRequest struct {
	Query string `json:"query" form:"query" binding:"required"`
}

func (s *HttpSrv) SearchJournal(c *gin.Context) {
	var req SearchJournalRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	items, err := v1.NewJournalLogic(c, s.Core).SearchEverything(req.Query)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, items)
}

type GroupJournalRequest struct {
	Mode types.GroupMode `json:"mode" form:"mode" binding:"required"`
}

func (s *HttpSrv) GroupJournal(c *gin.Context) {
	var req GroupJournalRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	logic := v1.NewJournalLogic(c, s.Core)
	items, err := logic.GetFeedWithPreviews()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, logic.GroupItems(items, req.Mode))
}

type TodayJournalResponse struct {
	Entered bool   `json:"entered"`
	EntryID string `json:"entry_id"`
}

func (s *HttpSrv) GetTodayJournal(c *gin.Context) {
	logic := v1.NewJournalLogic(c, s.Core)
	entered, err := logic.IsJournalEnteredToday()
	if err != nil {
		response.APIError(c, err)
		return
	}
	entryID, err := logic.GetTodayEntryID()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, TodayJournalResponse{Entered: entered, EntryID: entryID})
}
