package v1

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/liveem/livem-core/internal/core"
	"github.com/liveem/livem-core/pkg/errors"
	"github.com/liveem/livem-core/pkg/i18n"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

type JournalLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewJournalLogic(ctx context.Context, core *core.Core) *JournalLogic {
	return &JournalLogic{
		ctx:  ctx,
		core: core,
	}
}

type SaveJournalArgs struct {
	ID         *string
	Title      string
	Blocks     []types.JournalBlock
	Tags       []string
	IsFavorite bool
}

// SaveJournal inserts a new entry or fully replaces an existing entry's
// blocks, in one transaction. Returns the entry id.
func (l *JournalLogic) SaveJournal(args SaveJournalArgs) (string, error) {
	now := l.core.Now().UnixMilli()

	finalID := utils.GenRecordID()
	if args.ID != nil {
		finalID = *args.ID
	}
	tags := strings.Join(args.Tags, ",")

	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if args.ID != nil {
			if err := l.core.Store().JournalEntryStore().Update(ctx, finalID, args.Title, tags, args.IsFavorite); err != nil {
				return err
			}
			// images first, the block subquery still needs the rows
			if err := l.core.Store().JournalImageStore().DeleteByEntry(ctx, finalID); err != nil {
				return err
			}
			if err := l.core.Store().JournalBlockStore().DeleteByEntry(ctx, finalID); err != nil {
				return err
			}
		} else {
			err := l.core.Store().JournalEntryStore().Create(ctx, types.JournalEntry{
				ID:         finalID,
				Title:      args.Title,
				Tags:       tags,
				IsFavorite: args.IsFavorite,
				CreatedAt:  now,
			})
			if err != nil {
				return err
			}
		}

		sortOrder := int64(0)
		for _, block := range args.Blocks {
			blockID := block.BlockID()
			if blockID == "" {
				blockID = utils.GenRecordID()
			}

			switch b := block.(type) {
			case types.TextBlock:
				if b.Content == "" {
					continue
				}
				content := b.Content
				err := l.core.Store().JournalBlockStore().Create(ctx, types.JournalBlockRow{
					ID:        blockID,
					EntryID:   finalID,
					BlockType: types.BLOCK_TYPE_TEXT,
					Content:   &content,
					SortOrder: sortOrder,
				})
				if err != nil {
					return err
				}
			case types.GalleryBlock:
				if len(b.Images) == 0 {
					continue
				}
				err := l.core.Store().JournalBlockStore().Create(ctx, types.JournalBlockRow{
					ID:        blockID,
					EntryID:   finalID,
					BlockType: types.BLOCK_TYPE_IMAGE,
					Content:   nil,
					SortOrder: sortOrder,
				})
				if err != nil {
					return err
				}
				for _, img := range b.Images {
					err := l.core.Store().JournalImageStore().Create(ctx, types.JournalImage{
						ID:        utils.GenRecordID(),
						BlockID:   blockID,
						ImageData: img,
					})
					if err != nil {
						return err
					}
				}
			default:
				// unreachable for the known variants
				return fmt.Errorf("unknown journal block type %T", block)
			}
			sortOrder++
		}
		return nil
	})
	if err != nil {
		return "", errors.New("JournalLogic.SaveJournal.Transaction", i18n.ERROR_INTERNAL, err)
	}

	l.core.Metrics().IncrJournalSave()
	return finalID, nil
}

// LoadJournalEntry rebuilds the ordered block list, rehydrating gallery
// images. An unknown stored block type is a data corruption condition and
// aborts the whole read.
func (l *JournalLogic) LoadJournalEntry(entryID string) ([]types.JournalBlock, error) {
	rows, err := l.core.Store().JournalBlockStore().ListByEntry(l.ctx, entryID)
	if err != nil {
		return nil, errors.New("JournalLogic.LoadJournalEntry.JournalBlockStore.ListByEntry", i18n.ERROR_INTERNAL, err)
	}

	var blocks []types.JournalBlock
	for _, row := range rows {
		switch row.BlockType {
		case types.BLOCK_TYPE_TEXT:
			content := ""
			if row.Content != nil {
				content = *row.Content
			}
			blocks = append(blocks, types.TextBlock{ID: row.ID, Content: content})
		case types.BLOCK_TYPE_IMAGE:
			images, err := l.core.Store().JournalImageStore().ListByBlock(l.ctx, row.ID)
			if err != nil {
				return nil, errors.New("JournalLogic.LoadJournalEntry.JournalImageStore.ListByBlock", i18n.ERROR_INTERNAL, err)
			}
			blocks = append(blocks, types.GalleryBlock{
				ID: row.ID,
				Images: lo.Map(images, func(item types.JournalImage, _ int) []byte {
					return item.ImageData
				}),
			})
		default:
			return nil, errors.New("JournalLogic.LoadJournalEntry.block.type", i18n.ERROR_INTERNAL, fmt.Errorf("unknown block type %q for entry %s", row.BlockType, entryID))
		}
	}
	return blocks, nil
}

func (l *JournalLogic) GetEntry(entryID string) (*types.JournalEntry, error) {
	data, err := l.core.Store().JournalEntryStore().Get(l.ctx, entryID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.GetEntry.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}

	if data == nil || err == sql.ErrNoRows {
		return nil, errors.New("JournalLogic.GetEntry.JournalEntryStore.Get.nil", i18n.ERROR_NOTFOUND, err).Code(http.StatusNotFound)
	}

	return data, nil
}

// DeleteJournal removes the entry, its blocks and their images atomically.
func (l *JournalLogic) DeleteJournal(entryID string) error {
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().JournalImageStore().DeleteByEntry(ctx, entryID); err != nil {
			return err
		}
		if err := l.core.Store().JournalBlockStore().DeleteByEntry(ctx, entryID); err != nil {
			return err
		}
		return l.core.Store().JournalEntryStore().Delete(ctx, entryID)
	})
	if err != nil {
		return errors.New("JournalLogic.DeleteJournal.Transaction", i18n.ERROR_INTERNAL, err)
	}

	l.core.Metrics().IncrJournalDelete()
	return nil
}

func (l *JournalLogic) ToggleFavorite(entryID string, isFavorite bool) error {
	if err := l.core.Store().JournalEntryStore().UpdateFavorite(l.ctx, entryID, isFavorite); err != nil {
		return errors.New("JournalLogic.ToggleFavorite.JournalEntryStore.UpdateFavorite", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

func (l *JournalLogic) GetFeedWithPreviews() ([]types.FeedItem, error) {
	rows, err := l.core.Store().JournalEntryStore().ListWithPreview(l.ctx)
	if err != nil {
		return nil, errors.New("JournalLogic.GetFeedWithPreviews.JournalEntryStore.ListWithPreview", i18n.ERROR_INTERNAL, err)
	}
	return feedFromPreviewRows(rows), nil
}

// GetFavoritesWithPreviews keeps the fixed placeholder preview the
// favorites shelf has always shown instead of hitting the block table.
func (l *JournalLogic) GetFavoritesWithPreviews() ([]types.FeedItem, error) {
	rows, err := l.core.Store().JournalEntryStore().ListFavorites(l.ctx)
	if err != nil {
		return nil, errors.New("JournalLogic.GetFavoritesWithPreviews.JournalEntryStore.ListFavorites", i18n.ERROR_INTERNAL, err)
	}
	return lo.Map(rows, func(item types.JournalEntry, _ int) types.FeedItem {
		return types.FeedItem{Entry: item, Preview: "Favorite Entry"}
	}), nil
}

func (l *JournalLogic) GetThisWeekWithPreviews() ([]types.FeedItem, error) {
	items, err := l.GetFeedWithPreviews()
	if err != nil {
		return nil, err
	}

	startOfWeek := l.core.Now().AddDate(0, 0, -7).UnixMilli()
	return lo.Filter(items, func(item types.FeedItem, _ int) bool {
		return item.Entry.CreatedAt >= startOfWeek
	}), nil
}

func (l *JournalLogic) SearchEverything(query string) ([]types.FeedItem, error) {
	rows, err := l.core.Store().JournalEntryStore().Search(l.ctx, query)
	if err != nil {
		return nil, errors.New("JournalLogic.SearchEverything.JournalEntryStore.Search", i18n.ERROR_INTERNAL, err)
	}
	return feedFromPreviewRows(rows), nil
}

func feedFromPreviewRows(rows []types.EntryWithPreview) []types.FeedItem {
	return lo.Map(rows, func(item types.EntryWithPreview, _ int) types.FeedItem {
		preview := ""
		if item.PreviewContent != nil {
			preview = utils.StripRichText(*item.PreviewContent)
		}
		return types.FeedItem{Entry: item.JournalEntry, Preview: preview}
	})
}

// GroupItems buckets feed items for the folder view. Pure, no store access.
func (l *JournalLogic) GroupItems(items []types.FeedItem, mode types.GroupMode) map[string][]types.FeedItem {
	return GroupFeedItems(items, mode, l.core.Loc())
}

func GroupFeedItems(items []types.FeedItem, mode types.GroupMode, loc *time.Location) map[string][]types.FeedItem {
	res := make(map[string][]types.FeedItem)
	switch mode {
	case types.GROUP_BY_MONTH:
		for _, item := range items {
			key := time.UnixMilli(item.Entry.CreatedAt).In(loc).Format("January 2006")
			res[key] = append(res[key], item)
		}
	case types.GROUP_BY_YEAR:
		for _, item := range items {
			key := time.UnixMilli(item.Entry.CreatedAt).In(loc).Format("2006")
			res[key] = append(res[key], item)
		}
	case types.GROUP_BY_TAG:
		// an entry shows up once per tag; untagged entries show up nowhere
		for _, item := range items {
			for _, tag := range item.Entry.TagList() {
				res[tag] = append(res[tag], item)
			}
		}
	}
	return res
}

func (l *JournalLogic) IsJournalEnteredToday() (bool, error) {
	start, end := utils.DayWindow(l.core.Now())
	count, err := l.core.Store().JournalEntryStore().CountInRange(l.ctx, start, end)
	if err != nil {
		return false, errors.New("JournalLogic.IsJournalEnteredToday.JournalEntryStore.CountInRange", i18n.ERROR_INTERNAL, err)
	}
	return count > 0, nil
}

// GetTodayEntryID returns "" when nothing has been written today.
func (l *JournalLogic) GetTodayEntryID() (string, error) {
	start, end := utils.DayWindow(l.core.Now())
	id, err := l.core.Store().JournalEntryStore().GetIDInRange(l.ctx, start, end)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", errors.New("JournalLogic.GetTodayEntryID.JournalEntryStore.GetIDInRange", i18n.ERROR_INTERNAL, err)
	}
	return id, nil
}
