package v1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

func Test_SaveJournalRoundTrip(t *testing.T) {
	core := newCore()
	logic := v1.NewJournalLogic(context.Background(), core)

	img1 := []byte{0x89, 0x50, 0x4e, 0x47, 0x01}
	img2 := []byte{0xff, 0xd8, 0xff, 0x02}

	id, err := logic.SaveJournal(v1.SaveJournalArgs{
		Title: "First day",
		Blocks: []types.JournalBlock{
			types.TextBlock{Content: "<p>Hello <b>there</b></p>"},
			types.GalleryBlock{Images: [][]byte{img1, img2}},
			types.TextBlock{Content: "closing thought"},
		},
		Tags: []string{"travel", "food"},
	})
	if err != nil {
		t.Fatal(err)
	}

	blocks, err := logic.LoadJournalEntry(id)
	if err != nil {
		t.Fatal(err)
	}
	if !assert.Len(t, blocks, 3) {
		t.FailNow()
	}

	text, ok := blocks[0].(types.TextBlock)
	assert.True(t, ok)
	assert.Equal(t, "<p>Hello <b>there</b></p>", text.Content)

	gallery, ok := blocks[1].(types.GalleryBlock)
	assert.True(t, ok)
	if assert.Len(t, gallery.Images, 2) {
		assert.Equal(t, img1, gallery.Images[0])
		assert.Equal(t, img2, gallery.Images[1])
	}

	tail, ok := blocks[2].(types.TextBlock)
	assert.True(t, ok)
	assert.Equal(t, "closing thought", tail.Content)

	entry, err := logic.GetEntry(id)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "First day", entry.Title)
	assert.Equal(t, []string{"travel", "food"}, entry.TagList())
}

func Test_SaveJournalSkipsEmptyBlocks(t *testing.T) {
	core := newCore()
	logic := v1.NewJournalLogic(context.Background(), core)

	id, err := logic.SaveJournal(v1.SaveJournalArgs{
		Title: "Sparse",
		Blocks: []types.JournalBlock{
			types.TextBlock{Content: ""},
			types.GalleryBlock{Images: nil},
			types.TextBlock{Content: "kept"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	blocks, err := logic.LoadJournalEntry(id)
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, blocks, 1) {
		assert.Equal(t, "kept", blocks[0].(types.TextBlock).Content)
	}
}

func Test_SaveJournalUpdateReplacesBlocks(t *testing.T) {
	core := newCore()
	logic := v1.NewJournalLogic(context.Background(), core)

	id, err := logic.SaveJournal(v1.SaveJournalArgs{
		Title: "v1",
		Blocks: []types.JournalBlock{
			types.TextBlock{Content: "old text"},
			types.GalleryBlock{Images: [][]byte{{0x01}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	sameID, err := logic.SaveJournal(v1.SaveJournalArgs{
		ID:    &id,
		Title: "v2",
		Blocks: []types.JournalBlock{
			types.TextBlock{Content: "new text"},
		},
		Tags: []string{"rewritten"},
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, id, sameID)

	blocks, err := logic.LoadJournalEntry(id)
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, blocks, 1) {
		assert.Equal(t, "new text", blocks[0].(types.TextBlock).Content)
	}

	entry, err := logic.GetEntry(id)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "v2", entry.Title)

	// the old gallery's image rows must be gone
	images, err := core.Store().JournalImageStore().ListByEntry(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, images, 0)
}

func Test_DeleteJournalCascades(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewJournalLogic(ctx, core)

	id, err := logic.SaveJournal(v1.SaveJournalArgs{
		Title: "doomed",
		Blocks: []types.JournalBlock{
			types.TextBlock{Content: "text"},
			types.GalleryBlock{Images: [][]byte{{0x01}, {0x02}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := logic.DeleteJournal(id); err != nil {
		t.Fatal(err)
	}

	_, err = logic.GetEntry(id)
	assert.Error(t, err)

	rows, err := core.Store().JournalBlockStore().ListByEntry(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, rows, 0)
}

func Test_FeedAndFavorites(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewJournalLogic(ctx, core)

	plainID, err := logic.SaveJournal(v1.SaveJournalArgs{
		Title:  "plain",
		Blocks: []types.JournalBlock{types.TextBlock{Content: "<p>preview&nbsp;text</p>"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	favID, err := logic.SaveJournal(v1.SaveJournalArgs{
		Title:      "starred",
		Blocks:     []types.JournalBlock{types.TextBlock{Content: "fav body"}},
		IsFavorite: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	feed, err := logic.GetFeedWithPreviews()
	if err != nil {
		t.Fatal(err)
	}
	if !assert.Len(t, feed, 2) {
		t.FailNow()
	}
	for _, item := range feed {
		if item.Entry.ID == plainID {
			assert.Equal(t, "preview text", item.Preview)
		}
	}

	favorites, err := logic.GetFavoritesWithPreviews()
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, favorites, 1) {
		assert.Equal(t, favID, favorites[0].Entry.ID)
		assert.Equal(t, "Favorite Entry", favorites[0].Preview)
	}

	if err := logic.ToggleFavorite(plainID, true); err != nil {
		t.Fatal(err)
	}
	favorites, err = logic.GetFavoritesWithPreviews()
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, favorites, 2)
}

func Test_SearchEverything(t *testing.T) {
	core := newCore()
	logic := v1.NewJournalLogic(context.Background(), core)

	byTitle, err := logic.SaveJournal(v1.SaveJournalArgs{Title: "Trip to Kyoto"})
	if err != nil {
		t.Fatal(err)
	}
	byTag, err := logic.SaveJournal(v1.SaveJournalArgs{Title: "untitled", Tags: []string{"kyoto"}})
	if err != nil {
		t.Fatal(err)
	}
	byBody, err := logic.SaveJournal(v1.SaveJournalArgs{
		Title:  "another",
		Blocks: []types.JournalBlock{types.TextBlock{Content: "<p>walked around Kyoto station</p>"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := logic.SaveJournal(v1.SaveJournalArgs{Title: "unrelated"}); err != nil {
		t.Fatal(err)
	}

	res, err := logic.SearchEverything("yoto")
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool)
	for _, item := range res {
		got[item.Entry.ID] = true
	}
	assert.Len(t, res, 3)
	assert.True(t, got[byTitle])
	assert.True(t, got[byTag])
	assert.True(t, got[byBody])
}

func Test_GroupFeedItems(t *testing.T) {
	loc := time.UTC
	items := []types.FeedItem{
		{Entry: types.JournalEntry{ID: "a", Tags: "travel,food", CreatedAt: time.Date(2025, 1, 10, 12, 0, 0, 0, loc).UnixMilli()}},
		{Entry: types.JournalEntry{ID: "b", Tags: "travel", CreatedAt: time.Date(2025, 2, 2, 12, 0, 0, 0, loc).UnixMilli()}},
		{Entry: types.JournalEntry{ID: "c", Tags: "", CreatedAt: time.Date(2024, 12, 31, 12, 0, 0, 0, loc).UnixMilli()}},
	}

	byMonth := v1.GroupFeedItems(items, types.GROUP_BY_MONTH, loc)
	assert.Len(t, byMonth, 3)
	assert.Len(t, byMonth["January 2025"], 1)
	assert.Len(t, byMonth["February 2025"], 1)
	assert.Len(t, byMonth["December 2024"], 1)

	byYear := v1.GroupFeedItems(items, types.GROUP_BY_YEAR, loc)
	assert.Len(t, byYear["2025"], 2)
	assert.Len(t, byYear["2024"], 1)

	byTag := v1.GroupFeedItems(items, types.GROUP_BY_TAG, loc)
	assert.Len(t, byTag["travel"], 2)
	assert.Len(t, byTag["food"], 1)
	// untagged entries land in no bucket
	assert.Len(t, byTag, 2)
}

func Test_TodayEntryBoundaries(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewJournalLogic(ctx, core)

	entered, err := logic.IsJournalEnteredToday()
	if err != nil {
		t.Fatal(err)
	}
	assert.False(t, entered)

	id, err := logic.GetTodayEntryID()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "", id)

	start, end := utils.DayWindow(core.Now())
	store := core.Store().JournalEntryStore()
	// first and last instant of the day both count as today
	if err := store.Create(ctx, types.JournalEntry{ID: "edge-start", Title: "a", CreatedAt: start}); err != nil {
		t.Fatal(err)
	}
	if err := store.Create(ctx, types.JournalEntry{ID: "edge-end", Title: "b", CreatedAt: end}); err != nil {
		t.Fatal(err)
	}
	if err := store.Create(ctx, types.JournalEntry{ID: "tomorrow", Title: "c", CreatedAt: end + 1000}); err != nil {
		t.Fatal(err)
	}

	entered, err = logic.IsJournalEnteredToday()
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, entered)

	id, err = logic.GetTodayEntryID()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "edge-start", id)
}
