package store

import (
	"context"

	"github.com/liveem/livem-core/pkg/types"
)

type JournalEntryStore interface {
	Create(ctx context.Context, data types.JournalEntry) error
	Update(ctx context.Context, id, title, tags string, isFavorite bool) error
	UpdateFavorite(ctx context.Context, id string, isFavorite bool) error
	Get(ctx context.Context, id string) (*types.JournalEntry, error)
	List(ctx context.Context) ([]types.JournalEntry, error)
	ListFavorites(ctx context.Context) ([]types.JournalEntry, error)
	ListWithPreview(ctx context.Context) ([]types.EntryWithPreview, error)
	Search(ctx context.Context, keywords string) ([]types.EntryWithPreview, error)
	CountInRange(ctx context.Context, start, end int64) (int64, error)
	GetIDInRange(ctx context.Context, start, end int64) (string, error)
	Delete(ctx context.Context, id string) error
}

type JournalBlockStore interface {
	Create(ctx context.Context, data types.JournalBlockRow) error
	ListByEntry(ctx context.Context, entryID string) ([]types.JournalBlockRow, error)
	DeleteByEntry(ctx context.Context, entryID string) error
}

type JournalImageStore interface {
	Create(ctx context.Context, data types.JournalImage) error
	ListByBlock(ctx context.Context, blockID string) ([]types.JournalImage, error)
	ListByEntry(ctx context.Context, entryID string) ([]types.JournalImage, error)
	DeleteByEntry(ctx context.Context, entryID string) error
}

type DailyTaskStore interface {
	Create(ctx context.Context, data types.DailyTask) error
	Get(ctx context.Context, id string) (*types.DailyTask, error)
	List(ctx context.Context) ([]types.DailyTask, error)
	ListByCreatedRange(ctx context.Context, start, end int64) ([]types.DailyTask, error)
	UpdateStatus(ctx context.Context, id string, isCompleted bool) error
}

type ReviewReportStore interface {
	Create(ctx context.Context, data types.ReviewReport) error
	List(ctx context.Context) ([]types.ReviewReport, error)
	GetLatestByType(ctx context.Context, reportType string) (*types.ReviewReport, error)
}

type SessionKVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type WorkoutExerciseStore interface {
	Create(ctx context.Context, data types.WorkoutExercise) error
	Get(ctx context.Context, id string) (*types.WorkoutExercise, error)
	List(ctx context.Context) ([]types.WorkoutExercise, error)
	ListCompleted(ctx context.Context) ([]types.WorkoutExercise, error)
	UpdateCompleted(ctx context.Context, id string, isCompleted bool, completedAt *int64) error
}

type WorkoutSetStore interface {
	Create(ctx context.Context, data types.WorkoutSet) error
	ListByExercise(ctx context.Context, exerciseID string) ([]types.WorkoutSet, error)
	DeleteByExercise(ctx context.Context, exerciseID string) error
}
