package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"github.com/liveem/livem-core/internal/core"
	"github.com/liveem/livem-core/pkg/errors"
	"github.com/liveem/livem-core/pkg/i18n"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

type WorkoutLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewWorkoutLogic(ctx context.Context, core *core.Core) *WorkoutLogic {
	return &WorkoutLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *WorkoutLogic) AddExercise(name string, muscles []string, recommended string) (types.WorkoutExercise, error) {
	exercise := types.WorkoutExercise{
		ID:          utils.GenRecordID(),
		Name:        name,
		Muscles:     strings.Join(muscles, ","),
		Recommended: recommended,
		CreatedAt:   l.core.Now().UnixMilli(),
	}
	if err := l.core.Store().WorkoutExerciseStore().Create(l.ctx, exercise); err != nil {
		return types.WorkoutExercise{}, errors.New("WorkoutLogic.AddExercise.WorkoutExerciseStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return exercise, nil
}

func (l *WorkoutLogic) ListExercises() ([]types.ExerciseWithSets, error) {
	exercises, err := l.core.Store().WorkoutExerciseStore().List(l.ctx)
	if err != nil {
		return nil, errors.New("WorkoutLogic.ListExercises.WorkoutExerciseStore.List", i18n.ERROR_INTERNAL, err)
	}
	return l.withSets(exercises)
}

type LogSetArgs struct {
	Weight string `json:"weight"`
	Reps   string `json:"reps"`
}

// LogSets replaces the exercise's recorded sets and marks it completed.
// Same replace-all shape as a journal save, one transaction.
func (l *WorkoutLogic) LogSets(exerciseID string, sets []LogSetArgs) error {
	if _, err := l.core.Store().WorkoutExerciseStore().Get(l.ctx, exerciseID); err != nil {
		if err == sql.ErrNoRows {
			return errors.New("WorkoutLogic.LogSets.WorkoutExerciseStore.Get.nil", i18n.ERROR_NOTFOUND, err).Code(http.StatusNotFound)
		}
		return errors.New("WorkoutLogic.LogSets.WorkoutExerciseStore.Get", i18n.ERROR_INTERNAL, err)
	}

	now := l.core.Now().UnixMilli()
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().WorkoutSetStore().DeleteByExercise(ctx, exerciseID); err != nil {
			return err
		}
		for i, set := range sets {
			err := l.core.Store().WorkoutSetStore().Create(ctx, types.WorkoutSet{
				ID:         utils.GenRecordID(),
				ExerciseID: exerciseID,
				Weight:     set.Weight,
				Reps:       set.Reps,
				SortOrder:  int64(i),
			})
			if err != nil {
				return err
			}
		}
		return l.core.Store().WorkoutExerciseStore().UpdateCompleted(ctx, exerciseID, true, &now)
	})
	if err != nil {
		return errors.New("WorkoutLogic.LogSets.Transaction", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// GetWorkoutHistory lists completed exercises, most recent first.
func (l *WorkoutLogic) GetWorkoutHistory() ([]types.ExerciseWithSets, error) {
	exercises, err := l.core.Store().WorkoutExerciseStore().ListCompleted(l.ctx)
	if err != nil {
		return nil, errors.New("WorkoutLogic.GetWorkoutHistory.WorkoutExerciseStore.ListCompleted", i18n.ERROR_INTERNAL, err)
	}
	return l.withSets(exercises)
}

func (l *WorkoutLogic) withSets(exercises []types.WorkoutExercise) ([]types.ExerciseWithSets, error) {
	res := make([]types.ExerciseWithSets, 0, len(exercises))
	for _, e := range exercises {
		sets, err := l.core.Store().WorkoutSetStore().ListByExercise(l.ctx, e.ID)
		if err != nil {
			return nil, errors.New("WorkoutLogic.withSets.WorkoutSetStore.ListByExercise", i18n.ERROR_INTERNAL, err)
		}
		res = append(res, types.ExerciseWithSets{Exercise: e, Sets: sets})
	}
	return res, nil
}
