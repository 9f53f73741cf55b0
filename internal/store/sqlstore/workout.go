package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/liveem/livem-core/pkg/register"
	"github.com/liveem/livem-core/pkg/sqlstore"
	"github.com/liveem/livem-core/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.WorkoutExerciseStore = NewWorkoutExerciseStore(provider)
		provider.stores.WorkoutSetStore = NewWorkoutSetStore(provider)
	})
}

type WorkoutExerciseStore struct {
	sqlstore.CommonFields
}

func NewWorkoutExerciseStore(provider sqlstore.SqlProviderAchieve) *WorkoutExerciseStore {
	repo := &WorkoutExerciseStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_WORKOUT_EXERCISE)
	repo.SetAllColumns("id", "name", "muscles", "recommended", "is_completed", "completed_at", "created_at")
	return repo
}

func (s *WorkoutExerciseStore) Create(ctx context.Context, data types.WorkoutExercise) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().UnixMilli()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "name", "muscles", "recommended", "is_completed", "completed_at", "created_at").
		Values(data.ID, data.Name, data.Muscles, data.Recommended, data.IsCompleted, data.CompletedAt, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *WorkoutExerciseStore) Get(ctx context.Context, id string) (*types.WorkoutExercise, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res types.WorkoutExercise
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *WorkoutExerciseStore) List(ctx context.Context) ([]types.WorkoutExercise, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.WorkoutExercise
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *WorkoutExerciseStore) ListCompleted(ctx context.Context) ([]types.WorkoutExercise, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"is_completed": true}).OrderBy("completed_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.WorkoutExercise
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *WorkoutExerciseStore) UpdateCompleted(ctx context.Context, id string, isCompleted bool, completedAt *int64) error {
	query := sq.Update(s.GetTable()).
		Set("is_completed", isCompleted).
		Set("completed_at", completedAt).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

type WorkoutSetStore struct {
	sqlstore.CommonFields
}

func NewWorkoutSetStore(provider sqlstore.SqlProviderAchieve) *WorkoutSetStore {
	repo := &WorkoutSetStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_WORKOUT_SET)
	repo.SetAllColumns("id", "exercise_id", "weight", "reps", "sort_order")
	return repo
}

func (s *WorkoutSetStore) Create(ctx context.Context, data types.WorkoutSet) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "exercise_id", "weight", "reps", "sort_order").
		Values(data.ID, data.ExerciseID, data.Weight, data.Reps, data.SortOrder)

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *WorkoutSetStore) ListByExercise(ctx context.Context, exerciseID string) ([]types.WorkoutSet, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"exercise_id": exerciseID}).OrderBy("sort_order ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.WorkoutSet
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *WorkoutSetStore) DeleteByExercise(ctx context.Context, exerciseID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"exercise_id": exerciseID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
