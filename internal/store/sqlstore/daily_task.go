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
		provider.stores.DailyTaskStore = NewDailyTaskStore(provider)
	})
}

type DailyTaskStore struct {
	sqlstore.CommonFields
}

func NewDailyTaskStore(provider sqlstore.SqlProviderAchieve) *DailyTaskStore {
	repo := &DailyTaskStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_DAILY_TASK)
	repo.SetAllColumns("id", "title", "is_completed", "target_time", "created_at")
	return repo
}

func (s *DailyTaskStore) Create(ctx context.Context, data types.DailyTask) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().UnixMilli()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "title", "is_completed", "target_time", "created_at").
		Values(data.ID, data.Title, data.IsCompleted, data.TargetTime, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *DailyTaskStore) Get(ctx context.Context, id string) (*types.DailyTask, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res types.DailyTask
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *DailyTaskStore) List(ctx context.Context) ([]types.DailyTask, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.DailyTask
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DailyTaskStore) ListByCreatedRange(ctx context.Context, start, end int64) ([]types.DailyTask, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.GtOrEq{"created_at": start}).Where(sq.LtOrEq{"created_at": end}).
		OrderBy("created_at ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.DailyTask
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DailyTaskStore) UpdateStatus(ctx context.Context, id string, isCompleted bool) error {
	query := sq.Update(s.GetTable()).Set("is_completed", isCompleted).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
