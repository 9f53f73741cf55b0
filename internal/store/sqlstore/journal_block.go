package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/liveem/livem-core/pkg/register"
	"github.com/liveem/livem-core/pkg/sqlstore"
	"github.com/liveem/livem-core/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.JournalBlockStore = NewJournalBlockStore(provider)
	})
}

type JournalBlockStore struct {
	sqlstore.CommonFields
}

func NewJournalBlockStore(provider sqlstore.SqlProviderAchieve) *JournalBlockStore {
	repo := &JournalBlockStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_BLOCK)
	repo.SetAllColumns("id", "entry_id", "block_type", "content", "sort_order")
	return repo
}

func (s *JournalBlockStore) Create(ctx context.Context, data types.JournalBlockRow) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "entry_id", "block_type", "content", "sort_order").
		Values(data.ID, data.EntryID, data.BlockType, data.Content, data.SortOrder)

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalBlockStore) ListByEntry(ctx context.Context, entryID string) ([]types.JournalBlockRow, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"entry_id": entryID}).OrderBy("sort_order ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.JournalBlockRow
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalBlockStore) DeleteByEntry(ctx context.Context, entryID string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"entry_id": entryID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
