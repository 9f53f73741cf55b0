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
		provider.stores.JournalImageStore = NewJournalImageStore(provider)
	})
}

type JournalImageStore struct {
	sqlstore.CommonFields
}

func NewJournalImageStore(provider sqlstore.SqlProviderAchieve) *JournalImageStore {
	repo := &JournalImageStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_IMAGE)
	repo.SetAllColumns("id", "block_id", "image_data")
	return repo
}

func (s *JournalImageStore) Create(ctx context.Context, data types.JournalImage) error {
	query := sq.Insert(s.GetTable()).
		Columns("id", "block_id", "image_data").
		Values(data.ID, data.BlockID, data.ImageData)

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalImageStore) ListByBlock(ctx context.Context, blockID string) ([]types.JournalImage, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"block_id": blockID}).OrderBy("rowid ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.JournalImage
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalImageStore) ListByEntry(ctx context.Context, entryID string) ([]types.JournalImage, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Expr("block_id IN (SELECT id FROM "+types.TABLE_JOURNAL_BLOCK+" WHERE entry_id = ?)", entryID))

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.JournalImage
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteByEntry removes every image hanging off the entry's blocks. Runs
// before the blocks themselves are removed so the subquery still matches.
func (s *JournalImageStore) DeleteByEntry(ctx context.Context, entryID string) error {
	query := sq.Delete(s.GetTable()).
		Where(sq.Expr("block_id IN (SELECT id FROM "+types.TABLE_JOURNAL_BLOCK+" WHERE entry_id = ?)", entryID))

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
