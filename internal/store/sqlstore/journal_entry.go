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
		provider.stores.JournalEntryStore = NewJournalEntryStore(provider)
	})
}

type JournalEntryStore struct {
	sqlstore.CommonFields
}

func NewJournalEntryStore(provider sqlstore.SqlProviderAchieve) *JournalEntryStore {
	repo := &JournalEntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_ENTRY)
	repo.SetAllColumns("id", "title", "tags", "is_favorite", "created_at")
	return repo
}

// previewColumn pulls the raw content of the entry's first text block.
const previewColumn = "(SELECT b.content FROM " + types.TABLE_JOURNAL_BLOCK + " b" +
	" WHERE b.entry_id = " + types.TABLE_JOURNAL_ENTRY + ".id AND b.block_type = 'TEXT'" +
	" ORDER BY b.sort_order ASC LIMIT 1) AS preview_content"

func (s *JournalEntryStore) Create(ctx context.Context, data types.JournalEntry) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().UnixMilli()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "title", "tags", "is_favorite", "created_at").
		Values(data.ID, data.Title, data.Tags, data.IsFavorite, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalEntryStore) Update(ctx context.Context, id, title, tags string, isFavorite bool) error {
	query := sq.Update(s.GetTable()).
		Set("title", title).
		Set("tags", tags).
		Set("is_favorite", isFavorite).
		Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalEntryStore) UpdateFavorite(ctx context.Context, id string, isFavorite bool) error {
	query := sq.Update(s.GetTable()).Set("is_favorite", isFavorite).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *JournalEntryStore) Get(ctx context.Context, id string) (*types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res types.JournalEntry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *JournalEntryStore) List(ctx context.Context) ([]types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalEntryStore) ListFavorites(ctx context.Context) ([]types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"is_favorite": true}).OrderBy("created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalEntryStore) ListWithPreview(ctx context.Context) ([]types.EntryWithPreview, error) {
	cols := append(s.GetAllColumns(), previewColumn)
	query := sq.Select(cols...).From(s.GetTable()).OrderBy("created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.EntryWithPreview
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalEntryStore) Search(ctx context.Context, keywords string) ([]types.EntryWithPreview, error) {
	like := "%" + keywords + "%"
	cols := append(s.GetAllColumns(), previewColumn)
	query := sq.Select(cols...).From(s.GetTable()).
		Where(sq.Or{
			sq.Like{"title": like},
			sq.Like{"tags": like},
			sq.Expr("EXISTS (SELECT 1 FROM "+types.TABLE_JOURNAL_BLOCK+" b WHERE b.entry_id = "+s.GetTable()+".id AND b.block_type = 'TEXT' AND b.content LIKE ?)", like),
		}).
		OrderBy("created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.EntryWithPreview
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalEntryStore) CountInRange(ctx context.Context, start, end int64) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).
		Where(sq.GtOrEq{"created_at": start}).Where(sq.LtOrEq{"created_at": end})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, sqlstore.ErrorSqlBuild(err)
	}

	var res int64
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return 0, err
	}
	return res, nil
}

func (s *JournalEntryStore) GetIDInRange(ctx context.Context, start, end int64) (string, error) {
	query := sq.Select("id").From(s.GetTable()).
		Where(sq.GtOrEq{"created_at": start}).Where(sq.LtOrEq{"created_at": end}).
		OrderBy("created_at ASC").Limit(1)

	queryString, args, err := query.ToSql()
	if err != nil {
		return "", sqlstore.ErrorSqlBuild(err)
	}

	var res string
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return "", err
	}
	return res, nil
}

func (s *JournalEntryStore) Delete(ctx context.Context, id string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
