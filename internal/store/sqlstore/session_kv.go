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
		provider.stores.SessionKVStore = NewSessionKVStore(provider)
	})
}

// SessionKVStore backs the session/streak tracker. Plain string keys and
// values, the logic layer owns all parsing.
type SessionKVStore struct {
	sqlstore.CommonFields
}

func NewSessionKVStore(provider sqlstore.SqlProviderAchieve) *SessionKVStore {
	repo := &SessionKVStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_SESSION_KV)
	repo.SetAllColumns("key", "value")
	return repo
}

func (s *SessionKVStore) Get(ctx context.Context, key string) (string, error) {
	query := sq.Select("value").From(s.GetTable()).Where(sq.Eq{"key": key})

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

func (s *SessionKVStore) Set(ctx context.Context, key, value string) error {
	query := sq.Insert(s.GetTable()).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value")

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SessionKVStore) Delete(ctx context.Context, key string) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"key": key})

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Clear wipes every session field, the sign-out path.
func (s *SessionKVStore) Clear(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
