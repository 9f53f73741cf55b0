package sqlstore

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/liveem/livem-core/internal/store"
	"github.com/liveem/livem-core/pkg/register"
	"github.com/liveem/livem-core/pkg/sqlstore"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

var provider = &Provider{
	stores: &Stores{},
}

func GetProvider() *Provider {
	return provider
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.JournalEntryStore
	store.JournalBlockStore
	store.JournalImageStore
	store.DailyTaskStore
	store.ReviewReportStore
	store.SessionKVStore
	store.WorkoutExerciseStore
	store.WorkoutSetStore
}

type RegisterKey struct{}

func MustSetup(m sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(m)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	if err := provider.Install(); err != nil {
		panic(err)
	}

	return func() *Provider {
		return provider
	}
}

func (p *Provider) JournalEntryStore() store.JournalEntryStore {
	return p.stores.JournalEntryStore
}

func (p *Provider) JournalBlockStore() store.JournalBlockStore {
	return p.stores.JournalBlockStore
}

func (p *Provider) JournalImageStore() store.JournalImageStore {
	return p.stores.JournalImageStore
}

func (p *Provider) DailyTaskStore() store.DailyTaskStore {
	return p.stores.DailyTaskStore
}

func (p *Provider) ReviewReportStore() store.ReviewReportStore {
	return p.stores.ReviewReportStore
}

func (p *Provider) SessionKVStore() store.SessionKVStore {
	return p.stores.SessionKVStore
}

func (p *Provider) WorkoutExerciseStore() store.WorkoutExerciseStore {
	return p.stores.WorkoutExerciseStore
}

func (p *Provider) WorkoutSetStore() store.WorkoutSetStore {
	return p.stores.WorkoutSetStore
}
