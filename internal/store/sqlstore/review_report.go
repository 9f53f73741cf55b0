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
		provider.stores.ReviewReportStore = NewReviewReportStore(provider)
	})
}

type ReviewReportStore struct {
	sqlstore.CommonFields
}

func NewReviewReportStore(provider sqlstore.SqlProviderAchieve) *ReviewReportStore {
	repo := &ReviewReportStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_REVIEW_REPORT)
	repo.SetAllColumns("id", "report_type", "content", "start_date", "end_date", "created_at")
	return repo
}

// Create inserts a report. Reports are immutable, there is no update path.
func (s *ReviewReportStore) Create(ctx context.Context, data types.ReviewReport) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().UnixMilli()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "report_type", "content", "start_date", "end_date", "created_at").
		Values(data.ID, data.ReportType, data.Content, data.StartDate, data.EndDate, data.CreatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return sqlstore.ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *ReviewReportStore) List(ctx context.Context) ([]types.ReviewReport, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res []types.ReviewReport
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReviewReportStore) GetLatestByType(ctx context.Context, reportType string) (*types.ReviewReport, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"report_type": reportType}).OrderBy("end_date DESC").Limit(1)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, sqlstore.ErrorSqlBuild(err)
	}

	var res types.ReviewReport
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}
