package v1

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync/atomic"

	"github.com/liveem/livem-core/internal/core"
	"github.com/liveem/livem-core/pkg/ai/agents/review"
	"github.com/liveem/livem-core/pkg/errors"
	"github.com/liveem/livem-core/pkg/i18n"
	"github.com/liveem/livem-core/pkg/safe"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

const weekMillis = 7 * 24 * 60 * 60 * 1000

// one outstanding generation per process; the review result lives here
// because the shell polls for it instead of blocking on the call
var (
	reviewInFlight atomic.Bool
	reviewResult   atomic.Value // string
)

type ReportLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewReportLogic(ctx context.Context, core *core.Core) *ReportLogic {
	return &ReportLogic{
		ctx:  ctx,
		core: core,
	}
}

// GetAllDataForAi assembles the transcript handed to the review model:
// journal entries and tasks interleaved chronologically, one record per
// separator block.
func (l *ReportLogic) GetAllDataForAi() (string, error) {
	entries, err := l.core.Store().JournalEntryStore().ListWithPreview(l.ctx)
	if err != nil {
		return "", errors.New("ReportLogic.GetAllDataForAi.JournalEntryStore.ListWithPreview", i18n.ERROR_INTERNAL, err)
	}
	tasks, err := l.core.Store().DailyTaskStore().List(l.ctx)
	if err != nil {
		return "", errors.New("ReportLogic.GetAllDataForAi.DailyTaskStore.List", i18n.ERROR_INTERNAL, err)
	}

	type record struct {
		createdAt int64
		line      string
	}

	records := make([]record, 0, len(entries)+len(tasks))
	for _, e := range entries {
		content := "No text"
		if e.PreviewContent != nil {
			content = utils.TruncateRunes(utils.StripRichText(*e.PreviewContent), 500)
		}
		records = append(records, record{
			createdAt: e.CreatedAt,
			line: fmt.Sprintf("DATE: %s | TYPE: JOURNAL | TITLE: %s\nCONTENT: %s",
				utils.FormatDate(e.CreatedAt, l.core.Loc()), e.Title, content),
		})
	}
	for _, t := range tasks {
		status := "Incomplete"
		if t.IsCompleted {
			status = "Completed"
		}
		records = append(records, record{
			createdAt: t.CreatedAt,
			line: fmt.Sprintf("DATE: %s | TYPE: MISSION | TASK: %s (Status: %s)",
				utils.FormatDate(t.CreatedAt, l.core.Loc()), t.Title, status),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].createdAt < records[j].createdAt
	})

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, r.line)
	}

	res := ""
	for i, line := range lines {
		if i > 0 {
			res += "\n\n---\n\n"
		}
		res += line
	}
	return res, nil
}

// CalculateNextReportDate gives the next weekly eligibility in unix milli:
// the most recent weekly report's end date, or the join date when none
// exists, plus seven days.
func CalculateNextReportDate(joinDate int64, existing []types.ReviewReport) int64 {
	var (
		found   bool
		lastEnd int64
	)
	for _, r := range existing {
		if r.ReportType == types.REPORT_TYPE_WEEKLY {
			found = true
			if r.EndDate > lastEnd {
				lastEnd = r.EndDate
			}
		}
	}
	if !found {
		lastEnd = joinDate
	}
	return lastEnd + weekMillis
}

// GenerateWeeklyReview performs the external AI call synchronously.
// Service failures collapse into the empty-string sentinel, by contract
// the caller tells success from failure by emptiness. Only the in-flight
// guard and store failures surface as errors.
func (l *ReportLogic) GenerateWeeklyReview() (string, error) {
	if !reviewInFlight.CompareAndSwap(false, true) {
		return "", errors.New("ReportLogic.GenerateWeeklyReview.inflight", i18n.ERROR_REPORT_IN_FLIGHT, fmt.Errorf("generation already in flight")).Code(http.StatusTooManyRequests)
	}
	defer reviewInFlight.Store(false)

	data, err := l.GetAllDataForAi()
	if err != nil {
		return "", err
	}

	prompt := review.BuildReviewPrompt(l.core.Cfg().Prompt.Review, data)

	resp, err := l.core.Srv().AI().Generate(l.ctx, prompt)
	if err != nil {
		slog.Error("failed to generate weekly review", slog.String("error", err.Error()))
		l.core.Metrics().IncrReviewGeneration("failure")
		return "", nil
	}

	l.core.Metrics().IncrReviewGeneration("success")
	return resp.Message(), nil
}

// TriggerWeeklyReview starts generation off the caller's goroutine. The
// result is published for ReviewStatus polling.
func (l *ReportLogic) TriggerWeeklyReview() error {
	if reviewInFlight.Load() {
		return errors.New("ReportLogic.TriggerWeeklyReview.inflight", i18n.ERROR_REPORT_IN_FLIGHT, fmt.Errorf("generation already in flight")).Code(http.StatusTooManyRequests)
	}

	ctx := context.WithoutCancel(l.ctx)
	c := l.core
	safe.Run(func() {
		text, err := NewReportLogic(ctx, c).GenerateWeeklyReview()
		if err != nil {
			slog.Error("weekly review trigger failed", slog.String("error", err.Error()))
			return
		}
		reviewResult.Store(text)
	})
	return nil
}

func (l *ReportLogic) IsGenerating() bool {
	return reviewInFlight.Load()
}

// ReviewStatus reports the in-flight flag and the last produced review,
// "" when the last attempt failed or nothing ran yet.
func (l *ReportLogic) ReviewStatus() (bool, string) {
	text, _ := reviewResult.Load().(string)
	return reviewInFlight.Load(), text
}

// SaveReport persists a generated review. Reports are immutable after this.
func (l *ReportLogic) SaveReport(reportType, content string, startDate, endDate int64) (types.ReviewReport, error) {
	report := types.ReviewReport{
		ID:         utils.GenRecordID(),
		ReportType: reportType,
		Content:    content,
		StartDate:  startDate,
		EndDate:    endDate,
		CreatedAt:  l.core.Now().UnixMilli(),
	}
	if err := l.core.Store().ReviewReportStore().Create(l.ctx, report); err != nil {
		return types.ReviewReport{}, errors.New("ReportLogic.SaveReport.ReviewReportStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return report, nil
}

func (l *ReportLogic) GetAllReports() ([]types.ReviewReport, error) {
	reports, err := l.core.Store().ReviewReportStore().List(l.ctx)
	if err != nil {
		return nil, errors.New("ReportLogic.GetAllReports.ReviewReportStore.List", i18n.ERROR_INTERNAL, err)
	}
	return reports, nil
}

// GetLastReportEndDate returns 0 when no report of that type exists.
func (l *ReportLogic) GetLastReportEndDate(reportType string) (int64, error) {
	report, err := l.core.Store().ReviewReportStore().GetLatestByType(l.ctx, reportType)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, errors.New("ReportLogic.GetLastReportEndDate.ReviewReportStore.GetLatestByType", i18n.ERROR_INTERNAL, err)
	}
	return report.EndDate, nil
}

// NextWeeklyReportDate combines the stored join date with report history.
func (l *ReportLogic) NextWeeklyReportDate() (int64, error) {
	joinDate, err := NewSessionLogic(l.ctx, l.core).GetJoinDate()
	if err != nil {
		return 0, err
	}
	reports, err := l.GetAllReports()
	if err != nil {
		return 0, err
	}
	return CalculateNextReportDate(joinDate, reports), nil
}
