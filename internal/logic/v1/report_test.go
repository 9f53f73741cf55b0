package v1_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/pkg/ai"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

type fakeReviewAI struct {
	text  string
	err   error
	block chan struct{}
}

func (f *fakeReviewAI) Generate(ctx context.Context, prompt string) (ai.GenerateResponse, error) {
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return ai.GenerateResponse{}, f.err
	}
	return ai.GenerateResponse{Received: f.text, Model: "fake"}, nil
}

func (f *fakeReviewAI) Lang() string {
	return ai.MODEL_BASE_LANGUAGE_EN
}

func Test_GetAllDataForAi(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewReportLogic(ctx, core)

	transcript, err := logic.GetAllDataForAi()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "", transcript)

	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, core.Loc())
	day2 := time.Date(2025, 6, 2, 10, 0, 0, 0, core.Loc())

	entryID := utils.GenRecordID()
	err = core.Store().JournalEntryStore().Create(ctx, types.JournalEntry{
		ID: entryID, Title: "Morning pages", CreatedAt: day1.UnixMilli(),
	})
	if err != nil {
		t.Fatal(err)
	}
	content := "<p>Slept well</p>"
	err = core.Store().JournalBlockStore().Create(ctx, types.JournalBlockRow{
		ID: utils.GenRecordID(), EntryID: entryID, BlockType: types.BLOCK_TYPE_TEXT, Content: &content,
	})
	if err != nil {
		t.Fatal(err)
	}
	err = core.Store().DailyTaskStore().Create(ctx, types.DailyTask{
		ID: utils.GenRecordID(), Title: "Run 5k", IsCompleted: true, CreatedAt: day2.UnixMilli(),
	})
	if err != nil {
		t.Fatal(err)
	}

	transcript, err = logic.GetAllDataForAi()
	if err != nil {
		t.Fatal(err)
	}

	want := "DATE: 2025-06-01 | TYPE: JOURNAL | TITLE: Morning pages\nCONTENT: Slept well" +
		"\n\n---\n\n" +
		"DATE: 2025-06-02 | TYPE: MISSION | TASK: Run 5k (Status: Completed)"
	assert.Equal(t, want, transcript)
}

func Test_GetAllDataForAiNoText(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewReportLogic(ctx, core)

	err := core.Store().JournalEntryStore().Create(ctx, types.JournalEntry{
		ID: utils.GenRecordID(), Title: "Photos only", CreatedAt: time.Date(2025, 6, 3, 9, 0, 0, 0, core.Loc()).UnixMilli(),
	})
	if err != nil {
		t.Fatal(err)
	}

	transcript, err := logic.GetAllDataForAi()
	if err != nil {
		t.Fatal(err)
	}
	assert.Contains(t, transcript, "CONTENT: No text")
}

func Test_CalculateNextReportDate(t *testing.T) {
	week := int64(7 * 24 * 60 * 60 * 1000)
	join := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	// no reports yet: a week after joining
	assert.Equal(t, join+week, v1.CalculateNextReportDate(join, nil))

	end1 := join + week
	end2 := join + 2*week
	reports := []types.ReviewReport{
		{ReportType: types.REPORT_TYPE_WEEKLY, EndDate: end2},
		{ReportType: types.REPORT_TYPE_WEEKLY, EndDate: end1},
		{ReportType: "MONTHLY", EndDate: end2 + 10*week},
	}
	assert.Equal(t, end2+week, v1.CalculateNextReportDate(join, reports))
}

func Test_GenerateWeeklyReviewFailureSentinel(t *testing.T) {
	core := newCore()
	logic := v1.NewReportLogic(context.Background(), core)

	// no driver configured, the attempt fails and collapses to ""
	text, err := logic.GenerateWeeklyReview()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "", text)

	core.Srv().AI().Install("mock", &fakeReviewAI{err: fmt.Errorf("upstream 500")})
	text, err = logic.GenerateWeeklyReview()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "", text)
}

func Test_GenerateWeeklyReviewSuccess(t *testing.T) {
	core := newCore()
	logic := v1.NewReportLogic(context.Background(), core)

	core.Srv().AI().Install("mock", &fakeReviewAI{text: "You had a steady week."})
	text, err := logic.GenerateWeeklyReview()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "You had a steady week.", text)
}

func Test_ReviewInFlightGuard(t *testing.T) {
	core := newCore()
	logic := v1.NewReportLogic(context.Background(), core)

	gate := make(chan struct{})
	core.Srv().AI().Install("mock", &fakeReviewAI{text: "ok", block: gate})

	if err := logic.TriggerWeeklyReview(); err != nil {
		t.Fatal(err)
	}
	waitFor(t, logic.IsGenerating)

	_, err := logic.GenerateWeeklyReview()
	assert.Error(t, err)
	assert.Error(t, logic.TriggerWeeklyReview())

	close(gate)
	waitFor(t, func() bool { return !logic.IsGenerating() })

	generating, text := logic.ReviewStatus()
	assert.False(t, generating)
	assert.Equal(t, "ok", text)
}

func Test_SaveAndListReports(t *testing.T) {
	core := newCore()
	logic := v1.NewReportLogic(context.Background(), core)

	last, err := logic.GetLastReportEndDate(types.REPORT_TYPE_WEEKLY)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int64(0), last)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC).UnixMilli()
	report, err := logic.SaveReport(types.REPORT_TYPE_WEEKLY, "## Week one", start, end)
	if err != nil {
		t.Fatal(err)
	}
	assert.NotEmpty(t, report.ID)

	reports, err := logic.GetAllReports()
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, reports, 1) {
		assert.Equal(t, "## Week one", reports[0].Content)
		assert.True(t, strings.HasPrefix(reports[0].Content, "##"))
	}

	last, err = logic.GetLastReportEndDate(types.REPORT_TYPE_WEEKLY)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, end, last)
}

func Test_NextWeeklyReportDate(t *testing.T) {
	core := newCore()
	logic := v1.NewReportLogic(context.Background(), core)

	// nothing stored: roughly a week out from the implied join date
	next, err := logic.NextWeeklyReportDate()
	if err != nil {
		t.Fatal(err)
	}
	week := int64(7 * 24 * 60 * 60 * 1000)
	now := core.Now().UnixMilli()
	assert.InDelta(t, float64(now+week), float64(next), float64(time.Minute.Milliseconds()))
}
