package v1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

func Test_AddTaskValidatesTargetTime(t *testing.T) {
	core := newCore()
	logic := v1.NewTaskLogic(context.Background(), core)

	bad := "25:99"
	_, err := logic.AddTask("stretch", &bad)
	assert.Error(t, err)

	good := "07:30:00"
	task, err := logic.AddTask("stretch", &good)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "stretch", task.Title)
	if assert.NotNil(t, task.TargetTime) {
		assert.Equal(t, good, *task.TargetTime)
	}

	noTime, err := logic.AddTask("read", nil)
	if err != nil {
		t.Fatal(err)
	}
	assert.Nil(t, noTime.TargetTime)
}

func Test_TodaysTasksWindow(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewTaskLogic(ctx, core)

	today, err := logic.AddTask("today task", nil)
	if err != nil {
		t.Fatal(err)
	}

	start, _ := utils.DayWindow(core.Now())
	err = core.Store().DailyTaskStore().Create(ctx, types.DailyTask{
		ID:        utils.GenRecordID(),
		Title:     "yesterday task",
		CreatedAt: start - 1000,
	})
	if err != nil {
		t.Fatal(err)
	}

	tasks, err := logic.GetTodaysTasks()
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, tasks, 1) {
		assert.Equal(t, today.ID, tasks[0].ID)
	}

	all, err := logic.GetAllTasks()
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, all, 2)
}

func Test_TaskHistoryAndToggle(t *testing.T) {
	core := newCore()
	ctx := context.Background()
	logic := v1.NewTaskLogic(ctx, core)

	start, _ := utils.DayWindow(core.Now())
	store := core.Store().DailyTaskStore()

	doneYesterday := types.DailyTask{ID: utils.GenRecordID(), Title: "done", IsCompleted: true, CreatedAt: start - 1000}
	missedYesterday := types.DailyTask{ID: utils.GenRecordID(), Title: "missed", CreatedAt: start - 1000}
	if err := store.Create(ctx, doneYesterday); err != nil {
		t.Fatal(err)
	}
	if err := store.Create(ctx, missedYesterday); err != nil {
		t.Fatal(err)
	}

	doneToday, err := logic.AddTask("today", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := logic.ToggleTaskStatus(doneToday.ID, true); err != nil {
		t.Fatal(err)
	}

	// history holds completed tasks from previous days only
	history, err := logic.GetTaskHistory()
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, history, 1) {
		assert.Equal(t, doneYesterday.ID, history[0].ID)
	}

	if err := logic.ToggleTaskStatus(doneToday.ID, false); err != nil {
		t.Fatal(err)
	}
	tasks, err := logic.GetTodaysTasks()
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, tasks, 1) {
		assert.False(t, tasks[0].IsCompleted)
	}
}
