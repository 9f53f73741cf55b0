package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/liveem/livem-core/internal/core"
	"github.com/liveem/livem-core/pkg/errors"
	"github.com/liveem/livem-core/pkg/i18n"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

type TaskLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewTaskLogic(ctx context.Context, core *core.Core) *TaskLogic {
	return &TaskLogic{
		ctx:  ctx,
		core: core,
	}
}

// AddTask assigns a task to today. targetTime is optional "HH:MM:SS".
func (l *TaskLogic) AddTask(title string, targetTime *string) (types.DailyTask, error) {
	if targetTime != nil {
		if _, err := time.Parse("15:04:05", *targetTime); err != nil {
			return types.DailyTask{}, errors.New("TaskLogic.AddTask.targetTime", i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
		}
	}

	task := types.DailyTask{
		ID:          utils.GenRecordID(),
		Title:       title,
		IsCompleted: false,
		TargetTime:  targetTime,
		CreatedAt:   l.core.Now().UnixMilli(),
	}
	if err := l.core.Store().DailyTaskStore().Create(l.ctx, task); err != nil {
		return types.DailyTask{}, errors.New("TaskLogic.AddTask.DailyTaskStore.Create", i18n.ERROR_INTERNAL, err)
	}
	return task, nil
}

func (l *TaskLogic) GetAllTasks() ([]types.DailyTask, error) {
	tasks, err := l.core.Store().DailyTaskStore().List(l.ctx)
	if err != nil {
		return nil, errors.New("TaskLogic.GetAllTasks.DailyTaskStore.List", i18n.ERROR_INTERNAL, err)
	}
	return tasks, nil
}

// GetTodaysTasks filters by the assignment day window, completed or not.
func (l *TaskLogic) GetTodaysTasks() ([]types.DailyTask, error) {
	start, end := utils.DayWindow(l.core.Now())
	tasks, err := l.core.Store().DailyTaskStore().ListByCreatedRange(l.ctx, start, end)
	if err != nil {
		return nil, errors.New("TaskLogic.GetTodaysTasks.DailyTaskStore.ListByCreatedRange", i18n.ERROR_INTERNAL, err)
	}
	return tasks, nil
}

// GetTaskHistory returns completed tasks assigned before the start of today.
func (l *TaskLogic) GetTaskHistory() ([]types.DailyTask, error) {
	startOfToday, _ := utils.DayWindow(l.core.Now())

	tasks, err := l.core.Store().DailyTaskStore().List(l.ctx)
	if err != nil {
		return nil, errors.New("TaskLogic.GetTaskHistory.DailyTaskStore.List", i18n.ERROR_INTERNAL, err)
	}

	return lo.Filter(tasks, func(item types.DailyTask, _ int) bool {
		return item.IsCompleted && item.CreatedAt < startOfToday
	}), nil
}

// ToggleTaskStatus is a single column update, no cascading effects.
func (l *TaskLogic) ToggleTaskStatus(id string, isCompleted bool) error {
	if err := l.core.Store().DailyTaskStore().UpdateStatus(l.ctx, id, isCompleted); err != nil {
		return errors.New("TaskLogic.ToggleTaskStatus.DailyTaskStore.UpdateStatus", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
