package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/internal/response"
	"github.com/liveem/livem-core/pkg/utils"
)

type AddTaskRequest struct {
	Title      string  `json:"title" binding:"required,max=200"`
	TargetTime *string `json:"target_time"`
}

func (s *HttpSrv) AddTask(c *gin.Context) {
	var req AddTaskRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	task, err := v1.NewTaskLogic(c, s.Core).AddTask(req.Title, req.TargetTime)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, task)
}

func (s *HttpSrv) ListTasks(c *gin.Context) {
	tasks, err := v1.NewTaskLogic(c, s.Core).GetAllTasks()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, tasks)
}

func (s *HttpSrv) ListTodaysTasks(c *gin.Context) {
	tasks, err := v1.NewTaskLogic(c, s.Core).GetTodaysTasks()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, tasks)
}

func (s *HttpSrv) ListTaskHistory(c *gin.Context) {
	tasks, err := v1.NewTaskLogic(c, s.Core).GetTaskHistory()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, tasks)
}

type ToggleTaskRequest struct {
	IsCompleted bool `json:"is_completed"`
}

func (s *HttpSrv) ToggleTaskStatus(c *gin.Context) {
	var req ToggleTaskRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewTaskLogic(c, s.Core).ToggleTaskStatus(c.Param("id"), req.IsCompleted); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
