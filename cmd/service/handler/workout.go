package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/internal/response"
	"github.com/liveem/livem-core/pkg/utils"
)

type AddExerciseRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Muscles     []string `json:"muscles"`
	Recommended string   `json:"recommended"`
}

func (s *HttpSrv) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	exercise, err := v1.NewWorkoutLogic(c, s.Core).AddExercise(req.Name, req.Muscles, req.Recommended)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, exercise)
}

func (s *HttpSrv) ListExercises(c *gin.Context) {
	exercises, err := v1.NewWorkoutLogic(c, s.Core).ListExercises()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, exercises)
}

type LogSetsRequest struct {
	Sets []v1.LogSetArgs `json:"sets" binding:"required"`
}

func (s *HttpSrv) LogSets(c *gin.Context) {
	var req LogSetsRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewWorkoutLogic(c, s.Core).LogSets(c.Param("id"), req.Sets); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) ListWorkoutHistory(c *gin.Context) {
	exercises, err := v1.NewWorkoutLogic(c, s.Core).GetWorkoutHistory()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, exercises)
}
