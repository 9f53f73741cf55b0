package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/internal/response"
	"github.com/liveem/livem-core/pkg/utils"
)

type SignInRequest struct {
	Name string `json:"name" binding:"required,max=64"`
	DOB  string `json:"dob"`
}

func (s *HttpSrv) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err := v1.NewSessionLogic(c, s.Core).SignIn(req.Name, req.DOB); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) GetProfile(c *gin.Context) {
	user, err := v1.NewSessionLogic(c, s.Core).GetUser()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, user)
}

func (s *HttpSrv) SignOut(c *gin.Context) {
	if err := v1.NewSessionLogic(c, s.Core).SignOut(); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type StreakResponse struct {
	Streak int `json:"streak"`
}

// RefreshStreak runs the open-of-day streak update and returns the
// current count. The shell calls this once on launch.
func (s *HttpSrv) RefreshStreak(c *gin.Context) {
	logic := v1.NewSessionLogic(c, s.Core)
	if err := logic.UpdateStreak(); err != nil {
		response.APIError(c, err)
		return
	}

	streak, err := logic.GetStreak()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, StreakResponse{Streak: streak})
}
