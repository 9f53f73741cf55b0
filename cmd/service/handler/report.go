package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/liveem/livem-core/internal/logic/v1"
	"github.com/liveem/livem-core/internal/response"
	"github.com/liveem/livem-core/pkg/types"
	"github.com/liveem/livem-core/pkg/utils"
)

func (s *HttpSrv) ListReports(c *gin.Context) {
	reports, err := v1.NewReportLogic(c, s.Core).GetAllReports()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, reports)
}

type NextReportDateResponse struct {
	NextDate int64 `json:"next_date"`
}

func (s *HttpSrv) GetNextReportDate(c *gin.Context) {
	next, err := v1.NewReportLogic(c, s.Core).NextWeeklyReportDate()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, NextReportDateResponse{NextDate: next})
}

func (s *HttpSrv) GenerateReview(c *gin.Context) {
	if err := v1.NewReportLogic(c, s.Core).TriggerWeeklyReview(); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

type ReviewStatusResponse struct {
	Generating bool   `json:"generating"`
	Content    string `json:"content"`
}

func (s *HttpSrv) GetReviewStatus(c *gin.Context) {
	generating, content := v1.NewReportLogic(c, s.Core).ReviewStatus()
	response.APISuccess(c, ReviewStatusResponse{Generating: generating, Content: content})
}

type SaveReportRequest struct {
	Content   string `json:"content" binding:"required"`
	StartDate int64  `json:"start_date" binding:"required"`
	EndDate   int64  `json:"end_date" binding:"required"`
}

func (s *HttpSrv) SaveReport(c *gin.Context) {
	var req SaveReportRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	report, err := v1.NewReportLogic(c, s.Core).SaveReport(types.REPORT_TYPE_WEEKLY, req.Content, req.StartDate, req.EndDate)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, report)
}
