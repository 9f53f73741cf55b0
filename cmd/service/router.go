package service

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/liveem/livem-core/cmd/service/handler"
	"github.com/liveem/livem-core/cmd/service/middleware"
	"github.com/liveem/livem-core/internal/core"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(middleware.Cors)

	s.Engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Core.Metrics().Registry(), promhttp.HandlerOpts{})))

	apiV1 := s.Engine.Group("/api/v1")
	{
		profile := apiV1.Group("/profile")
		{
			profile.POST("/signin", s.SignIn)
			profile.GET("", s.GetProfile)
			profile.POST("/signout", s.SignOut)
			profile.POST("/streak/refresh", s.RefreshStreak)
		}

		authed := apiV1.Group("")
		authed.Use(middleware.RequireSignIn(s.Core))

		journal := authed.Group("/journal")
		{
			journal.GET("/list", s.ListJournalFeed)
			journal.GET("/favorites", s.ListFavorites)
			journal.GET("/week", s.ListThisWeek)
			journal.GET("/search", s.SearchJournal)
			journal.GET("/groups", s.GroupJournal)
			journal.GET("/today", s.GetTodayJournal)
			journal.GET("/:id", s.GetJournal)
			journal.PUT("", s.SaveJournal)
			journal.DELETE("/:id", s.DeleteJournal)
			journal.PUT("/:id/favorite", s.ToggleFavorite)
		}

		task := authed.Group("/task")
		{
			task.GET("/list", s.ListTasks)
			task.GET("/today", s.ListTodaysTasks)
			task.GET("/history", s.ListTaskHistory)
			task.POST("", s.AddTask)
			task.PUT("/:id/status", s.ToggleTaskStatus)
		}

		report := authed.Group("/report")
		{
			report.GET("/list", s.ListReports)
			report.GET("/next-date", s.GetNextReportDate)
			report.POST("/generate", s.GenerateReview)
			report.GET("/status", s.GetReviewStatus)
			report.POST("", s.SaveReport)
		}

		workout := authed.Group("/workout")
		{
			workout.GET("/list", s.ListExercises)
			workout.GET("/history", s.ListWorkoutHistory)
			workout.POST("", s.AddExercise)
			workout.PUT("/:id/sets", s.LogSets)
		}
	}
}
