package api

import (
	"net/http"

	"fittrack/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler under /api/v1. Only registration,
// login and the ping check are reachable without a token.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	planService service.PlanService,
	scheduleService service.ScheduleService,
	progressService service.ProgressService,
	logService service.LogService,
	statsService service.StatsService,
	exportService service.ExportService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	planHandler := NewPlanHandler(planService)
	scheduleHandler := NewScheduleHandler(scheduleService, progressService, logService)
	logHandler := NewLogHandler(logService, exportService)
	statsHandler := NewStatsHandler(statsService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex()})
		})

		// --- Exercise catalog (read-only) ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		}

		// --- Workout plan templates ---
		planGroup := protected.Group("/plans")
		{
			planGroup.GET("", planHandler.ListPlans)
			planGroup.GET("/:id", planHandler.GetPlan)
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.PUT("/:id", planHandler.UpdatePlan)
			planGroup.DELETE("/:id", planHandler.DeletePlan)
			planGroup.POST("/:id/exercises", planHandler.AddExercise)
			planGroup.DELETE("/:id/exercises/:exerciseId", planHandler.RemoveExercise)
		}

		// --- Scheduled workouts ---
		scheduledGroup := protected.Group("/scheduled")
		{
			scheduledGroup.GET("", scheduleHandler.ListScheduled)
			scheduledGroup.GET("/:id", scheduleHandler.GetScheduled)
			scheduledGroup.POST("", scheduleHandler.ScheduleWorkout)
			scheduledGroup.PUT("/:id", scheduleHandler.UpdateScheduled)
			scheduledGroup.POST("/:id/start", scheduleHandler.StartWorkout)
			scheduledGroup.POST("/:id/complete", scheduleHandler.CompleteWorkout)
			scheduledGroup.PUT("/:id/exercise/:exerciseIndex/set/:setIndex", scheduleHandler.UpdateSetProgress)
			scheduledGroup.DELETE("/:id", scheduleHandler.DeleteScheduled)
		}

		// --- Workout history ---
		logGroup := protected.Group("/logs")
		{
			logGroup.GET("", logHandler.GetLogs)
			logGroup.GET("/:id", logHandler.GetLog)
			logGroup.POST("/export", logHandler.ExportLogs)
		}

		// --- Statistics ---
		protected.GET("/stats", statsHandler.GetStats)
	}
}
