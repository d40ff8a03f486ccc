package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oohyj/pointsync/config"
	"github.com/oohyj/pointsync/controllers"
	"github.com/oohyj/pointsync/middleware"
	"github.com/oohyj/pointsync/services"
	"github.com/oohyj/pointsync/stores"
	"github.com/oohyj/pointsync/utils"
)

// SetupRouter wires stores, services, middlewares, and controllers.
func SetupRouter(db *gorm.DB, clock services.Clock) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Request and panic logs go to their own rolling file
	if gl, err := utils.NewRollingFileLogger(cfg, cfg.GinPath); err == nil {
		r.Use(ginzap.Ginzap(gl, time.RFC3339, true))
		r.Use(ginzap.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	userStore := stores.NewUserStore(db)
	attendanceStore := stores.NewAttendanceStore(db)
	pointStore := stores.NewPointStore(db)
	markerCache := stores.NewMarkerCache(utils.GetRedis())

	attendanceService := services.NewAttendanceService(
		userStore, attendanceStore, pointStore, markerCache, clock,
		cfg.CheckInRewardPoints, utils.Sugar,
	)
	pointService := services.NewPointService(userStore, pointStore)
	userService := services.NewUserService(userStore)

	attendanceController := controllers.NewAttendanceController(attendanceService)
	pointController := controllers.NewPointController(pointService)
	userController := controllers.NewUserController(userService)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit())

	attendanceGroup := api.Group("/attendance")
	attendanceGroup.POST("/check-in", attendanceController.CheckIn)
	attendanceGroup.GET("/calendar", attendanceController.Calendar)
	attendanceGroup.GET("/summary", attendanceController.Summary)

	usersGroup := api.Group("/users")
	usersGroup.POST("", userController.SignUp)
	usersGroup.GET("/email", userController.GetByEmail)
	usersGroup.GET("/:id", userController.Get)
	usersGroup.DELETE("/:id", userController.Delete)

	pointsGroup := api.Group("/points")
	pointsGroup.POST("", pointController.Append)
	pointsGroup.GET("/total", pointController.Total)
	pointsGroup.GET("/history", pointController.History)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
