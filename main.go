package main

import (
	"github.com/oohyj/pointsync/config"
	"github.com/oohyj/pointsync/models"
	"github.com/oohyj/pointsync/routes"
	"github.com/oohyj/pointsync/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.AttendanceLog{}, &models.PointLedger{})

	// The check-in fast path needs Redis; surface a dead cache at boot
	if err := utils.InitRedis(); err != nil {
		utils.Sugar.Fatalf("redis ping failed: %v", err)
	}

	clock, err := utils.NewZoneClock(cfg.Timezone)
	if err != nil {
		utils.Sugar.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
	}

	r := routes.SetupRouter(db, clock)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
