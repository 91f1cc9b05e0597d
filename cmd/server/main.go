package main

import (
	"log"

	"adboard_backend/internal/app/router"
	adadapters "adboard_backend/internal/feature/ads/adapters"
	adhandler "adboard_backend/internal/feature/ads/transport/handler"
	adusecase "adboard_backend/internal/feature/ads/usecase"
	useradapters "adboard_backend/internal/feature/users/adapters"
	userhandler "adboard_backend/internal/feature/users/transport/handler"
	userusecase "adboard_backend/internal/feature/users/usecase"
	"adboard_backend/internal/platform/config"
	"adboard_backend/internal/platform/db"
)

func main() {
	cfg := config.Load()

	// db
	gdb := db.OpenDB(cfg.DSN(), cfg.RunMigrations)

	// Repository
	userRepo := useradapters.NewUserPostgres(gdb)
	adRepo := adadapters.NewAdvertisementPostgres(gdb)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo)
	adUC := adusecase.NewAdvertisementUsecase(adRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	adH := adhandler.NewAdvertisementHandler(adUC)

	r := router.NewRouter(userH, adH)

	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
