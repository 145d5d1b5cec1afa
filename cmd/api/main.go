package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studioops/internal/config"
	"studioops/internal/database"
	"studioops/internal/middleware"
	"studioops/internal/modules/auth"
	"studioops/internal/modules/directory"
	"studioops/internal/modules/feed"
	"studioops/internal/modules/ledger"
	"studioops/internal/modules/production"
	"studioops/internal/modules/scheduling"
	jwtsvc "studioops/internal/pkg/jwt"
	"studioops/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	clientRepo := repository.NewClientRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	store := repository.NewLedgerStore(db)
	health := database.NewHealth(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	ledgerService := ledger.NewService(store, bookingRepo, accountRepo, txnRepo, health, hub)
	ledgerHandler := ledger.NewHandler(ledgerService)

	schedulingService := scheduling.NewService(bookingRepo, staffRepo, clientRepo, packageRepo, ledgerService, cfg)
	schedulingHandler := scheduling.NewHandler(schedulingService)

	productionService := production.NewService(bookingRepo, cfg, hub)
	productionHandler := production.NewHandler(productionService)

	directoryService := directory.NewService(roomRepo, staffRepo, equipmentRepo, clientRepo, packageRepo, accountRepo)
	directoryHandler := directory.NewHandler(directoryService)

	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			directoryHandler.RegisterRoutes(protected)
			schedulingHandler.RegisterRoutes(protected)
			productionHandler.RegisterRoutes(protected)
			ledgerHandler.RegisterRoutes(protected)
			feedHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
