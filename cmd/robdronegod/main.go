package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/gibs11/robdronego/internal/config"
	"github.com/gibs11/robdronego/internal/database"
	"github.com/gibs11/robdronego/internal/domain"
	httpapi "github.com/gibs11/robdronego/internal/http"
	"github.com/gibs11/robdronego/internal/logger"
	"github.com/gibs11/robdronego/internal/mqtt"
	"github.com/gibs11/robdronego/internal/repository"
	"github.com/gibs11/robdronego/internal/service"
	"github.com/gibs11/robdronego/internal/store"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "robdronegod")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	limits := domain.Limits{
		MaxRoomNameLength:        cfg.Limits.MaxRoomNameLength,
		MaxRoomDescriptionLength: cfg.Limits.MaxRoomDescriptionLength,
		MaxBuildingCodeLength:    cfg.Limits.MaxBuildingCodeLength,
		MaxRobisepCodeLength:     cfg.Limits.MaxRobisepCodeLength,
	}

	// Redis backs the per-floor creation lease. Without it, room creation
	// still works, just unguarded against concurrent requests.
	var kv store.KV
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		kv = store.NewRedisKV(redisClient)
	} else {
		kv = store.NewMemoryKV()
	}
	floorLock := store.NewFloorLock(kv, 10*time.Second)

	var db *sql.DB
	var (
		roomsRepo     repository.RoomsRepository
		elevatorsRepo repository.ElevatorsRepository
		passagesRepo  repository.PassagesRepository
		floorsRepo    repository.FloorsRepository
		buildingsRepo repository.BuildingsRepository
		robisepsRepo  repository.RobisepsRepository
		tasksRepo     repository.TasksRepository
	)
	if cfg.DBEnabled {
		if d, err := database.NewPostgresDB(&cfg.Database); err == nil {
			db = d
			log.Info("DB enabled for robdronegod")
		} else {
			log.Warn("DB enabled but connection failed, falling back to memory repositories", zap.Error(err))
		}
	}
	if db != nil {
		roomsRepo = repository.NewPostgresRoomsRepository(db)
		elevatorsRepo = repository.NewPostgresElevatorsRepository(db)
		passagesRepo = repository.NewPostgresPassagesRepository(db)
		floorsRepo = repository.NewPostgresFloorsRepository(db)
		buildingsRepo = repository.NewPostgresBuildingsRepository(db)
		robisepsRepo = repository.NewPostgresRobisepsRepository(db)
		tasksRepo = repository.NewPostgresTasksRepository(db)
	} else {
		roomsRepo = repository.NewMemoryRoomsRepo()
		elevatorsRepo = repository.NewMemoryElevatorsRepo()
		passagesRepo = repository.NewMemoryPassagesRepo()
		floorsRepo = repository.NewMemoryFloorsRepo()
		buildingsRepo = repository.NewMemoryBuildingsRepo()
		robisepsRepo = repository.NewMemoryRobisepsRepo()
		tasksRepo = repository.NewMemoryTasksRepo()
	}

	areaChecker := service.NewRoomAreaChecker(roomsRepo, elevatorsRepo, passagesRepo, log)
	doorChecker := service.NewDoorPositionChecker(log)
	roomFactory := service.NewRoomFactory(floorsRepo, areaChecker, doorChecker, limits, log)
	roomService := service.NewRoomService(roomsRepo, roomFactory, floorLock, log)
	buildingService := service.NewBuildingService(buildingsRepo, floorsRepo, limits, log)
	placementService := service.NewPlacementService(elevatorsRepo, passagesRepo, roomsRepo, floorsRepo, buildingsRepo, log)
	robisepService := service.NewRobisepService(robisepsRepo, roomsRepo, limits, log)
	planner := service.NewPlannerClient(cfg.Planner.BaseURL,
		time.Duration(cfg.Planner.TimeoutSeconds)*time.Second, log)
	taskService := service.NewTaskService(tasksRepo, roomsRepo, robisepsRepo, planner, log)

	router := httpapi.NewRouter(log)
	router.RegisterFacilityRoutes(
		httpapi.NewBuildingHandler(buildingService, log),
		httpapi.NewRoomHandler(roomService, log),
		httpapi.NewPlacementHandler(placementService, log),
		httpapi.NewFloorExportHandler(buildingService, roomService, placementService, log),
	)
	router.RegisterFleetRoutes(
		httpapi.NewRobisepHandler(robisepService, log),
		httpapi.NewTaskHandler(taskService, log),
	)
	router.RegisterHealthRoutes()

	if cfg.MQTT.Enabled {
		broker := mqtt.NewRobisepBroker(robisepService, log)
		if client, err := mqtt.Start(cfg.MQTT, broker, log); err == nil {
			defer client.Disconnect(250)
		} else {
			log.Warn("MQTT enabled but connection failed, telemetry disabled", zap.Error(err))
		}
	}

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case <-errCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}
