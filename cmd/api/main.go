package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/aidrp-service/internal/api/http"
	"github.com/spec-kit/aidrp-service/internal/api/http/handlers"
	"github.com/spec-kit/aidrp-service/internal/auth"
	"github.com/spec-kit/aidrp-service/internal/config"
	"github.com/spec-kit/aidrp-service/internal/events"
	"github.com/spec-kit/aidrp-service/internal/mailer"
	"github.com/spec-kit/aidrp-service/internal/observability"
	"github.com/spec-kit/aidrp-service/internal/persistence"
	"github.com/spec-kit/aidrp-service/internal/repository"
	"github.com/spec-kit/aidrp-service/internal/service"
	"github.com/spec-kit/aidrp-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	moduleRepo := repository.NewModuleRepository(pool)
	lessonRepo := repository.NewLessonRepository(pool)
	enrollmentRepo := repository.NewEnrollmentRepository(pool)
	incidentRepo := repository.NewIncidentRepository(pool)
	sensorRepo := repository.NewSensorRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	mail := mailer.NewSMTPMailer(cfg.SMTP, logger)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(*cfg, userRepo)
	catalogCache := service.NewRedisCatalogCache(redis.Client, cfg.Redis.CatalogTTL(), logger)
	courseService := service.NewCourseService(service.CourseDependencies{
		CourseRepo:     courseRepo,
		ModuleRepo:     moduleRepo,
		LessonRepo:     lessonRepo,
		EnrollmentRepo: enrollmentRepo,
		Cache:          catalogCache,
		Dispatcher:     dispatcher,
	})
	incidentService := service.NewIncidentService(incidentRepo, userRepo, dispatcher)
	sensorService := service.NewSensorService(sensorRepo)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, dispatcher, mail, logger)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Courses:        handlers.NewCoursesHandler(courseService),
		Lessons:        handlers.NewLessonsHandler(courseService),
		Incidents:      handlers.NewIncidentsHandler(incidentService),
		Sensors:        handlers.NewSensorsHandler(sensorService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
