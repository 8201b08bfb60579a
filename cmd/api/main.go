package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	httpadp "credit-engine/internal/adapter/http"
	appmw "credit-engine/internal/adapter/middleware"
	"credit-engine/internal/adapter/notify"
	"credit-engine/internal/adapter/repository/mysql"
	"credit-engine/internal/config"
	"credit-engine/internal/domain/decision"
	"credit-engine/internal/infrastructure/cache"
	"credit-engine/internal/infrastructure/db"
	"credit-engine/internal/infrastructure/logging"
	"credit-engine/internal/infrastructure/metrics"
	"credit-engine/internal/job/reminder"
	"credit-engine/internal/usecase/application"
	"credit-engine/internal/usecase/borrower"
	"credit-engine/internal/usecase/payment"
	"credit-engine/internal/usecase/preview"
	"credit-engine/internal/usecase/product"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.Options{LogLevel: db.GormLogLevel(log.GetLevel()), Log: log})
	if err != nil {
		log.WithError(err).Fatal("open mysql")
	}
	if err := mysql.Migrate(gdb); err != nil {
		log.WithError(err).Fatal("migrate")
	}

	rdb, err := cache.OpenRedis(cache.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB, Log: log})
	if err != nil {
		log.WithError(err).Fatal("open redis")
	}
	defer rdb.Close()

	policy, err := decision.PolicyByName(cfg.ApprovalPolicy, cfg.ApprovalMinScore)
	if err != nil {
		log.WithError(err).Fatal("approval policy")
	}

	m := metrics.NewCollector()
	tx := mysql.NewGormUoW(gdb)
	repos := tx.Repos()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover(), appmw.Metrics(m))

	idemTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	idem := appmw.Idempotency(cache.NewIdempotencyStore(rdb, 30*time.Second), idemTTL, log)

	httpadp.Register(e, httpadp.Handlers{
		Health:       httpadp.NewHandler(healthChecks(gdb, rdb)),
		Applications: httpadp.NewApplicationHandler(application.NewUsecase(tx, repos, decision.NewEngine(policy), m, log)),
		Payments:     httpadp.NewPaymentHandler(payment.NewUsecase(tx, repos, m, log)),
		Previews:     httpadp.NewPreviewHandler(preview.NewUsecase(repos.Products, repos.Borrowers, repos.Calculations, log)),
		Products:     httpadp.NewProductHandler(product.NewUsecase(repos.Products, repos.Applications, log)),
		Borrowers:    httpadp.NewBorrowerHandler(borrower.NewUsecase(repos.Borrowers, log)),
	}, idem)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	if cfg.ReminderCron != "" {
		job := reminder.New(repos.Payments, repos.Applications, repos.Borrowers,
			newNotifier(cfg, log), cfg.ReminderWindowDays, m, log)
		c, err := job.Schedule(cfg.ReminderCron)
		if err != nil {
			log.WithError(err).Fatal("reminder schedule")
		}
		defer func() { <-c.Stop().Done() }()
		log.WithField("cron", cfg.ReminderCron).Info("reminder job scheduled")
	}

	addr := ":" + cfg.AppPort
	go func() {
		log.WithField("addr", addr).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}

func healthChecks(gdb *gorm.DB, rdb *redis.Client) map[string]httpadp.Check {
	return map[string]httpadp.Check{
		"mysql": func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": cache.Ping(rdb),
	}
}

func newNotifier(cfg *config.Config, log logrus.FieldLogger) notify.Notifier {
	if cfg.SMTPAddr == "" {
		return notify.NewLogNotifier(log)
	}
	return notify.NewEmailNotifier(notify.SMTPConfig{
		Addr:     cfg.SMTPAddr,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
	}, log)
}
