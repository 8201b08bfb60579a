package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tune the gorm session; zero values keep the defaults.
type Options struct {
	LogLevel logger.LogLevel
	Log      logrus.FieldLogger
}

func OpenGorm(dsn string, opts Options) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), opts)
}

// OpenGormWithDialector opens any dialect with the service's pool settings.
// Duplicate-key failures are translated into gorm.ErrDuplicatedKey.
func OpenGormWithDialector(dial gorm.Dialector, opts Options) (*gorm.DB, error) {
	level := opts.LogLevel
	if level == 0 {
		level = logger.Warn
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	if opts.Log != nil {
		opts.Log.WithField("dialect", dial.Name()).Info("gorm: connected")
	}
	return db, nil
}

// GormLogLevel maps the service log level onto gorm's coarser levels.
func GormLogLevel(level logrus.Level) logger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return logger.Info
	case level >= logrus.WarnLevel:
		return logger.Warn
	default:
		return logger.Error
	}
}
