package repository

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"go_keiko_flashcards/internal/config"
	"go_keiko_flashcards/internal/model"

	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/driver/sqlite"                 // ローカル開発・テスト用
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DBOptions はコネクションプールなどの接続設定
type DBOptions struct {
	Driver          string
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// インスタンス
func NewDB(opts DBOptions, appLogger *slog.Logger) (*gorm.DB, error) {
	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond), // 遅いクエリの閾値を調整
	)

	dialector, err := openDialector(opts.Driver, opts.URL)
	if err != nil {
		appLogger.Error("Unsupported database driver", slog.String("driver", opts.Driver))
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: slogGormLogger.LogMode(gormLogLevel),
		// 一意制約違反を gorm.ErrDuplicatedKey に変換する
		TranslateError: true,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, translateError(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close() // Ping失敗時はここでClose
		return nil, translateError(err)
	}

	// コネクションプールの設定
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	appLogger.Info("Database connection established with GORM", slog.String("driver", opts.Driver))
	return db, nil
}

func openDialector(driver, url string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres, "":
		return postgres.Open(url), nil
	case config.DriverSQLite:
		return sqlite.Open(url), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate はテーブルとインデックスを作成・更新します
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Course{}, &model.Card{}, &model.Quiz{}); err != nil {
		return fmt.Errorf("repository.Migrate: %w", err)
	}
	return nil
}
