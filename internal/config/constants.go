// internal/config/constants.go
package config

import (
	"strings"
	"time"
)

// アプリケーション情報
const (
	AppName    = "keiko"
	AppVersion = "v0.0.1" // /health の version ヘッダーに使う
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// デフォルト設定値
const (
	DefaultServerPort               = ":1107"
	DefaultLogLevel                 = "info"
	DefaultMaxIdleConns             = 10
	DefaultMaxOpenConns             = 100
	DefaultConnMaxLifetime          = time.Hour
	DefaultReopenResetsCorrectCount = true
)

// database.url -> APP_DATABASE_URL
var envKeyReplacer = strings.NewReplacer(".", "_")
