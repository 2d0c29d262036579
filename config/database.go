package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func ConnectDB(databaseURL string) {
	dbURL := databaseURL

	// local fallback
	if dbURL == "" {
		host := "localhost"
		user := "postgres"
		password := "postgres"
		dbname := "dinamicbar"
		port := "5432"
		dbURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, user, password, dbname, port,
		)
	} else if !strings.Contains(dbURL, "sslmode=") {
		// hosted postgres usually wants sslmode=require
		sep := "?"
		if strings.Contains(dbURL, "?") {
			sep = "&"
		}
		dbURL = dbURL + sep + "sslmode=require"
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		Log.Sugar().Fatalf("database connection failed: %v", err)
	}

	if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
		Log.Sugar().Warnf("failed to set timezone UTC: %v", err)
	}

	var dbName, currentUser string
	_ = db.Raw("SELECT current_database()").Scan(&dbName)
	_ = db.Raw("SELECT current_user").Scan(&currentUser)
	Log.Sugar().Infof("database connected: db=%s user=%s", dbName, currentUser)

	DB = db
}

// EnsureIndexes creates constraints AutoMigrate cannot express. The
// partial unique index is what guarantees at most one open register even
// if concurrent open requests slip past the in-transaction check.
func EnsureIndexes(db *gorm.DB) error {
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_cash_registers_single_open
		 ON cash_registers (is_open) WHERE is_open`,
	).Error
}
