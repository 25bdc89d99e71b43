package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/atakand/todo-api/internal/models"
	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for
	// golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	urlPassRegex = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)
	kvPassRegex  = regexp.MustCompile(`(password=)(\S+)`)
)

// Connect opens the database with a short retry loop. TranslateError is on
// so unique-constraint and missing-record failures surface as gorm sentinel
// errors and can be classified by apperr.FromDB.
func Connect(driver, dsn string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}

	open := func() (*gorm.DB, error) {
		switch driver {
		case "sqlite":
			return gorm.Open(sqlite.Open(dsn), cfg)
		default:
			return gorm.Open(postgres.Open(dsn), cfg)
		}
	}

	var conn *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		conn, err = open()
		if err == nil {
			break
		}
		log.Println("Retrying DB connection...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	log.Println("[DB] Using DSN:", maskDSN(dsn))
	return conn, nil
}

// Migrate brings the schema up to date. With sqlMigrations set, SQL files
// under ./migrations run via golang-migrate; otherwise AutoMigrate is used
// as the dev fallback.
func Migrate(conn *gorm.DB, dsn string, sqlMigrations bool) error {
	if sqlMigrations {
		if err := runSQLMigrations(dsn); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if err := conn.SetupJoinTable(&models.Todo{}, "Categories", &models.TodoCategory{}); err != nil {
			return fmt.Errorf("setup join table: %w", err)
		}
		for _, m := range []any{&models.User{}, &models.Category{}, &models.Todo{}} {
			if err := conn.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}

	// sanity check: ensure required core tables exist
	for _, table := range []string{"users", "todos", "categories", "todo_categories"} {
		if !conn.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func maskDSN(dsn string) string {
	s := urlPassRegex.ReplaceAllString(dsn, "://$1:***@")
	return kvPassRegex.ReplaceAllString(s, "${1}***")
}
