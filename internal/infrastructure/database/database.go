package database

import (
	"fmt"
	"time"

	"github.com/chaosweaver007/Genesis/internal/infrastructure/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var SchemaRegistry []interface{}

func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

// Drivers supported by Connect. SQLite is the zero-setup local default;
// postgres is the deployment target.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SchemaName is the postgres schema all service tables live under. SQLite has
// no schema namespacing, so table names stay bare there.
const SchemaName = "genesis"

// Config holds database configuration
type Config struct {
	Driver      string
	DatabaseURL string
	MaxIdle     int
	MaxOpen     int
	MaxLifetime time.Duration
	LogLevel    gormlogger.LogLevel
}

// Connect creates a new database connection with the given configuration
func Connect(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	naming := schema.NamingStrategy{SingularTable: false}
	switch cfg.Driver {
	case DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
		naming.TablePrefix = SchemaName + "."
	case DriverSQLite, "":
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: naming,
		Logger:         gormlogger.Default.LogMode(cfg.LogLevel),
	})
	if err != nil {
		log := logger.GetLogger()
		log.Error().
			Str("error_code", "4b82d6f1-a35e-47c9-90d3-7f1c5b8e2a64").
			Err(err).
			Msg("unable to connect to database")
		return nil, err
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(cfg.MaxLifetime)

	log := logger.GetLogger()
	log.Info().Str("driver", db.Dialector.Name()).Msg("Successfully connected to database")
	return db, nil
}
