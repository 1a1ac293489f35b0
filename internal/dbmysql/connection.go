package dbmysql

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vanshaj8/Promptly/internal/config"
)

const mysqlDuplicateEntry = 1062

// NewMySQL returns a GORM DB instance connected to MySQL with the schema migrated.
func NewMySQL(cnf *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	dsn := cnf.DSN()

	gormLogLevel := logger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(gormLogLevel),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"module":   "dbmysql",
		"host":     cnf.Database.Host,
		"database": cnf.Database.DatabaseName,
	}).Info("connected to MySQL")

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Brand{}, &InstagramAccount{}, &Comment{}, &Reply{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
