package db

import (
	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the sqlite database backing the record store. Use path
// "file::memory:?cache=shared" for a throwaway instance.
func Connect(path string, debugMode bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if debugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
	}
	return db, nil
}
