package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DatabaseInst struct {
	client *gorm.DB
}

func dialectorFor(driver, url string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		return mysql.Open(url), nil
	case "postgres":
		return postgres.Open(url), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func NewDatabaseInst(driver, url string, config *gorm.Config) (*DatabaseInst, error) {
	dialector, err := dialectorFor(driver, url)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &DatabaseInst{client: db}, nil
}

func (d *DatabaseInst) GetClient() *gorm.DB {
	return d.client
}

func (d *DatabaseInst) Migrate() error {
	return d.client.AutoMigrate(&User{})
}
