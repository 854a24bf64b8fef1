package configs

import (
	"github.com/aaryaa4/civic-connectt/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(cfg *Config) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		dial = sqlite.Open(cfg.DBSource)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	db.AutoMigrate(
		&entity.Community{}, &entity.User{},
		&entity.Report{}, &entity.Feedback{},
	)
}
