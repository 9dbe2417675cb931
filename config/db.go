package config

import (
	"fmt"
	"time"

	"github.com/germannapsix/Json-translate-app/global"
	"github.com/germannapsix/Json-translate-app/log"
	"github.com/germannapsix/Json-translate-app/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initDB() {
	dsn := AppConfig.Database.Dsn
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L().Fatal("DataBase connection failed",
			zap.Error(err),
			zap.String("dsn", dsn),
		)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.L().Error("DataBase connection failed ,got error:", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(AppConfig.Database.ConnMaxLifetimeHours) * time.Hour)
	global.DB = db
	fmt.Println("1. DataBase connection success!")
}

func runMigrations() {
	if err := global.DB.AutoMigrate(
		&models.Users{},
		&models.TranslationRun{},
		&models.TranslationDetail{},
	); err != nil {
		log.L().Error("DataBase migration failed ,got error:", zap.Error(err))
	}
}
