package database

import (
	"fmt"
	"log"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/config"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection used by the mysql slot backend. The
// schema is a single kv_slots table; the progress record itself stays an
// opaque JSON document.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := db.AutoMigrate(&model.KVSlot{}); err != nil {
		return nil, err
	}

	return db, nil
}
