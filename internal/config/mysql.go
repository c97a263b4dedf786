package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared database handle used by the database adapters.
var DB *gorm.DB
var err error

// InitDB opens the MySQL connection. TranslateError maps driver
// duplicate-key failures to gorm.ErrDuplicatedKey, which the repositories
// rely on to detect webhook redelivery.
func InitDB() {
	dsn := os.Getenv("DB_DSN")
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	log.Println("Database connected")
}
