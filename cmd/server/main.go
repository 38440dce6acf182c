package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/bookshelfhq/librarysystem/internal/config"
	"github.com/bookshelfhq/librarysystem/internal/entity"
	"github.com/bookshelfhq/librarysystem/internal/server"
	"github.com/bookshelfhq/librarysystem/pkg/database"
)

func main() {
	cfg := config.Load()

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	srv := server.NewServer(db)

	log.Printf("listening on :%s (%s)", cfg.Port, cfg.AppEnv)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Library{},
		&entity.Book{},
	)
}
