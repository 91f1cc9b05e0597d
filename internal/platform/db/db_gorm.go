// Package db opens the relational database handle for the service.
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	adentity "adboard_backend/internal/feature/ads/domain/entity"
	userentity "adboard_backend/internal/feature/users/domain/entity"
)

// OpenDB connects to postgres with a bounded retry loop and optionally
// runs schema migration. The returned handle is passed explicitly to
// every repository; nothing holds it as ambient state.
//
// TranslateError lets repositories match duplicate keys via
// gorm.ErrDuplicatedKey regardless of driver.
// DisableForeignKeyConstraintWhenMigrating keeps the advertisements table
// free of a users FK, so orphaned user_id values remain representable.
func OpenDB(dsn string, runMigrations bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{
			TranslateError:                           true,
			DisableForeignKeyConstraintWhenMigrating: true,
		})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := db.AutoMigrate(
			&userentity.User{},
			&adentity.Advertisement{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
