package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"auth_backend/internal/feature/auth/domain/entity"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Open はPostgreSQLへのGORM接続を確立します。接続できるまでリトライし、
// タイムアウト後はプロセスを終了します（起動時の外部コラボレータ契約）。
// TranslateErrorを有効にするため、ユニークインデックス違反は
// gorm.ErrDuplicatedKeyとして返ります。
func Open(dsn string, runMigrations bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after %s: %v", connectTimeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}

	if runMigrations {
		// マイグレーション（User）
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
