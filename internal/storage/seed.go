package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"login_web/internal/models"
)

// 預設的示範帳號，首次啟動時寫入
const (
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)

// SeedUsers 確保預設的示範用戶存在
// 如果 users 表中已經有同名用戶就跳過，重複啟動不會產生多筆資料
func (db *PostgresDB) SeedUsers() error {
	var user models.User
	err := db.Where("username = ?", DefaultUsername).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for seed user: %w", err)
	}

	user = models.User{
		Username: DefaultUsername,
		Password: DefaultPassword,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}
	return nil
}
