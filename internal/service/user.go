package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"login_web/internal/models"
	"login_web/internal/repository"
)

var (
	// ErrMissingCredentials 表示請求缺少用戶名或密碼
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrInvalidCredentials 表示帳號或密碼錯誤
	// 用戶不存在和密碼錯誤回傳同一個錯誤，避免外部探測哪些帳號存在
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Authenticate 驗證用戶名和密碼
// 欄位為空時直接回傳 ErrMissingCredentials，不會查詢資料庫
// 驗證成功時回傳對應的用戶
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// 示範系統以明文儲存密碼，直接做字串完全比對
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// CountUsers 回傳用戶總數，提供給資料庫連線測試使用
func (s *UserService) CountUsers() (int64, error) {
	return s.userRepo.Count()
}
