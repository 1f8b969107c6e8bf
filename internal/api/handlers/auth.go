package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"login_web/internal/service"
	"login_web/internal/session"
)

// AuthHandler 處理與登入相關的請求
type AuthHandler struct {
	userService *service.UserService
	sessions    *session.Store
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(userService *service.UserService, sessions *session.Store) *AuthHandler {
	return &AuthHandler{userService: userService, sessions: sessions}
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 處理用戶登入
// 驗證成功時將這個客戶端的 session 標記為已登入
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	// 解析並驗證請求體，缺少欄位的請求在這裡就被擋下
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "請輸入用戶名和密碼",
		})
		return
	}

	user, err := h.userService.Authenticate(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "請輸入用戶名和密碼",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			// 用戶不存在和密碼錯誤回傳相同的訊息
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "用戶名或密碼錯誤，請重試",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "伺服器錯誤，請稍後再試",
			})
		}
		return
	}

	if err := h.sessions.Login(c.Writer, c.Request, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "伺服器錯誤，請稍後再試",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "登入成功！",
		"username": user.Username,
	})
}

// Check 回傳目前的登入狀態
func (h *AuthHandler) Check(c *gin.Context) {
	username, ok := h.sessions.Current(c.Request)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"logged_in": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logged_in": true,
		"username":  username,
	})
}

// Logout 清除這個客戶端的登入狀態
// 未登入時呼叫也會回傳成功
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Writer, c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "伺服器錯誤，請稍後再試",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "已成功登出",
	})
}

// Home 登入後才能訪問的問候接口
func (h *AuthHandler) Home(c *gin.Context) {
	username := c.GetString("username")
	c.JSON(http.StatusOK, gin.H{
		"message":  "Hello World!",
		"username": username,
	})
}

// TestDB 測試資料庫連線，僅供開發調試使用
func (h *AuthHandler) TestDB(c *gin.Context) {
	count, err := h.userService.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "資料庫連線失敗",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "資料庫連線正常",
		"user_count": count,
	})
}
