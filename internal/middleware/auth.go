package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"login_web/internal/session"
)

// SessionAuth 是一個 Gin 中間件，用於驗證請求的登入狀態
// 未登入的請求會被擋下並回傳 401
func SessionAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := store.Current(c.Request)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "請先登入",
			})
			c.Abort()
			return
		}

		// 將用戶信息設置到上下文中
		c.Set("username", username)
		c.Next() // 繼續處理請求
	}
}
