package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"login_web/internal/models"
)

const (
	sessionName = "login-session"
	keyUserID   = "user_id"
	keyUsername = "username"
)

// Store 管理每個客戶端的登入狀態
// 狀態只有兩種：匿名與已登入，登入成功寫入 cookie session，登出時清除
// 不設過期時間，cookie 跟隨瀏覽器 session 存活
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(secret string) *Store {
	store := sessions.NewCookieStore([]byte(secret))
	// MaxAge 0 表示不設過期時間
	store.MaxAge(0)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: store}
}

// Login 將用戶標記為已登入
func (s *Store) Login(w http.ResponseWriter, r *http.Request, user *models.User) error {
	// Get 在 cookie 解碼失敗時會回傳一個全新的 session，錯誤可以忽略
	sess, _ := s.cookies.Get(r, sessionName)
	sess.Values[keyUserID] = user.ID
	sess.Values[keyUsername] = user.Username
	return sess.Save(r, w)
}

// Current 回傳目前登入的用戶名，第二個回傳值表示是否已登入
func (s *Store) Current(r *http.Request) (string, bool) {
	sess, err := s.cookies.Get(r, sessionName)
	if err != nil {
		return "", false
	}
	username, ok := sess.Values[keyUsername].(string)
	if !ok {
		return "", false
	}
	return username, true
}

// Logout 清除登入狀態，未登入時呼叫也不會出錯
func (s *Store) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, sessionName)
	delete(sess.Values, keyUserID)
	delete(sess.Values, keyUsername)
	// MaxAge -1 讓瀏覽器立即刪除 cookie
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
