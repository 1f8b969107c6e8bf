package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client 是登入伺服器的 HTTP 客户端
// 使用 cookie jar 自動攜帶 session cookie，登入後的請求不需要額外處理
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

// LoginResult 對應 /api/login 和 /api/logout 的回應格式
type LoginResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
}

// CheckResult 對應 /api/check 的回應格式
type CheckResult struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username"`
}

// HomeResult 對應 /api/home 的回應格式
type HomeResult struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// Login 送出登入請求
// 帳號或密碼錯誤不算傳輸錯誤，結果會放在 LoginResult.Success 中
func (c *Client) Login(username, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := c.post("/api/login", bytes.NewReader(body), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Check 查詢目前的登入狀態
func (c *Client) Check() (*CheckResult, error) {
	var result CheckResult
	if err := c.get("/api/check", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Home 訪問登入後才能看到的問候接口
func (c *Client) Home() (*HomeResult, error) {
	var result HomeResult
	if err := c.get("/api/home", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout 登出並清除 session
func (c *Client) Logout() (*LoginResult, error) {
	var result LoginResult
	if err := c.post("/api/logout", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(path string, body *bytes.Reader, out interface{}) error {
	var resp *http.Response
	var err error
	if body == nil {
		resp, err = c.http.Post(c.baseURL+path, "application/json", nil)
	} else {
		resp, err = c.http.Post(c.baseURL+path, "application/json", body)
	}
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}
