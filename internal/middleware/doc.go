// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含了保護需要登入才能訪問的路由的中間件。
// 登入狀態來自 cookie session，由 session 包管理。
package middleware
