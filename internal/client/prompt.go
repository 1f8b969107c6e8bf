package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword 是 term.ReadPassword 的測試接縫
// 測試時可以替換成 stub，避免碰到真正的終端機
var readPassword = term.ReadPassword

// PromptUsername 顯示提示並讀取一行用戶名，頭尾空白會被去除
func PromptUsername(reader *bufio.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "用戶名: "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword 從終端機讀取密碼，輸入過程不會回顯
func PromptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "密碼: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
