package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"login_web/internal/client"
)

func main() {
	server := flag.String("server", "http://localhost:5000", "登入伺服器位址")
	flag.Parse()

	c, err := client.New(*server)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	username, err := client.PromptUsername(reader, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to read username: %v", err)
	}

	password, err := client.PromptPassword(os.Stdout)
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}

	result, err := c.Login(username, password)
	if err != nil {
		log.Fatalf("Login request failed: %v", err)
	}
	fmt.Println(result.Message)
	if !result.Success {
		os.Exit(1)
	}

	// 登入成功後訪問問候接口，session cookie 由 cookie jar 自動攜帶
	home, err := c.Home()
	if err != nil {
		log.Fatalf("Home request failed: %v", err)
	}
	fmt.Printf("%s (%s)\n", home.Message, home.Username)

	if _, err := c.Logout(); err != nil {
		log.Fatalf("Logout request failed: %v", err)
	}
	fmt.Println("已登出")
}
