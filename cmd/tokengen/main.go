// tokengen mints a local access token for exercising the API by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/staffsync/leave-backend-go/internal/config"
	"github.com/staffsync/leave-backend-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user id to embed in the token")
	admin := flag.Bool("admin", false, "mint an administrator token")
	refresh := flag.Bool("refresh", false, "also mint a refresh token")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -user <id> [-admin] [-refresh]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	svc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	token, expiresAt, err := svc.GenerateAccessToken(*userID, *admin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating token:", err)
		os.Exit(1)
	}

	fmt.Printf("token: %s\nexpires_at: %d\n", token, expiresAt)

	if *refresh {
		refreshToken, refreshExpiresAt, err := svc.GenerateRefreshToken(*userID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error generating refresh token:", err)
			os.Exit(1)
		}
		fmt.Printf("refresh_token: %s\nrefresh_expires_at: %d\n", refreshToken, refreshExpiresAt)
	}
}
