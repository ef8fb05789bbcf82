package main

// Mints a short-lived HS256 session token for local development, signed with
// SUPABASE_JWT_SECRET and issued for SITE_OWNER_ID.
//
//	go run ./scripts/devtoken.go [-email me@example.com] [-ttl 1h]

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "owner@localhost", "email claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("SUPABASE_JWT_SECRET")
	owner := os.Getenv("SITE_OWNER_ID")
	if secret == "" || owner == "" {
		fmt.Fprintln(os.Stderr, "SUPABASE_JWT_SECRET and SITE_OWNER_ID must be set")
		os.Exit(1)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   owner,
		"email": *email,
		"role":  "authenticated",
		"aud":   "authenticated",
		"iat":   now.Unix(),
		"exp":   now.Add(*ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Printf("User: %s\nExpires: %s\nToken: %s\n", owner, now.Add(*ttl).Format(time.RFC3339), signed)
}
