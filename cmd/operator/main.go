package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"activity-booking/internal/domain/auth"
	"activity-booking/internal/pkg/apikey"
	"activity-booking/internal/pkg/jwt"
)

const usage = `usage:
  operator hash-key <public api key>
  operator token -subject <name> -role <monitor|admin> [-ttl 8h]

token reads the signing secret from JWT_SECRET.`

func main() {
	if len(os.Args) < 2 {
		fail(usage)
	}

	switch os.Args[1] {
	case "hash-key":
		if len(os.Args) != 3 {
			fail(usage)
		}
		hash, err := apikey.Hash(os.Args[2])
		if err != nil {
			fail(err.Error())
		}
		fmt.Println(hash)

	case "token":
		fs := flag.NewFlagSet("token", flag.ExitOnError)
		subject := fs.String("subject", "", "operator name recorded in the token")
		rawRole := fs.String("role", auth.RoleMonitor.String(), "operator role")
		ttl := fs.Duration("ttl", 8*time.Hour, "token lifetime")
		_ = fs.Parse(os.Args[2:])

		secret := os.Getenv("JWT_SECRET")
		if secret == "" || *subject == "" {
			fail(usage)
		}
		role, err := auth.NewRole(*rawRole)
		if err != nil {
			fail(err.Error())
		}
		token, err := jwt.NewService(secret, *ttl).GenerateToken(*subject, role)
		if err != nil {
			fail(err.Error())
		}
		fmt.Println(token)

	default:
		fail(usage)
	}
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
