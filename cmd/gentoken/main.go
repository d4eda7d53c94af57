package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"mentorship/config"
	"mentorship/internal/infra/auth"
	"mentorship/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// gentoken mints an access token for local testing of the API.
func main() {
	userFlag := flag.String("user", "", "User ID to put in the token subject (random when empty)")
	ttlFlag := flag.Duration("ttl", 0, "Token lifetime, defaults to auth.accessTokenTTL")
	flag.Parse()

	token, userID, ttl, err := run(*userFlag, *ttlFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "user_id: %s (expires in %s)\n", userID, util.FormatDuration(ttl))
	fmt.Println(token)
}

func run(rawUserID string, ttl time.Duration) (string, uuid.UUID, time.Duration, error) {
	userID := uuid.New()
	if rawUserID != "" {
		parsed, err := uuid.Parse(rawUserID)
		if err != nil {
			return "", uuid.Nil, 0, errors.Wrap(err, "invalid -user")
		}
		userID = parsed
	}

	cfg, err := config.New()
	if err != nil {
		return "", uuid.Nil, 0, errors.Wrap(err, "failed to load config")
	}

	if ttl <= 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", uuid.Nil, 0, err
	}

	token, err := tokenSvc.GenerateAccessToken(userID, ttl)
	if err != nil {
		return "", uuid.Nil, 0, errors.Wrap(err, "failed to sign token")
	}

	return token, userID, ttl, nil
}
