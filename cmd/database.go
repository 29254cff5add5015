package cmd

import (
	"fmt"

	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/services/auth"
)

// openDatabase connects to the configured database
func openDatabase() (*database.DB, error) {
	db, err := database.Initialize(database.OptionsFromConfig(appConfig.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// newAuthService builds the token service from the auth settings
func newAuthService() (*auth.Service, error) {
	cfg := appConfig.Auth
	svc, err := auth.NewService(cfg.JWTSecret, cfg.Issuer, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth: %w", err)
	}
	svc.SetDevAuth(cfg.DevAuthEnabled, cfg.DevAuthToken, cfg.DevAuthUserID)
	return svc, nil
}
