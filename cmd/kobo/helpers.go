package main

import (
	"context"
	"fmt"

	"github.com/adeyemio/kobo/internal/common"
	"github.com/adeyemio/kobo/internal/config"
	"github.com/adeyemio/kobo/internal/model"
	"github.com/adeyemio/kobo/internal/storage"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/kobo/kobo.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// sessionCredentials returns the username and password for this
// invocation, from flags or config.
func sessionCredentials() (username, password string, err error) {
	username = viper.GetString("session.user")
	password = viper.GetString("session.password")
	if username == "" || password == "" {
		return "", "", common.NewUserError("username and password are required (use --user and --password)", common.ErrMissingConfig)
	}
	return username, password, nil
}

// requireUser loads the session's aggregate, rejecting bad credentials.
func requireUser(ctx context.Context, store *storage.SQLiteStorage) (*model.User, error) {
	username, password, err := sessionCredentials()
	if err != nil {
		return nil, err
	}

	user, err := store.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, common.NewUserError("invalid username or password", nil)
	}
	return user, nil
}
