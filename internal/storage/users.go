package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adeyemio/kobo/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user with empty collections. It returns false
// without an error when the username is already taken. Passwords are
// stored as bcrypt hashes; the hash doubles as the aggregate's opaque
// credential blob.
func (s *SQLiteStorage) Register(ctx context.Context, username, password string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateString(username, "username"); err != nil {
		return false, err
	}
	if err := validateString(password, "password"); err != nil {
		return false, err
	}

	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE username = ?`, username).Scan(&exists)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.NewUser(username, string(hash))
	doc, err := model.EncodeUser(user)
	if err != nil {
		return false, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, doc) VALUES (?, ?, ?)`,
		username, string(hash), string(doc))
	if err != nil {
		return false, fmt.Errorf("failed to insert user: %w", err)
	}

	slog.Info("registered user", "username", username)
	return true, nil
}

// Login reconstructs the aggregate for a credential match. An unknown
// username or a wrong password returns (nil, nil): an absent result, not
// a failure.
func (s *SQLiteStorage) Login(ctx context.Context, username, password string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(username, "username"); err != nil {
		return nil, err
	}

	var hash, doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash, doc FROM users WHERE username = ?`, username).Scan(&hash, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, nil
	}

	return s.decodeUserDoc(username, hash, []byte(doc)), nil
}

// SaveUser overwrites the stored document for user.Username with the full
// current aggregate state. If the username was never registered the save
// is a silent no-op: registration is a precondition, not something Save
// infers.
func (s *SQLiteStorage) SaveUser(ctx context.Context, user *model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUser(user); err != nil {
		return err
	}

	doc, err := model.EncodeUser(user)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET doc = ?, password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE username = ?`,
		string(doc), user.Password, user.Username)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check save result: %w", err)
	}
	if affected == 0 {
		slog.Debug("save skipped, user not registered", "username", user.Username)
	}
	return nil
}

// decodeUserDoc reconstructs an aggregate from its stored document. A
// document that no longer parses degrades to a fresh empty aggregate for
// the same credentials: a best-effort load, logged but never surfaced as
// a parse error.
func (s *SQLiteStorage) decodeUserDoc(username, hash string, doc []byte) *model.User {
	user, err := model.DecodeUser(doc)
	if err != nil {
		slog.Warn("user document corrupt, loading empty ledger",
			"username", username,
			"error", err)
		return model.NewUser(username, hash)
	}

	// The row's key columns are authoritative over the document copy.
	user.Username = username
	user.Password = hash
	return user
}
