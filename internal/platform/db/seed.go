package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"kpiscore/internal/domain/auth"
	"kpiscore/internal/platform/config"
)

// Seed ensures the bootstrap HR user exists. Safe to run on every start.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedAdminEmail)
	if email == "" {
		email = "admin@example.com"
	}
	password := cfg.SeedAdminPassword
	if password == "" {
		password = "ChangeMe123!"
	}
	return ensureUser(ctx, pool, email, password, auth.RoleHR)
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, email, password, role string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE lower(email) = lower($1)", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, "INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3)", email, hash, role)
	return err
}
