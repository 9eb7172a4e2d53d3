package repository

import (
	"context"
	"fmt"

	"tweety-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get retrieves a profile by its sanitized email key
func (r *ProfileRepository) Get(ctx context.Context, emailKey string) (*models.Profile, error) {
	query := `
		SELECT name, age, bio, email
		FROM users_profiles
		WHERE email_key = $1
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query, emailKey).Scan(
		&profile.Name, &profile.Age, &profile.Bio, &profile.Email,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Save upserts a profile under its sanitized email key
func (r *ProfileRepository) Save(ctx context.Context, emailKey string, profile *models.Profile) error {
	query := `
		INSERT INTO users_profiles (email_key, name, age, bio, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email_key) DO UPDATE
		SET name = EXCLUDED.name, age = EXCLUDED.age, bio = EXCLUDED.bio, email = EXCLUDED.email
	`
	_, err := r.db.Exec(ctx, query,
		emailKey, profile.Name, profile.Age, profile.Bio, profile.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
