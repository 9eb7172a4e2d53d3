package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tweety-backend/internal/models"
)

// ProfileService handles profile-related business logic
type ProfileService struct {
	profileStore models.ProfileStore
	tweetStore   models.TweetStore
}

// NewProfileService creates a new profile service
func NewProfileService(profileStore models.ProfileStore, tweetStore models.TweetStore) *ProfileService {
	return &ProfileService{
		profileStore: profileStore,
		tweetStore:   tweetStore,
	}
}

// Get returns the profile for an email, or models.ErrNotFound when the user
// never saved one.
func (s *ProfileService) Get(ctx context.Context, email string) (*models.Profile, error) {
	return s.profileStore.Get(ctx, emailKey(email))
}

// Save upserts the caller's profile and rewrites the denormalized author
// name on every tweet they posted. Age arrives as whatever JSON type the
// client sent; a value that does not parse to an integer fails the save.
func (s *ProfileService) Save(ctx context.Context, email, name string, age any, bio string) error {
	ageInt, err := parseAge(age)
	if err != nil {
		return fmt.Errorf("failed to parse age: %w", err)
	}

	profile := &models.Profile{
		Name:  name,
		Age:   ageInt,
		Bio:   bio,
		Email: email,
	}
	if err := s.profileStore.Save(ctx, emailKey(email), profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if err := s.tweetStore.UpdateUserName(ctx, email, name); err != nil {
		return fmt.Errorf("failed to propagate profile name: %w", err)
	}

	return nil
}

// emailKey sanitizes an email into a store key. The hierarchical layout this
// carries over forbade path-separator characters in keys.
func emailKey(email string) string {
	return strings.ReplaceAll(email, ".", "_")
}

func parseAge(age any) (int, error) {
	switch v := age.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, err
		}
		return n, nil
	default:
		return 0, errors.New("age is not a number")
	}
}
