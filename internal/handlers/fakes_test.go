package handlers

import (
	"context"
	"encoding/json"
	"slices"

	"tweety-backend/internal/models"
)

// memTweetStore is an in-memory TweetStore for handler tests.
type memTweetStore struct {
	tweets []*models.Tweet
}

func (m *memTweetStore) Create(ctx context.Context, tweet *models.Tweet) error {
	clone := *tweet
	m.tweets = append(m.tweets, &clone)
	return nil
}

func (m *memTweetStore) GetByID(ctx context.Context, id string) (*models.Tweet, error) {
	for _, t := range m.tweets {
		if t.ID == id {
			clone := *t
			clone.Likes = slices.Clone(t.Likes)
			clone.Comments = slices.Clone(t.Comments)
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memTweetStore) ListByAuthor(ctx context.Context, authorID string) ([]*models.Tweet, error) {
	var out []*models.Tweet
	for _, t := range m.tweets {
		if t.AuthorID == authorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTweetStore) ListAll(ctx context.Context) ([]*models.Tweet, error) {
	return m.tweets, nil
}

func (m *memTweetStore) UpdateLikes(ctx context.Context, id string, likes []string) error {
	for _, t := range m.tweets {
		if t.ID == id {
			t.Likes = slices.Clone(likes)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *memTweetStore) AppendComment(ctx context.Context, id string, comment json.RawMessage) error {
	for _, t := range m.tweets {
		if t.ID == id {
			t.Comments = append(t.Comments, comment)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *memTweetStore) UpdateUserName(ctx context.Context, authorID, name string) error {
	for _, t := range m.tweets {
		if t.AuthorID == authorID {
			t.UserName = name
		}
	}
	return nil
}

func (m *memTweetStore) Delete(ctx context.Context, id string) error {
	for i, t := range m.tweets {
		if t.ID == id {
			m.tweets = slices.Delete(m.tweets, i, i+1)
			return nil
		}
	}
	return models.ErrNotFound
}

// memProfileStore is an in-memory ProfileStore for handler tests.
type memProfileStore struct {
	profiles map[string]*models.Profile
}

func (m *memProfileStore) Get(ctx context.Context, emailKey string) (*models.Profile, error) {
	profile, ok := m.profiles[emailKey]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *profile
	return &clone, nil
}

func (m *memProfileStore) Save(ctx context.Context, emailKey string, profile *models.Profile) error {
	clone := *profile
	m.profiles[emailKey] = &clone
	return nil
}

// stubIdentity resolves tokens and UIDs from fixed maps.
type stubIdentity struct {
	tokens map[string]models.AuthUser
	users  map[string]models.AuthUser
}

func (s *stubIdentity) Verify(ctx context.Context, token string) (models.AuthUser, error) {
	user, ok := s.tokens[token]
	if !ok {
		return models.AuthUser{}, models.ErrUnauthenticated
	}
	return user, nil
}

func (s *stubIdentity) GetUser(ctx context.Context, uid string) (models.AuthUser, error) {
	user, ok := s.users[uid]
	if !ok {
		return models.AuthUser{}, models.ErrNotFound
	}
	return user, nil
}
