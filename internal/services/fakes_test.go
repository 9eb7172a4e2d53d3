package services

import (
	"context"
	"encoding/json"
	"slices"

	"tweety-backend/internal/models"
)

// fakeTweetStore is an in-memory TweetStore preserving insertion order.
type fakeTweetStore struct {
	tweets []*models.Tweet
	err    error
}

func (f *fakeTweetStore) Create(ctx context.Context, tweet *models.Tweet) error {
	if f.err != nil {
		return f.err
	}
	clone := *tweet
	f.tweets = append(f.tweets, &clone)
	return nil
}

func (f *fakeTweetStore) GetByID(ctx context.Context, id string) (*models.Tweet, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tweets {
		if t.ID == id {
			clone := *t
			clone.Likes = slices.Clone(t.Likes)
			clone.Comments = slices.Clone(t.Comments)
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeTweetStore) ListByAuthor(ctx context.Context, authorID string) ([]*models.Tweet, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Tweet
	for _, t := range f.tweets {
		if t.AuthorID == authorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTweetStore) ListAll(ctx context.Context) ([]*models.Tweet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tweets, nil
}

func (f *fakeTweetStore) UpdateLikes(ctx context.Context, id string, likes []string) error {
	if f.err != nil {
		return f.err
	}
	for _, t := range f.tweets {
		if t.ID == id {
			t.Likes = slices.Clone(likes)
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeTweetStore) AppendComment(ctx context.Context, id string, comment json.RawMessage) error {
	if f.err != nil {
		return f.err
	}
	for _, t := range f.tweets {
		if t.ID == id {
			t.Comments = append(t.Comments, comment)
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeTweetStore) UpdateUserName(ctx context.Context, authorID, name string) error {
	if f.err != nil {
		return f.err
	}
	for _, t := range f.tweets {
		if t.AuthorID == authorID {
			t.UserName = name
		}
	}
	return nil
}

func (f *fakeTweetStore) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, t := range f.tweets {
		if t.ID == id {
			f.tweets = slices.Delete(f.tweets, i, i+1)
			return nil
		}
	}
	return models.ErrNotFound
}

// fakeProfileStore is an in-memory ProfileStore.
type fakeProfileStore struct {
	profiles map[string]*models.Profile
	err      error
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfileStore) Get(ctx context.Context, emailKey string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	profile, ok := f.profiles[emailKey]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *profile
	return &clone, nil
}

func (f *fakeProfileStore) Save(ctx context.Context, emailKey string, profile *models.Profile) error {
	if f.err != nil {
		return f.err
	}
	clone := *profile
	f.profiles[emailKey] = &clone
	return nil
}

// fakeIdentity resolves tokens and UIDs from fixed maps.
type fakeIdentity struct {
	tokens map[string]models.AuthUser
	users  map[string]models.AuthUser
}

func (f *fakeIdentity) Verify(ctx context.Context, token string) (models.AuthUser, error) {
	user, ok := f.tokens[token]
	if !ok {
		return models.AuthUser{}, models.ErrUnauthenticated
	}
	return user, nil
}

func (f *fakeIdentity) GetUser(ctx context.Context, uid string) (models.AuthUser, error) {
	user, ok := f.users[uid]
	if !ok {
		return models.AuthUser{}, models.ErrNotFound
	}
	return user, nil
}
