package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	"tweety-backend/internal/models"

	"github.com/google/uuid"
)

const maxTweetLength = 280

// TweetService handles tweet and engagement business logic
type TweetService struct {
	tweetStore   models.TweetStore
	profileStore models.ProfileStore
	identity     models.IdentityProvider
}

// NewTweetService creates a new tweet service
func NewTweetService(tweetStore models.TweetStore, profileStore models.ProfileStore, identity models.IdentityProvider) *TweetService {
	return &TweetService{
		tweetStore:   tweetStore,
		profileStore: profileStore,
		identity:     identity,
	}
}

// OwnTweet is one entry of the caller's own feed
type OwnTweet struct {
	ID            string   `json:"id"`
	Tweet         string   `json:"tweet"`
	Likes         []string `json:"likes"`
	CommentsCount int      `json:"commentsCount"`
}

// OwnFeed is the response payload for the caller's own feed
type OwnFeed struct {
	Tweets         []OwnTweet `json:"tweets"`
	UserProfileURL string     `json:"userProfileUrl"`
	Username       string     `json:"username"`
	UserEmail      string     `json:"userEmail"`
}

// FeedTweet is one entry of the global feed
type FeedTweet struct {
	ID             string   `json:"id"`
	Tweet          string   `json:"tweet"`
	UsersWhoLikes  []string `json:"usersWhoLikesArray"`
	PostLikes      int      `json:"postLikes"`
	IsLiked        bool     `json:"isLiked"`
	UserProfileURL string   `json:"userProfileUrl"`
	Username       string   `json:"username"`
	CommentsCount  int      `json:"commentsCount"`
}

// Post creates a new tweet. The likes list starts with the creator's auth
// UID and the comment list starts with a placeholder entry; both seed
// entries are discounted from every displayed count.
func (s *TweetService) Post(ctx context.Context, user models.AuthUser, text string) error {
	if text == "" || utf8.RuneCountInString(text) > maxTweetLength {
		return models.ErrValidation
	}

	profile, err := s.profileStore.Get(ctx, emailKey(user.Email))
	if errors.Is(err, models.ErrNotFound) {
		return models.ErrProfileRequired
	}
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	seed, err := json.Marshal(user.UID)
	if err != nil {
		return fmt.Errorf("failed to encode comment seed: %w", err)
	}

	tweet := &models.Tweet{
		ID:        uuid.New().String(),
		AuthorID:  user.Email,
		Text:      text,
		Likes:     []string{user.UID},
		Comments:  []json.RawMessage{seed},
		UserName:  profile.Name,
		CreatedAt: time.Now(),
	}

	if err := s.tweetStore.Create(ctx, tweet); err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}

	return nil
}

// ListMine returns the caller's own tweets with their comment counts
func (s *TweetService) ListMine(ctx context.Context, user models.AuthUser) (*OwnFeed, error) {
	username := user.Name
	profile, err := s.profileStore.Get(ctx, emailKey(user.Email))
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile != nil {
		username = profile.Name
	}

	tweets, err := s.tweetStore.ListByAuthor(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}

	own := make([]OwnTweet, 0, len(tweets))
	for _, tweet := range tweets {
		// Clamp in case a stored comment list lost its seed entry.
		count := len(tweet.Comments) - 1
		if count < 0 {
			count = 0
		}
		own = append(own, OwnTweet{
			ID:            tweet.ID,
			Tweet:         tweet.Text,
			Likes:         tweet.Likes,
			CommentsCount: count,
		})
	}

	return &OwnFeed{
		Tweets:         own,
		UserProfileURL: user.AvatarURL,
		Username:       username,
		UserEmail:      user.Email,
	}, nil
}

// ListAll returns every tweet in the store, annotated for the requesting
// user. The avatar shown for a tweet belongs to whichever user sits first
// in its likes list; for a freshly created tweet that is the author, since
// likes is seeded with the creator's UID.
func (s *TweetService) ListAll(ctx context.Context, user models.AuthUser) ([]FeedTweet, error) {
	tweets, err := s.tweetStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}

	feed := make([]FeedTweet, 0, len(tweets))
	for _, tweet := range tweets {
		if len(tweet.Likes) == 0 {
			return nil, fmt.Errorf("tweet %s has no like entries", tweet.ID)
		}

		firstLiker, err := s.identity.GetUser(ctx, tweet.Likes[0])
		if err != nil {
			return nil, fmt.Errorf("failed to look up user %s: %w", tweet.Likes[0], err)
		}

		username := tweet.UserName
		if username == "" {
			username = firstLiker.Name
		}

		feed = append(feed, FeedTweet{
			ID:             tweet.ID,
			Tweet:          tweet.Text,
			UsersWhoLikes:  tweet.Likes,
			PostLikes:      len(tweet.Likes) - 1,
			IsLiked:        slices.Contains(tweet.Likes, user.Email),
			UserProfileURL: firstLiker.AvatarURL,
			Username:       username,
			CommentsCount:  len(tweet.Comments) - 1,
		})
	}

	return feed, nil
}

// ToggleLike flips the caller's membership in a tweet's likes list and
// returns the new state. The whole list is read, mutated and written back;
// concurrent toggles on the same tweet can lose an update.
func (s *TweetService) ToggleLike(ctx context.Context, user models.AuthUser, tweetID string) (bool, int, error) {
	tweet, err := s.tweetStore.GetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, 0, models.ErrNotFound
		}
		return false, 0, fmt.Errorf("failed to get tweet: %w", err)
	}

	likes := tweet.Likes
	liked := false
	if idx := slices.Index(likes, user.Email); idx >= 0 {
		likes = slices.Delete(likes, idx, idx+1)
	} else {
		likes = append(likes, user.Email)
		liked = true
	}

	if err := s.tweetStore.UpdateLikes(ctx, tweetID, likes); err != nil {
		return false, 0, fmt.Errorf("failed to update likes: %w", err)
	}

	return liked, len(likes) - 1, nil
}

// Delete removes one of the caller's own tweets. Ownership is checked by
// scanning the caller's tweet set for the given id, so a foreign id and a
// nonexistent id are rejected identically.
func (s *TweetService) Delete(ctx context.Context, user models.AuthUser, tweetID string) error {
	own, err := s.tweetStore.ListByAuthor(ctx, user.Email)
	if err != nil {
		return fmt.Errorf("failed to list tweets: %w", err)
	}

	owned := false
	for _, tweet := range own {
		if tweet.ID == tweetID {
			owned = true
			break
		}
	}
	if !owned {
		return models.ErrUnauthorized
	}

	if err := s.tweetStore.Delete(ctx, tweetID); err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}

	return nil
}

// PostComment appends a comment to a tweet. The append happens inside the
// store, so concurrent commenters cannot overwrite each other.
func (s *TweetService) PostComment(ctx context.Context, user models.AuthUser, tweetID, text string) (*models.Comment, error) {
	profile, err := s.profileStore.Get(ctx, emailKey(user.Email))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrProfileRequired
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if _, err := s.tweetStore.GetByID(ctx, tweetID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tweet: %w", err)
	}

	comment := &models.Comment{
		Text:      text,
		UserName:  profile.Name,
		UserImg:   user.AvatarURL,
		UserID:    user.Email,
		Timestamp: time.Now().UnixMilli(),
	}

	data, err := json.Marshal(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to encode comment: %w", err)
	}

	if err := s.tweetStore.AppendComment(ctx, tweetID, data); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to append comment: %w", err)
	}

	return comment, nil
}

// ListComments returns a tweet's comments without the seed entry. A missing
// tweet yields an empty list, not an error.
func (s *TweetService) ListComments(ctx context.Context, tweetID string) ([]models.Comment, error) {
	tweet, err := s.tweetStore.GetByID(ctx, tweetID)
	if errors.Is(err, models.ErrNotFound) {
		return []models.Comment{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tweet: %w", err)
	}

	comments := make([]models.Comment, 0, len(tweet.Comments))
	for i, raw := range tweet.Comments {
		if i == 0 {
			continue
		}
		var comment models.Comment
		if err := json.Unmarshal(raw, &comment); err != nil {
			return nil, fmt.Errorf("failed to decode comment: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, nil
}
