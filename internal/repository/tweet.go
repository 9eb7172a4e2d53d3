package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"tweety-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// TweetRepository handles database operations for tweets
type TweetRepository struct {
	db DB
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db DB) *TweetRepository {
	return &TweetRepository{db: db}
}

// Create creates a new tweet
func (r *TweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	likes, err := json.Marshal(tweet.Likes)
	if err != nil {
		return fmt.Errorf("failed to encode likes: %w", err)
	}
	comments, err := json.Marshal(tweet.Comments)
	if err != nil {
		return fmt.Errorf("failed to encode comments: %w", err)
	}

	query := `
		INSERT INTO users_tweets (id, author_id, tweet, likes, comments, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.db.Exec(ctx, query,
		tweet.ID, tweet.AuthorID, tweet.Text, likes, comments, tweet.UserName, tweet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

// GetByID retrieves a tweet by ID
func (r *TweetRepository) GetByID(ctx context.Context, id string) (*models.Tweet, error) {
	query := `
		SELECT id, author_id, tweet, likes, comments, user_name, created_at
		FROM users_tweets
		WHERE id = $1
	`
	var tweet models.Tweet
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tweet.ID, &tweet.AuthorID, &tweet.Text, &tweet.Likes, &tweet.Comments,
		&tweet.UserName, &tweet.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tweet: %w", err)
	}
	return &tweet, nil
}

// ListByAuthor retrieves all tweets authored by the given user, oldest first
func (r *TweetRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Tweet, error) {
	query := `
		SELECT id, author_id, tweet, likes, comments, user_name, created_at
		FROM users_tweets
		WHERE author_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets by author: %w", err)
	}
	defer rows.Close()

	return scanTweets(rows)
}

// ListAll retrieves every tweet in the store, oldest first
func (r *TweetRepository) ListAll(ctx context.Context) ([]*models.Tweet, error) {
	query := `
		SELECT id, author_id, tweet, likes, comments, user_name, created_at
		FROM users_tweets
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer rows.Close()

	return scanTweets(rows)
}

// UpdateLikes overwrites the likes list of a tweet wholesale
func (r *TweetRepository) UpdateLikes(ctx context.Context, id string, likes []string) error {
	data, err := json.Marshal(likes)
	if err != nil {
		return fmt.Errorf("failed to encode likes: %w", err)
	}

	query := `UPDATE users_tweets SET likes = $1 WHERE id = $2`
	result, err := r.db.Exec(ctx, query, data, id)
	if err != nil {
		return fmt.Errorf("failed to update likes: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// AppendComment appends a single comment to a tweet's comment list. The
// append happens inside the store, not via read-modify-write.
func (r *TweetRepository) AppendComment(ctx context.Context, id string, comment json.RawMessage) error {
	query := `UPDATE users_tweets SET comments = comments || $1::jsonb WHERE id = $2`
	result, err := r.db.Exec(ctx, query, []byte(comment), id)
	if err != nil {
		return fmt.Errorf("failed to append comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// UpdateUserName rewrites the denormalized author name on every tweet
// authored by the given user
func (r *TweetRepository) UpdateUserName(ctx context.Context, authorID, name string) error {
	query := `UPDATE users_tweets SET user_name = $1 WHERE author_id = $2`
	_, err := r.db.Exec(ctx, query, name, authorID)
	if err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}
	return nil
}

// Delete removes a tweet by ID
func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users_tweets WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanTweets(rows pgx.Rows) ([]*models.Tweet, error) {
	var tweets []*models.Tweet
	for rows.Next() {
		var tweet models.Tweet
		err := rows.Scan(
			&tweet.ID, &tweet.AuthorID, &tweet.Text, &tweet.Likes, &tweet.Comments,
			&tweet.UserName, &tweet.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tweet: %w", err)
		}
		tweets = append(tweets, &tweet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tweets: %w", err)
	}

	return tweets, nil
}
