package models

import (
	"context"
	"encoding/json"
	"time"
)

// AuthUser represents an identity resolved by the external identity provider.
type AuthUser struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Name      string `json:"displayName"`
	AvatarURL string `json:"photoUrl"`
}

// Profile represents a user profile, keyed in the store by the sanitized email.
type Profile struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Bio   string `json:"bio"`
	Email string `json:"email"`
}

// Tweet represents a post with its engagement lists.
//
// Likes is seeded with the creator's auth UID at creation time and toggled
// by email afterwards. Comments element 0 is a placeholder entry whose shape
// does not match a real comment. Displayed counts subtract one to discount
// those seed entries.
type Tweet struct {
	ID        string            `json:"id"`
	AuthorID  string            `json:"authorId"`
	Text      string            `json:"tweet"`
	Likes     []string          `json:"likes"`
	Comments  []json.RawMessage `json:"comments"`
	UserName  string            `json:"userName"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Comment represents a single tweet comment.
type Comment struct {
	Text      string `json:"text"`
	UserName  string `json:"userName"`
	UserImg   string `json:"userImg"`
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"`
}

// TweetStore defines persistence operations for tweets.
type TweetStore interface {
	Create(ctx context.Context, tweet *Tweet) error
	GetByID(ctx context.Context, id string) (*Tweet, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*Tweet, error)
	ListAll(ctx context.Context) ([]*Tweet, error)
	UpdateLikes(ctx context.Context, id string, likes []string) error
	AppendComment(ctx context.Context, id string, comment json.RawMessage) error
	UpdateUserName(ctx context.Context, authorID, name string) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore defines persistence operations for profiles.
type ProfileStore interface {
	Get(ctx context.Context, emailKey string) (*Profile, error)
	Save(ctx context.Context, emailKey string, profile *Profile) error
}

// IdentityProvider verifies bearer credentials and resolves users by UID.
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (AuthUser, error)
	GetUser(ctx context.Context, uid string) (AuthUser, error)
}
