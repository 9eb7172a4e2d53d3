package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tweety-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Provider verifies bearer credentials issued by the identity provider and
// resolves user records through its REST API.
type Provider struct {
	secret  string
	baseURL string
	apiKey  string
	client  *http.Client
}

// New creates a new identity provider client
func New(secret, baseURL, apiKey string) *Provider {
	return &Provider{
		secret:  secret,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify validates a bearer credential and returns the identity it carries.
// Any failure surfaces as models.ErrUnauthenticated; the caller never sees
// partial claims.
func (p *Provider) Verify(ctx context.Context, tokenString string) (models.AuthUser, error) {
	if tokenString == "" {
		return models.AuthUser{}, models.ErrUnauthenticated
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.secret), nil
	})
	if err != nil || !token.Valid {
		return models.AuthUser{}, models.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.AuthUser{}, models.ErrUnauthenticated
	}

	uid, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if uid == "" || email == "" {
		return models.AuthUser{}, models.ErrUnauthenticated
	}

	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return models.AuthUser{
		UID:       uid,
		Email:     email,
		Name:      name,
		AvatarURL: picture,
	}, nil
}

// GetUser fetches a user record from the provider by auth UID
func (p *Provider) GetUser(ctx context.Context, uid string) (models.AuthUser, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s", p.baseURL, url.PathEscape(uid))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("failed to build user lookup request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("failed to look up user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.AuthUser{}, models.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return models.AuthUser{}, fmt.Errorf("user lookup returned status %d", resp.StatusCode)
	}

	var user models.AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return models.AuthUser{}, fmt.Errorf("failed to decode user: %w", err)
	}
	return user, nil
}
