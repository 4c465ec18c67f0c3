package client

import (
	"context"

	"github.com/benittaafriyie-svg/acity-eats/internal/user"
)

type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	RoomNumber string `json:"room_number,omitempty"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (ac *AuthClient) Register(ctx context.Context, req RegisterRequest) error {
	return ac.c.post(ctx, "/api/auth/register", req, nil)
}

func (ac *AuthClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := ac.c.post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (ac *AuthClient) Profile(ctx context.Context) (*user.User, error) {
	var u user.User
	if err := ac.c.get(ctx, "/api/auth/profile", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
