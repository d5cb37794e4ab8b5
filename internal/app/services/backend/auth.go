package backend

import (
	"context"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
)

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

// AuthClient calls the backend auth endpoints. The backend token is not kept;
// the dashboard session is tracked by its own slots.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *AuthClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	return c.authenticate(ctx, "Login", "/"+constvars.ResourceAuth+"/login", loginBody{Username: username, Password: password})
}

func (c *AuthClient) Register(ctx context.Context, body interface{}) (*models.User, error) {
	return c.authenticate(ctx, "Register", "/"+constvars.ResourceAuth+"/register", body)
}

func (c *AuthClient) authenticate(ctx context.Context, operation, path string, body interface{}) (*models.User, error) {
	var resp authResponse
	if err := c.client.do(ctx, operation, constvars.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &APIError{Status: constvars.StatusBadGateway, Message: "auth response carried no user"}
	}
	return resp.User, nil
}
