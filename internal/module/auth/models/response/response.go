package response

import (
	"storefront-service/internal/module/auth/models/entity"
	"storefront-service/internal/pkg/session"
)

// BackendLogin is what the backend returns from /api/auth/login.
type BackendLogin struct {
	AccessToken string      `json:"access_token"`
	User        entity.User `json:"user"`
}

type Login struct {
	AccessToken string          `json:"access_token"`
	User        entity.User     `json:"user"`
	Session     session.Session `json:"session"`
	// Redirect is where the client lands: the storefront or the admin console.
	Redirect string `json:"redirect"`
}
