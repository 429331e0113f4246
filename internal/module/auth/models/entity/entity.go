package entity

import "storefront-service/internal/pkg/datetime"

type User struct {
	UserID    int64         `json:"user_id"`
	Username  string        `json:"username"`
	Fullname  string        `json:"fullname"`
	Email     string        `json:"email,omitempty"`
	Role      string        `json:"role"`
	CreatedAt datetime.Time `json:"created_at"`
}
