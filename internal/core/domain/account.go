package domain

import "time"

// Account models an authenticatable identity. The password hash is never
// serialized; refresh token and its expiry are either both nil or both set.
type Account struct {
	UserID             int        `json:"user_id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	RealName           string     `json:"real_name"`
	RealSurname        string     `json:"real_surname"`
	PhoneNumber        *string    `json:"phone_number,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
	IsActive           bool       `json:"is_active"`
	RefreshToken       *string    `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`
}

// AuthResult is the transient payload returned on register, login, and
// refresh. It is never persisted as-is.
type AuthResult struct {
	UserID             int       `json:"user_id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	RealName           string    `json:"real_name"`
	RealSurname        string    `json:"real_surname"`
	AccessToken        string    `json:"access_token"`
	RefreshToken       string    `json:"refresh_token"`
	AccessTokenExpiry  time.Time `json:"access_token_expiry"`
	RefreshTokenExpiry time.Time `json:"refresh_token_expiry"`
}
