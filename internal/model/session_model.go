package model

import "time"

// UserProfile is the local session record. One profile exists per signed-in
// session; sign-in replaces any existing one (last write wins).
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileUpdate carries a partial profile edit. Only name and email are
// mutable; nil fields are left untouched.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
