package models

// User is the clinic account as the backend returns it. Role is kept raw;
// access decisions normalize it.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	FullName    string `json:"fullName"`
	Role        string `json:"role"`
	Enabled     bool   `json:"enabled"`
}
