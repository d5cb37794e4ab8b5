package requests

type CreateUser struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	FullName    string `json:"fullName" validate:"required"`
	Role        string `json:"role" validate:"required"`
}

type UpdateUser struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	FullName    *string `json:"fullName,omitempty"`
	Role        *string `json:"role,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
}
