package responses

import "dentclinic-service/internal/app/models"

type LoginUser struct {
	User      models.User `json:"user"`
	Role      string      `json:"role"`
	LoginTime int64       `json:"loginTime"`
}

type SessionEvent struct {
	Type     string `json:"type"`
	Redirect string `json:"redirect,omitempty"`
}
