package dto

import "github.com/ridwansameer/simple-todo-api/internal/api/validation"

// MinPasswordLength is inclusive: a 5-character password is accepted.
const MinPasswordLength = 5

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Email is invalid"
	}
	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	} else if len(r.Password) < MinPasswordLength {
		errors["password"] = "Password must be at least 5 characters"
	}

	return errors
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	} else if !validation.IsValidEmail(r.Email) {
		errors["email"] = "Email is invalid"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	} else if len(r.Password) < MinPasswordLength {
		errors["password"] = "Password must be at least 5 characters"
	}

	return errors
}

type TokenResponse struct {
	Token string `json:"token"`
}
