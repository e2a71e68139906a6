package request

import "ezrent/internal/usecase/commands"

type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,user_role"`
}

func (r SignupRequest) ToCommand() commands.SignupRequest {
	return commands.SignupRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// LoginRequest is deliberately loose: malformed credentials fail as invalid credentials, not 400.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

func (r ChangePasswordRequest) ToCommand() commands.ChangePasswordRequest {
	return commands.ChangePasswordRequest{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
}
