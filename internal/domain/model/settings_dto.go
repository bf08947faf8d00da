package model

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type UpdateProfileDTO struct {
	Email    string  `json:"email" validate:"omitempty,email"`
	Username *string `json:"username"`
}

type UpdateThemeDTO struct {
	Theme string `json:"theme" validate:"required"`
}

type ProfileResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
	Theme    string  `json:"theme"`
}
