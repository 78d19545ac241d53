package dto

type RegisterRequestDTO struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
	Phone     string   `json:"phone" validate:"omitempty,max=30"`
	Role      string   `json:"role" validate:"omitempty,oneof=student tutor"`
	Track     string   `json:"track"`
	Interests []string `json:"interests"`

	// required when role is tutor
	University       string   `json:"university"`
	Major            string   `json:"major"`
	Year             string   `json:"year"`
	TeachingSubjects []string `json:"teachingSubjects"`
	HourlyRate       float64  `json:"hourlyRate"`
	TutorBio         string   `json:"tutorBio"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdatePasswordRequestDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type AuthResponseDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}
