package handler

// Form payloads posted by the rendered views. Validation failures surface
// as flash notices, not error pages.

type signInRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type signUpRequest struct {
	Username        string `form:"username"         validate:"required"`
	Email           string `form:"email"            validate:"required,email"`
	Password        string `form:"password"         validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
	Role            string `form:"role"             validate:"omitempty,oneof=admin employee"`
}

type addEmployeeRequest struct {
	Username        string `form:"username"         validate:"required"`
	Email           string `form:"email"            validate:"required,email"`
	Password        string `form:"password"         validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required"`
}

type updateEmployeeRequest struct {
	Username string `form:"username" validate:"required"`
	Role     string `form:"role"     validate:"required,oneof=admin employee"`
}

type createReviewRequest struct {
	RecipientID string `form:"recipient_id" validate:"required"`
	Feedback    string `form:"feedback"     validate:"required"`
}
