package dto

// RegisterForm public registration submission (password in plaintext here,
// hashed in the use case). ADMIN is deliberately not an option.
type RegisterForm struct {
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=8"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
	Role      string `form:"role" validate:"required,oneof=ARTISAN BUYER CONSULTANT"`
}

// LoginForm login submission.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}
