package dtos

// CredentialsForm carries a login or signup submission.
type CredentialsForm struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
