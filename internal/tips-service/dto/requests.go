package dto

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ApproveUserRequest struct {
	Email string `json:"email"`
}
