package change_password

// ChangePasswordRequest HTTP request model
type ChangePasswordRequest struct {
	Password string `json:"password"`
}
