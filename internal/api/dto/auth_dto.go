package dto

// AdminLoginRequest payload for admin login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminTokenResponse returned on successful login.
type AdminTokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// AdminVerifyResponse returned by the verify endpoint.
type AdminVerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}
