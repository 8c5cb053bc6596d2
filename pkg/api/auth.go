package api

// LoginRequest carries the credentials sent to POST /users/login/.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login. The refresh credential is
// not part of the body: the server sets it as an HTTP-only cookie.
type LoginResponse struct {
	Access string `json:"access"` // short-lived bearer token
	User   User   `json:"user"`   // identity snapshot
}

// RegisterRequest carries the payload for POST /users/register/.
// ProviderKind is only meaningful when Role is PROVIDER.
type RegisterRequest struct {
	Email        string       `json:"email"    validate:"required,email"`
	Username     string       `json:"username" validate:"required,min=3,max=30"`
	Password     string       `json:"password" validate:"required,min=8"`
	Role         Role         `json:"role"     validate:"required,oneof=CLIENT PROVIDER"`
	ProviderKind ProviderKind `json:"provider_kind,omitempty" validate:"omitempty,oneof=FREELANCE AGENCY"`
}

// RegisterResponse is returned by a successful registration. Registration
// never authenticates the caller: the account stays inactive until the
// emailed activation token is redeemed.
type RegisterResponse struct {
	Detail             string `json:"detail"`              // human-readable confirmation
	ActivationRequired bool   `json:"activation_required"` // true until the account is activated
}

// ActivateRequest redeems an emailed activation token via POST /users/activate/.
type ActivateRequest struct {
	Token string `json:"token" validate:"required"`
}

// RefreshResponse is returned by POST /users/token/refresh/.
type RefreshResponse struct {
	Access string `json:"access"` // new access token
}
