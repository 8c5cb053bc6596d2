package api

import "time"

// Role identifies which side of the marketplace an account belongs to.
type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleProvider Role = "PROVIDER"
)

// ProviderKind refines the PROVIDER role. It is empty for clients.
type ProviderKind string

const (
	KindFreelance ProviderKind = "FREELANCE"
	KindAgency    ProviderKind = "AGENCY"
)

// User is the identity returned by the server (GET /users/me/, login payload).
// ProviderKind is non-empty only when Role is PROVIDER.
type User struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	Username     string       `json:"username"`
	Role         Role         `json:"role"`
	ProviderKind ProviderKind `json:"provider_kind,omitempty"`
	IsActive     bool         `json:"is_active"`
	DateJoined   time.Time    `json:"date_joined"`
}

// IsFreelance reports whether the user is an independent freelancer, the one
// role/kind combination that requires a completed onboarding profile.
func (u *User) IsFreelance() bool {
	return u.Role == RoleProvider && u.ProviderKind == KindFreelance
}

// FreelanceProfile is the onboarding profile of a freelancer.
// GET /users/freelance/profile/ answers 404 until it has been created.
type FreelanceProfile struct {
	ID         int64     `json:"id"`
	Headline   string    `json:"headline"`
	Bio        string    `json:"bio"`
	HourlyRate float64   `json:"hourly_rate"`
	Skills     []string  `json:"skills"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	ResumeURL  string    `json:"resume_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateFreelanceProfileRequest creates the profile during onboarding.
type CreateFreelanceProfileRequest struct {
	Headline   string   `json:"headline"    validate:"required,max=120"`
	Bio        string   `json:"bio"         validate:"required"`
	HourlyRate float64  `json:"hourly_rate" validate:"required,gt=0"`
	Skills     []string `json:"skills"      validate:"required,min=1,dive,required"`
}
