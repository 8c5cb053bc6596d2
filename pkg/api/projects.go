package api

import "time"

// ProjectStatus tracks a posting through its lifecycle.
type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "OPEN"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

// Project is a client's posting as listed under /projects/.
type Project struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Budget      float64       `json:"budget"`
	Status      ProjectStatus `json:"status"`
	Skills      []string      `json:"skills"`
	ClientID    int64         `json:"client_id"`
	CreatedAt   time.Time     `json:"created_at"`
}

// CreateProjectRequest posts a new project (CLIENT role).
type CreateProjectRequest struct {
	Title       string   `json:"title"       validate:"required,max=150"`
	Description string   `json:"description" validate:"required"`
	Budget      float64  `json:"budget"      validate:"required,gt=0"`
	Skills      []string `json:"skills"      validate:"omitempty,dive,required"`
}

// ProjectFilter narrows GET /projects/. Zero values are not sent at all.
type ProjectFilter struct {
	Page   int
	Search string
	Status ProjectStatus
}
