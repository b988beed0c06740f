package model

type UserRole string

const (
	Learner UserRole = "learner"
	Trainer UserRole = "trainer"
)

// swagger:model User
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}
