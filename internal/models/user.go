package models

// User is a backend user as seen by the playground. The id is assigned by the backend.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
