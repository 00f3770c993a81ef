package models

// Notification is generated by the backend; the playground only flips Read locally
// after a successful mark-read call.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type,omitempty"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
