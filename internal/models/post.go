package models

// Post is a backend post. LogicalClock and ServerID are forwarded as-is and never interpreted here.
type Post struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName,omitempty"`
	Content      string `json:"content"`
	CreatedAt    string `json:"createdAt"` // ISO-8601, sort key (newest first)
	Deleted      bool   `json:"deleted,omitempty"`
	LogicalClock int64  `json:"logicalClock"`
	ServerID     string `json:"serverId,omitempty"`
}
