package models

type Message struct {
	ID           string `json:"id"`
	SenderID     string `json:"senderId"`
	ReceiverID   string `json:"receiverId"`
	Content      string `json:"content"`
	SentAt       string `json:"sentAt"`
	LogicalClock int64  `json:"logicalClock"`
	Read         bool   `json:"read"`
}
