package models

import "time"

type Message struct {
	MessageID      string       `bson:"messageId" json:"messageId"`
	ConversationID string       `bson:"conversationId" json:"conversationId" binding:"required"`
	SenderID       string       `bson:"senderId" json:"senderId" binding:"required"`
	SenderType     string       `bson:"senderType" json:"senderType" binding:"required"` // patient or therapist
	ReceiverID     string       `bson:"receiverId" json:"receiverId" binding:"required"`
	ReceiverType   string       `bson:"receiverType" json:"receiverType" binding:"required"`
	Subject        string       `bson:"subject,omitempty" json:"subject,omitempty"`
	Content        string       `bson:"content" json:"content" binding:"required"`
	MessageType    string       `bson:"messageType" json:"messageType"` // text, appointment-request, prescription, document, emergency
	Priority       string       `bson:"priority" json:"priority"`       // low, normal, high, urgent
	IsRead         bool         `bson:"isRead" json:"isRead"`
	ReadAt         *time.Time   `bson:"readAt,omitempty" json:"readAt,omitempty"`
	Attachments    []Attachment `bson:"attachments,omitempty" json:"attachments,omitempty"`
	IsArchived     bool         `bson:"isArchived" json:"isArchived"`
	CreatedAt      time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time    `bson:"updatedAt" json:"updatedAt"`
}
