package models

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	SenderID    uint   `json:"senderID"`
	RecipientID uint   `json:"recipientID" gorm:"index"`
	PropertyID  uint   `json:"propertyID"`
	Name        string `json:"name" gorm:"size:50"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Body        string `json:"body"`
	Read        bool   `json:"read" gorm:"default:false;index"`

	Sender    User     `json:"sender" gorm:"foreignKey:SenderID;references:ID"`
	Recipient User     `json:"recipient" gorm:"foreignKey:RecipientID;references:ID"`
	Property  Property `json:"property" gorm:"foreignKey:PropertyID;references:ID"`
}

// MessageView is the plain, transport-safe shape of a message: string
// identifiers, related entities materialized down to the fields the
// inbox actually renders, no driver wrapper types.
type MessageView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Body      string          `json:"body"`
	Read      bool            `json:"read"`
	Sender    MessageSender   `json:"sender"`
	Property  MessageProperty `json:"property"`
	CreatedAt time.Time       `json:"createdAt"`
}

type MessageSender struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type MessageProperty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewMessageView flattens a loaded message into its transport shape.
// Sparse projections are fine: a sender or property loaded with only a
// subset of fields still materializes, empty strings for the rest.
func NewMessageView(m *Message) MessageView {
	return MessageView{
		ID:    strconv.FormatUint(uint64(m.ID), 10),
		Name:  m.Name,
		Email: m.Email,
		Phone: m.Phone,
		Body:  m.Body,
		Read:  m.Read,
		Sender: MessageSender{
			ID:       strconv.FormatUint(uint64(m.SenderID), 10),
			Username: m.Sender.Username,
		},
		Property: MessageProperty{
			ID:   strconv.FormatUint(uint64(m.PropertyID), 10),
			Name: m.Property.Name,
		},
		CreatedAt: m.CreatedAt,
	}
}
