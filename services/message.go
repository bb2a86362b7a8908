package services

import (
	"github.com/go-playground/validator/v10"

	"property-pulse-server/models"
)

// MessageService creates listing enquiries and serves the recipient's
// inbox.
type MessageService struct {
	messages MessageStore
	validate *validator.Validate
}

func NewMessageService(messages MessageStore, validate *validator.Validate) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	return &MessageService{messages: messages, validate: validate}
}

type SendMessageInput struct {
	Recipient uint   `json:"recipient" validate:"required"`
	Property  uint   `json:"property" validate:"required"`
	Name      string `json:"name" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Body      string `json:"body" validate:"required,min=1"`
}

// SendResult carries either the success flag or a user-visible soft
// error. Exactly one of the two fields is set.
type SendResult struct {
	Submitted bool   `json:"submitted,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ReadResult struct {
	Read bool `json:"read"`
}

// Send persists a message from the acting user. Messaging yourself is a
// soft error, not a failure; field violations surface as
// validator.ValidationErrors before anything is written.
func (s *MessageService) Send(actingUserID uint, input SendMessageInput) (*SendResult, error) {
	if actingUserID == 0 {
		return nil, ErrUnauthenticated
	}

	if input.Recipient == actingUserID {
		return &SendResult{Error: "You can not send a message to yourself"}, nil
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	message := models.Message{
		SenderID:    actingUserID,
		RecipientID: input.Recipient,
		PropertyID:  input.Property,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Body:        input.Body,
	}

	if err := s.messages.Create(&message); err != nil {
		return nil, err
	}

	return &SendResult{Submitted: true}, nil
}

// Inbox returns every message addressed to the acting user, unread ones
// first, each partition newest first. Unread-first is a UX contract the
// storage layer does not know about, hence the two-partition fetch and
// explicit concatenation here.
func (s *MessageService) Inbox(actingUserID uint) ([]models.MessageView, error) {
	if actingUserID == 0 {
		return nil, ErrUnauthenticated
	}

	unread, err := s.messages.InboxPartition(actingUserID, false)
	if err != nil {
		return nil, err
	}
	read, err := s.messages.InboxPartition(actingUserID, true)
	if err != nil {
		return nil, err
	}

	views := make([]models.MessageView, 0, len(unread)+len(read))
	for i := range unread {
		views = append(views, models.NewMessageView(&unread[i]))
	}
	for i := range read {
		views = append(views, models.NewMessageView(&read[i]))
	}
	return views, nil
}

// MarkRead flips the read flag of one of the acting user's messages and
// returns the new state. Only the recipient may touch it.
func (s *MessageService) MarkRead(actingUserID, messageID uint) (*ReadResult, error) {
	if actingUserID == 0 {
		return nil, ErrUnauthenticated
	}

	message, err := s.messages.MessageByID(messageID)
	if err != nil {
		return nil, err
	}
	if message.RecipientID != actingUserID {
		return nil, ErrUnauthorized
	}

	if err := s.messages.SetRead(message.ID, !message.Read); err != nil {
		return nil, err
	}
	return &ReadResult{Read: !message.Read}, nil
}

// UnreadCount backs the navbar badge.
func (s *MessageService) UnreadCount(actingUserID uint) (int64, error) {
	if actingUserID == 0 {
		return 0, ErrUnauthenticated
	}
	return s.messages.CountUnread(actingUserID)
}
