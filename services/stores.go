package services

import (
	"gorm.io/datatypes"

	"property-pulse-server/models"
)

// Collaborator interfaces consumed by the services. The storage package
// provides the real implementations; tests use in-memory fakes.
// Lookup methods return ErrNotFound when the record is absent.

type UserStore interface {
	UserByID(id uint) (*models.User, error)
	// UpdateBookmarks writes the bookmarks column of a single user row
	// as one atomic field update.
	UpdateBookmarks(id uint, bookmarks datatypes.JSON) error
}

type PropertyStore interface {
	PropertyByID(id uint) (*models.Property, error)
	PropertiesByIDs(ids []uint) ([]models.Property, error)
	Delete(property *models.Property) error
	Search(input SearchInput) ([]models.Property, error)
}

type MessageStore interface {
	Create(message *models.Message) error
	// InboxPartition returns the recipient's messages with the given
	// read state, newest first, with the sender's username and the
	// property's name projected in.
	InboxPartition(recipientID uint, read bool) ([]models.Message, error)
	MessageByID(id uint) (*models.Message, error)
	SetRead(id uint, read bool) error
	CountUnread(recipientID uint) (int64, error)
}

// ImageStore deletes stored listing images. Best-effort: callers log
// failures and move on.
type ImageStore interface {
	DeleteImage(imageURL string) error
}

// PageCache invalidates rendered views so the next read reflects fresh
// state. Fire-and-forget.
type PageCache interface {
	Invalidate(path string, scope string)
}
