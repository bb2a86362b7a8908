package storage

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"property-pulse-server/models"
	"property-pulse-server/services"
)

// GORM-backed implementations of the services store interfaces.

type Users struct {
	DB *gorm.DB
}

func (s *Users) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) UpdateBookmarks(id uint, bookmarks datatypes.JSON) error {
	return s.DB.Model(&models.User{}).
		Where("id = ?", id).
		Update("bookmarks", bookmarks).Error
}

type Properties struct {
	DB *gorm.DB
}

func (s *Properties) PropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := s.DB.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (s *Properties) PropertiesByIDs(ids []uint) ([]models.Property, error) {
	var properties []models.Property
	if err := s.DB.Where("id IN ?", ids).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *Properties) Delete(property *models.Property) error {
	return s.DB.Delete(property).Error
}

func (s *Properties) Search(input services.SearchInput) ([]models.Property, error) {
	pattern := "%" + input.Location + "%"
	query := s.DB.Where(
		s.DB.Where("name ILIKE ?", pattern).
			Or("description ILIKE ?", pattern).
			Or("street ILIKE ?", pattern).
			Or("city ILIKE ?", pattern).
			Or("state ILIKE ?", pattern).
			Or("zipcode ILIKE ?", pattern),
	)
	if input.PropertyType != "" {
		query = query.Where("property_type ILIKE ?", "%"+input.PropertyType+"%")
	}

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

type Messages struct {
	DB *gorm.DB
}

func (s *Messages) Create(message *models.Message) error {
	return s.DB.Create(message).Error
}

func (s *Messages) InboxPartition(recipientID uint, read bool) ([]models.Message, error) {
	var messages []models.Message
	err := s.DB.
		Where("recipient_id = ? AND read = ?", recipientID, read).
		Order("created_at DESC").
		Preload("Sender", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username")
		}).
		Preload("Property", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Messages) MessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := s.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (s *Messages) SetRead(id uint, read bool) error {
	return s.DB.Model(&models.Message{}).
		Where("id = ?", id).
		Update("read", read).Error
}

func (s *Messages) CountUnread(recipientID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Message{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}
