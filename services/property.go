package services

import (
	"log"

	"property-pulse-server/models"
)

// PropertyService handles owner-gated property mutations and listing
// search.
type PropertyService struct {
	properties PropertyStore
	images     ImageStore
	pages      PageCache
}

func NewPropertyService(properties PropertyStore, images ImageStore, pages PageCache) *PropertyService {
	return &PropertyService{properties: properties, images: images, pages: pages}
}

type SearchInput struct {
	Location     string
	PropertyType string
}

// Delete removes the acting user's property. Checks run in order:
// session, existence, ownership. Every stored image is deleted from
// object storage first; an individual image failure is logged and does
// not block the record delete.
func (s *PropertyService) Delete(actingUserID, propertyID uint) error {
	if actingUserID == 0 {
		return ErrUnauthenticated
	}

	property, err := s.properties.PropertyByID(propertyID)
	if err != nil {
		return err
	}

	if err := AssertPropertyOwner(actingUserID, property); err != nil {
		return err
	}

	for _, imageURL := range property.ImageURLs() {
		if err := s.images.DeleteImage(imageURL); err != nil {
			log.Printf("property %d: image delete failed for %s: %v", property.ID, imageURL, err)
		}
	}

	if err := s.properties.Delete(property); err != nil {
		return err
	}

	s.pages.Invalidate("/", "layout")

	return nil
}

// Search matches listings whose name, description or address contains
// the location text, optionally narrowed by property type. "All" means
// no type filter. Open to unauthenticated callers.
func (s *PropertyService) Search(input SearchInput) ([]models.Property, error) {
	if input.PropertyType == "All" {
		input.PropertyType = ""
	}
	properties, err := s.properties.Search(input)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return properties, nil
}
