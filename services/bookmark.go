package services

import (
	"encoding/json"
	"slices"

	"property-pulse-server/models"
)

// BookmarkService toggles and reports the many-to-many relation between
// users and properties stored on the user row.
type BookmarkService struct {
	users      UserStore
	properties PropertyStore
	pages      PageCache
}

func NewBookmarkService(users UserStore, properties PropertyStore, pages PageCache) *BookmarkService {
	return &BookmarkService{users: users, properties: properties, pages: pages}
}

type BookmarkResult struct {
	Message      string `json:"message"`
	IsBookmarked bool   `json:"isBookmarked"`
}

type BookmarkStatus struct {
	IsBookmarked bool `json:"isBookmarked"`
}

// Toggle adds the property to the acting user's bookmarks when absent
// and removes every occurrence when present. The write is a single
// update of the bookmarks column; concurrent toggles race last-write-wins.
func (s *BookmarkService) Toggle(actingUserID, propertyID uint) (*BookmarkResult, error) {
	if actingUserID == 0 {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.UserByID(actingUserID)
	if err != nil {
		return nil, err
	}

	ids, err := user.BookmarkIDs()
	if err != nil {
		return nil, err
	}

	result := &BookmarkResult{}
	if slices.Contains(ids, propertyID) {
		kept := make([]uint, 0, len(ids))
		for _, id := range ids {
			if id != propertyID {
				kept = append(kept, id)
			}
		}
		ids = kept
		result.Message = "Bookmark Removed"
		result.IsBookmarked = false
	} else {
		ids = append(ids, propertyID)
		result.Message = "Bookmark Added"
		result.IsBookmarked = true
	}

	marshalled, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateBookmarks(user.ID, marshalled); err != nil {
		return nil, err
	}

	s.pages.Invalidate("/properties/saved", "page")

	return result, nil
}

// Status reports membership without mutating anything.
func (s *BookmarkService) Status(actingUserID, propertyID uint) (*BookmarkStatus, error) {
	if actingUserID == 0 {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.UserByID(actingUserID)
	if err != nil {
		return nil, err
	}

	ids, err := user.BookmarkIDs()
	if err != nil {
		return nil, err
	}

	return &BookmarkStatus{IsBookmarked: slices.Contains(ids, propertyID)}, nil
}

// Saved loads the acting user's bookmarked properties in bookmark order.
func (s *BookmarkService) Saved(actingUserID uint) ([]models.Property, error) {
	if actingUserID == 0 {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.UserByID(actingUserID)
	if err != nil {
		return nil, err
	}

	ids, err := user.BookmarkIDs()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Property{}, nil
	}

	properties, err := s.properties.PropertiesByIDs(ids)
	if err != nil {
		return nil, err
	}

	// The store returns rows in arbitrary order; re-sequence them to
	// match the bookmark order on the user row.
	byID := make(map[uint]models.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	ordered := make([]models.Property, 0, len(properties))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
