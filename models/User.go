package models

import (
	"encoding/json"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string         `json:"email" gorm:"uniqueIndex"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:30"`
	AvatarURL string         `json:"avatarURL"`
	Bookmarks datatypes.JSON `json:"bookmarks"` // JSON array of property IDs
}

// BookmarkIDs decodes the Bookmarks column into a plain ID slice.
// A user that has never bookmarked anything has a NULL column; that
// decodes to an empty slice, not an error.
func (u *User) BookmarkIDs() ([]uint, error) {
	if u.Bookmarks == nil {
		return []uint{}, nil
	}
	var ids []uint
	if err := json.Unmarshal(u.Bookmarks, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

// Custom JSON marshaling so the ID and bookmark IDs cross the transport
// boundary as strings instead of driver-typed values
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		ID        string   `json:"id"`
		Bookmarks []string `json:"bookmarks"`
		*Alias
	}{
		ID:        strconv.FormatUint(uint64(u.ID), 10),
		Bookmarks: []string{},
		Alias:     (*Alias)(u),
	}

	if u.Bookmarks != nil {
		var ids []uint
		if err := json.Unmarshal(u.Bookmarks, &ids); err == nil {
			for _, id := range ids {
				aux.Bookmarks = append(aux.Bookmarks, strconv.FormatUint(uint64(id), 10))
			}
		}
	}

	return json.Marshal(aux)
}
