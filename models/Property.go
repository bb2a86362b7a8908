package models

import (
	"encoding/json"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	OwnerID      uint           `json:"ownerID"`
	Name         string         `json:"name"`
	PropertyType string         `json:"type"`
	Description  string         `json:"description"`
	Street       string         `json:"-"`
	City         string         `json:"-"`
	State        string         `json:"-"`
	Zipcode      string         `json:"-"`
	Beds         int            `json:"beds"`
	Baths        int            `json:"baths"`
	Images       datatypes.JSON `json:"images"` // JSON array of URLs
	Owner        User           `json:"owner" gorm:"foreignKey:OwnerID;references:ID"`
}

type PropertyLocation struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

// ImageURLs decodes the Images column; a property without images yields
// an empty slice.
func (p *Property) ImageURLs() []string {
	if p.Images == nil {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal(p.Images, &urls); err != nil {
		return []string{}
	}
	return urls
}

// Custom JSON marshaling to emit string IDs, the materialized image list
// and the nested location object expected by the rendering layer
func (p *Property) MarshalJSON() ([]byte, error) {
	type Alias Property
	aux := &struct {
		ID       string           `json:"id"`
		OwnerID  string           `json:"ownerID"`
		Images   []string         `json:"images"`
		Location PropertyLocation `json:"location"`
		Owner    *User            `json:"owner,omitempty"`
		*Alias
	}{
		ID:      strconv.FormatUint(uint64(p.ID), 10),
		OwnerID: strconv.FormatUint(uint64(p.OwnerID), 10),
		Images:  p.ImageURLs(),
		Location: PropertyLocation{
			Street:  p.Street,
			City:    p.City,
			State:   p.State,
			Zipcode: p.Zipcode,
		},
		Owner: nil,
		Alias: (*Alias)(p),
	}

	// Only include the owner when it was actually loaded
	if p.Owner.ID > 0 {
		ownerCopy := p.Owner
		aux.Owner = &ownerCopy
	}

	return json.Marshal(aux)
}
