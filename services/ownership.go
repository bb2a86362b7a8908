package services

import "property-pulse-server/models"

// AssertPropertyOwner gates owner-only mutations. Absence is checked
// before ownership so both cases surface distinctly.
func AssertPropertyOwner(actingUserID uint, property *models.Property) error {
	if property == nil {
		return ErrNotFound
	}
	if property.OwnerID != actingUserID {
		return ErrUnauthorized
	}
	return nil
}
