package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SavedCart is the durable mirror of a user's session cart, keyed by
// stringified tiffin id. Merged additively into the session cart on login.
type SavedCart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Data datatypes.JSON `json:"data"`
}
