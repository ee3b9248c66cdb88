package entity

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Location is the lat/lng pair used for couriers, orders and tracking.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l Location) AsJSON() datatypes.JSON {
	b, _ := json.Marshal(l)
	return datatypes.JSON(b)
}

// LocationFromJSON decodes a stored location column. ok is false for a
// NULL or malformed column.
func LocationFromJSON(col datatypes.JSON) (Location, bool) {
	if len(col) == 0 {
		return Location{}, false
	}
	var l Location
	if err := json.Unmarshal(col, &l); err != nil {
		return Location{}, false
	}
	return l, true
}
