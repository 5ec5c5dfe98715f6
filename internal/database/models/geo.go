package models

import "math"

// MetersPerMile is the fixed miles-to-meters conversion used by radius filters.
// Kept exact for compatibility with stored saved searches.
const MetersPerMile = 1609.34

// earthRadiusMeters is the mean Earth radius used for great-circle distance.
const earthRadiusMeters = 6371000.0

// ZipCode maps a US postal code to a geographic point. Read-only reference data.
type ZipCode struct {
	BaseModel
	Zip       string  `json:"zip_code" gorm:"column:zip_code;uniqueIndex;not null;size:16" validate:"required,max=16"`
	Latitude  float64 `json:"latitude" gorm:"not null"`
	Longitude float64 `json:"longitude" gorm:"not null"`
}

// TableName returns the table name for ZipCode
func (ZipCode) TableName() string {
	return "zip_codes"
}

// DistanceMeters returns the great-circle distance between two points.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlng/2)*math.Sin(dlng/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
