package models

// DefaultLocationName is used for posts without a named location.
const DefaultLocationName = "Planet Earth"

// Location is a named point. The zero-information location is
// DefaultLocationName at (0, 0).
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// NewLocation normalizes a location payload. Both a nil payload and an empty
// name fall back to DefaultLocationName.
func NewLocation(p *LocationPayload) Location {
	loc := Location{Name: DefaultLocationName}
	if p == nil {
		return loc
	}
	if name := str(p.Name); name != "" {
		loc.Name = name
	}
	if p.Latitude != nil {
		loc.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		loc.Longitude = *p.Longitude
	}
	return loc
}

func (l Location) DisplayName() string {
	return l.Name
}
