package domain

import "time"

// Profile is owned by the external profile store; the core only reads it.
type Profile struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	Username        string    `json:"username" db:"username"`
	Name            string    `json:"name" db:"name"`
	Age             int       `json:"age" db:"age"`
	Bio             string    `json:"bio" db:"bio"`
	GenderIdentity  string    `json:"gender_identity" db:"gender_identity"`
	Pronouns        string    `json:"pronouns" db:"pronouns"`
	Interests       []string  `json:"interests" db:"interests"`
	LookingFor      string    `json:"looking_for" db:"looking_for"`
	Tribe           *string   `json:"tribe" db:"tribe"`
	Position        *string   `json:"position" db:"position"`
	AvailableNow    bool      `json:"available_now" db:"available_now"`
	Photos          []string  `json:"photos" db:"photos"`
	PrivatePhotos   []string  `json:"private_photos" db:"private_photos"`
	HasPrivateAlbum bool      `json:"has_private_album" db:"has_private_album"`
	Latitude        *float64  `json:"latitude" db:"latitude"`
	Longitude       *float64  `json:"longitude" db:"longitude"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// HasCoordinates reports whether both latitude and longitude are known.
func (p *Profile) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Public returns a copy with the restricted photo set removed.
// HasPrivateAlbum is kept so clients can offer an access request.
func (p *Profile) Public() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.PrivatePhotos = []string{}
	return &cp
}

// DistanceTo returns the great-circle distance in km, or false when either
// side lacks coordinates.
func (p *Profile) DistanceTo(other *Profile) (float64, bool) {
	if !p.HasCoordinates() || !other.HasCoordinates() {
		return 0, false
	}
	return HaversineKm(*p.Latitude, *p.Longitude, *other.Latitude, *other.Longitude), true
}

// CandidateFilter holds the attribute filters of a discovery request.
// Nil fields impose no constraint.
type CandidateFilter struct {
	Position     *string
	Tribe        *string
	LookingFor   *string
	MinAge       *int
	MaxAge       *int
	AvailableNow bool
}

// Matches applies the attribute filters to a single profile.
func (f CandidateFilter) Matches(p *Profile) bool {
	if f.Position != nil && (p.Position == nil || *p.Position != *f.Position) {
		return false
	}
	if f.Tribe != nil && (p.Tribe == nil || *p.Tribe != *f.Tribe) {
		return false
	}
	if f.LookingFor != nil && p.LookingFor != *f.LookingFor {
		return false
	}
	if f.MinAge != nil && p.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && p.Age > *f.MaxAge {
		return false
	}
	if f.AvailableNow && !p.AvailableNow {
		return false
	}
	return true
}
