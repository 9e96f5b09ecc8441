package domain

import "time"

// UnknownLocation is stored when a place's station cannot be resolved to a
// municipality.
const UnknownLocation = "unknown"

// PlaceKind selects one of the three structurally identical place tables.
// The value doubles as the table name and the URL path segment; every
// database access goes through Table(), which only accepts whitelisted kinds.
type PlaceKind string

const (
	KindCafe      PlaceKind = "cafes"
	KindBookstore PlaceKind = "bookstores"
	KindBar       PlaceKind = "bars"
)

// PlaceKinds returns all kinds in route/seed order.
func PlaceKinds() []PlaceKind {
	return []PlaceKind{KindCafe, KindBookstore, KindBar}
}

func (k PlaceKind) Valid() bool {
	switch k {
	case KindCafe, KindBookstore, KindBar:
		return true
	}
	return false
}

// Table returns the SQL table name. Panics on unknown kinds so that an
// unvalidated kind can never reach query construction.
func (k PlaceKind) Table() string {
	if !k.Valid() {
		panic("domain: unknown place kind " + string(k))
	}
	return string(k)
}

// Label is the Japanese display name used in delete confirmations.
func (k PlaceKind) Label() string {
	switch k {
	case KindCafe:
		return "喫茶店"
	case KindBookstore:
		return "本屋"
	case KindBar:
		return "バー"
	}
	return string(k)
}

// Place is a cafe, bookstore or bar. Station holds a station name, not an id
// (weak reference kept for compatibility with the historical schema).
// WalkingTime is minutes as a string, validated to be an integer in [1,60] at
// write time but stored unnormalized.
type Place struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Location      string    `db:"location" json:"location"`
	Station       string    `db:"station" json:"station"`
	GoogleMapsURL string    `db:"google_maps_url" json:"google_maps_url"`
	WalkingTime   *string   `db:"walking_time" json:"walking_time"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
