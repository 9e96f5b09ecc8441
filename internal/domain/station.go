package domain

import "time"

// Station is a named transit stop used as the anchor for place filtering.
// Name is globally unique. PrefectureID is nullable: legacy rows predate the
// regional hierarchy and unresolvable locations stay unlinked.
type Station struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Location     string    `db:"location" json:"location"`
	PrefectureID *int      `db:"prefecture_id" json:"prefecture_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// StationDetail is the admin listing row with the joined hierarchy names.
type StationDetail struct {
	Station
	PrefectureName *string `db:"prefecture_name" json:"prefecture_name"`
	RegionName     *string `db:"region_name" json:"region_name"`
}

// StationUsage is the per-table reference count consulted before a delete.
type StationUsage struct {
	Cafes      int `json:"cafes"`
	Bookstores int `json:"bookstores"`
	Bars       int `json:"bars"`
}

func (u StationUsage) Total() int {
	return u.Cafes + u.Bookstores + u.Bars
}
