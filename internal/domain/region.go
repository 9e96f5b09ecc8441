package domain

// Region is one of Japan's eight regional divisions. Static reference data,
// never mutated after seeding.
type Region struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Code string `db:"code" json:"code"`
}

// Prefecture belongs to exactly one region. 47 rows, seeded once.
type Prefecture struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Code     string `db:"code" json:"code"`
	RegionID int    `db:"region_id" json:"region_id"`
}
