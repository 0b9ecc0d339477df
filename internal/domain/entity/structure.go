package entity

import "time"

// Structure represents a physical unit of the temple complex where stock is
// kept or consumed (Main Temple, a shrine, the kitchen, a store room).
// Transactions reference structures by name/id as soft linkage only.
type Structure struct {
	ID        string
	TempleID  string
	Name      string
	Kind      string // shrine, kitchen, store, hall...
	CreatedAt time.Time
	UpdatedAt time.Time
}
