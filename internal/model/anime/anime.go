// Package anime holds the Anime entity and its request payloads.
package anime

// Anime is a single catalogue entry. ID is assigned by the database.
type Anime struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
