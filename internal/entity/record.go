package entity

// GameRecord is the stored form of a game session.
type GameRecord struct {
	ID          string     `json:"id"`
	History     []Snapshot `json:"history"`
	CurrentMove int        `json:"current_move"`
}
