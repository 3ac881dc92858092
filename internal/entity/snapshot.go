package entity

// Snapshot is the persisted form of a session, enough to resume play.
type Snapshot struct {
	SessionID    string        `json:"session_id,omitempty"`
	Board        BoardSnapshot `json:"board"`
	Players      []PlayerInfo  `json:"players"`
	CurrentIndex int           `json:"current_index"`
}

type BoardSnapshot struct {
	Grid [][]string `json:"grid"`
}
