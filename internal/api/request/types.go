package request

// CreatePlayerRequest is the request body for adding a player
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// MatchRequest is the request body for adding or updating a match.
// Count fields are deliberately untyped: the permissive parse-or-zero
// policy accepts numbers, numeric strings, or nothing at all.
type MatchRequest struct {
	Date     string `json:"date"`
	Points   any    `json:"points"`
	Rebounds any    `json:"rebounds"`
	Assists  any    `json:"assists"`
}

// LoadDefaultsRequest is the request body for loading the default roster
type LoadDefaultsRequest struct {
	// Mode is "replace" or "merge"
	Mode string `json:"mode"`
}
