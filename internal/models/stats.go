package models

// StatsDB represents a win/loss record in the database
type StatsDB struct {
	StatsID int64 `json:"stats_id" db:"stats_id"` // Primary key
	Wins    int   `json:"wins" db:"wins"`         // Games won
	Losses  int   `json:"losses" db:"losses"`     // Games lost
	UserID  int64 `json:"user_id" db:"user_id"`   // Owning user
}

// StatsPatch carries a partial stats update. Nil fields are left unchanged.
type StatsPatch struct {
	Wins   *int
	Losses *int
	UserID *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p StatsPatch) IsEmpty() bool {
	return p.Wins == nil && p.Losses == nil && p.UserID == nil
}

// StatsResponse is the public JSON shape of a stats record
// swagger:model StatsResponse
type StatsResponse struct {
	// Stats ID
	// example: 1
	StatsID int64 `json:"stats_id"`

	// Games won
	// example: 3
	Wins int `json:"wins"`

	// Games lost
	// example: 1
	Losses int `json:"losses"`
}

func NewStatsResponse(s StatsDB) StatsResponse {
	return StatsResponse{
		StatsID: s.StatsID,
		Wins:    s.Wins,
		Losses:  s.Losses,
	}
}

// NewStatsResponses always returns a non-nil slice so that an empty
// collection encodes as [] rather than null.
func NewStatsResponses(stats []StatsDB) []StatsResponse {
	resp := make([]StatsResponse, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, NewStatsResponse(s))
	}
	return resp
}
