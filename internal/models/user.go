package models

// UserDB represents a user record in the database
type UserDB struct {
	ID       int64  `json:"id" db:"id"`             // Primary key
	Username string `json:"username" db:"username"` // Unique username
	Password string `json:"-" db:"password"`        // Bcrypt digest
}

// UserResponse is the public JSON shape of a user with its stats nested.
// swagger:model UserResponse
type UserResponse struct {
	// User ID
	// example: 1
	ID int64 `json:"id"`

	// Username
	// example: alice
	Username string `json:"username"`

	// Stats owned by the user
	Stats []StatsResponse `json:"stats"`
}

// NewUserResponse maps a stored user and the stats it owns to its public shape.
// Stats belonging to other users are skipped.
func NewUserResponse(user UserDB, stats []StatsDB) UserResponse {
	owned := make([]StatsDB, 0, len(stats))
	for _, s := range stats {
		if s.UserID == user.ID {
			owned = append(owned, s)
		}
	}

	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Stats:    NewStatsResponses(owned),
	}
}

// NewUserResponses maps users to their public shape, distributing stats
// to their owners. Order of users is preserved.
func NewUserResponses(users []UserDB, stats []StatsDB) []UserResponse {
	byUser := make(map[int64][]StatsDB, len(users))
	for _, s := range stats {
		byUser[s.UserID] = append(byUser[s.UserID], s)
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Stats:    NewStatsResponses(byUser[u.ID]),
		})
	}
	return resp
}
