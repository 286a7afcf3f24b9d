package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserResponse(t *testing.T) {
	tests := []struct {
		name     string
		user     UserDB
		stats    []StatsDB
		expected UserResponse
	}{
		{
			name:     "no stats",
			user:     UserDB{ID: 1, Username: "alice", Password: "hash"},
			expected: UserResponse{ID: 1, Username: "alice", Stats: []StatsResponse{}},
		},
		{
			name: "owned stats only",
			user: UserDB{ID: 1, Username: "alice"},
			stats: []StatsDB{
				{StatsID: 1, Wins: 3, Losses: 1, UserID: 1},
				{StatsID: 2, Wins: 9, Losses: 9, UserID: 2},
			},
			expected: UserResponse{
				ID:       1,
				Username: "alice",
				Stats:    []StatsResponse{{StatsID: 1, Wins: 3, Losses: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewUserResponse(tt.user, tt.stats))
		})
	}
}

func TestNewUserResponses(t *testing.T) {
	users := []UserDB{{ID: 2, Username: "bob"}, {ID: 1, Username: "alice"}}
	stats := []StatsDB{
		{StatsID: 1, Wins: 3, Losses: 1, UserID: 1},
		{StatsID: 2, Wins: 0, Losses: 4, UserID: 2},
		{StatsID: 3, Wins: 5, Losses: 2, UserID: 1},
	}

	resp := NewUserResponses(users, stats)

	assert.Len(t, resp, 2)
	assert.Equal(t, "bob", resp[0].Username)
	assert.Equal(t, []StatsResponse{{StatsID: 2, Wins: 0, Losses: 4}}, resp[0].Stats)
	assert.Equal(t, "alice", resp[1].Username)
	assert.Equal(t, []StatsResponse{
		{StatsID: 1, Wins: 3, Losses: 1},
		{StatsID: 3, Wins: 5, Losses: 2},
	}, resp[1].Stats)
}

func TestUserResponse_JSON(t *testing.T) {
	data, err := json.Marshal(NewUserResponse(UserDB{ID: 1, Username: "alice", Password: "hash"}, nil))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"alice","stats":[]}`, string(data))

	// The digest must never leak through the row type either
	data, err = json.Marshal(UserDB{ID: 1, Username: "alice", Password: "hash"})
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
}

func TestStatsPatch_IsEmpty(t *testing.T) {
	wins := 7
	assert.True(t, StatsPatch{}.IsEmpty())
	assert.False(t, StatsPatch{Wins: &wins}.IsEmpty())
}
