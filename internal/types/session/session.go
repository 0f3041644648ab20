package session

import "time"

type Session struct {
	ID        string    `db:"id"         json:"id"         firestore:"id"`
	GameID    string    `db:"game_id"    json:"game_id"    firestore:"game_id"`
	StartTime time.Time `db:"start_time" json:"start_time" firestore:"start_time"`
	EndTime   time.Time `db:"end_time"   json:"end_time"   firestore:"end_time"`
	FriendIDs []string  `db:"friend_ids" json:"friend_ids" firestore:"friend_ids"`
}

// WithGame is a Session with its game name resolved for display and
// aggregation. Duration is the pre-rendered HH:MM string the session
// list shows.
type WithGame struct {
	Session
	GameName string `json:"game_name"`
	Duration string `json:"duration,omitempty"`
}

type CreateSessionRequest struct {
	GameID    string    `json:"game_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	FriendIDs []string  `json:"friend_ids"`
}
