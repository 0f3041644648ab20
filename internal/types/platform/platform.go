package platform

type Platform struct {
	ID      string `db:"id"       json:"id"       firestore:"id"`
	Name    string `db:"name"     json:"name"     firestore:"name"`
	IsRetro bool   `db:"is_retro" json:"is_retro" firestore:"is_retro"`
}

type CreatePlatformRequest struct {
	Name    string `json:"name"`
	IsRetro bool   `json:"is_retro"`
}
