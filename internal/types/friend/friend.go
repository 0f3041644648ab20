package friend

type Friend struct {
	ID   string `db:"id"   json:"id"   firestore:"id"`
	Name string `db:"name" json:"name" firestore:"name"`
}

type CreateFriendRequest struct {
	Name string `json:"name"`
}
