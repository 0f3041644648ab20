package game

type Game struct {
	ID               string   `db:"id"                json:"id"                firestore:"id"`
	Name             string   `db:"name"              json:"name"              firestore:"name"`
	PlatformID       string   `db:"platform_id"       json:"platform_id"       firestore:"platform_id"`
	ReleaseDate      string   `db:"release_date"      json:"release_date,omitempty"      firestore:"release_date,omitempty"`
	PurchaseDate     string   `db:"purchase_date"     json:"purchase_date,omitempty"     firestore:"purchase_date,omitempty"`
	MetacriticRating *float64 `db:"metacritic_rating" json:"metacritic_rating,omitempty" firestore:"metacritic_rating,omitempty"`
	Cost             float64  `db:"cost"              json:"cost"              firestore:"cost"`
	HistoricHours    float64  `db:"historic_hours"    json:"historic_hours"    firestore:"historic_hours"`
	IsFavourite      bool     `db:"is_favourite"      json:"is_favourite"      firestore:"is_favourite"`
}

// WithPlatform is a Game with its platform name resolved for display.
type WithPlatform struct {
	Game
	PlatformName string `json:"platform_name"`
}

type CreateGameRequest struct {
	Name             string   `json:"name"`
	PlatformID       string   `json:"platform_id"`
	ReleaseDate      string   `json:"release_date,omitempty"`
	PurchaseDate     string   `json:"purchase_date,omitempty"`
	MetacriticRating *float64 `json:"metacritic_rating,omitempty"`
	Cost             float64  `json:"cost,omitempty"`
	HistoricHours    float64  `json:"historic_hours,omitempty"`
}

// UpdateGameRequest carries a partial edit; nil fields are left untouched.
type UpdateGameRequest struct {
	Name             *string  `json:"name,omitempty"`
	PlatformID       *string  `json:"platform_id,omitempty"`
	ReleaseDate      *string  `json:"release_date,omitempty"`
	PurchaseDate     *string  `json:"purchase_date,omitempty"`
	MetacriticRating *float64 `json:"metacritic_rating,omitempty"`
	Cost             *float64 `json:"cost,omitempty"`
	HistoricHours    *float64 `json:"historic_hours,omitempty"`
}
