package models

// Game mirrors one row of the Games table.
type Game struct {
	GameID      int    `json:"gameId"`
	Title       string `json:"title"`
	ReleaseDate string `json:"releaseDate"`
	Developer   string `json:"developer"`
	Platform    string `json:"platform"`
}

// GameInput - used to validate game create/update forms
type GameInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	ReleaseDate string `json:"releaseDate" validate:"required,min=4,max=20"`
	Developer   string `json:"developer" validate:"required,max=50"`
	Platform    string `json:"platform" validate:"required,max=50"`
}
