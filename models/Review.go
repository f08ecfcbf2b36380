package models

// Review mirrors one row of the Reviews table. UserID and GameID are plain
// foreign keys; the store does not enforce that they resolve, and a NULL key
// comes back as 0.
type Review struct {
	ReviewID   int    `json:"reviewId"`
	ReviewText string `json:"reviewText"`
	DatePosted string `json:"datePosted"`
	Category   string `json:"category"`
	UserID     int    `json:"userId"`
	GameID     int    `json:"gameId"`
}

// ReviewDetails is the presentation shape for review listings: the base
// record plus the game's title and the author's username.
type ReviewDetails struct {
	Review
	GameTitle string `json:"gameTitle"`
	Username  string `json:"username"`
}

// ReviewInput - used to validate new reviews
type ReviewInput struct {
	ReviewText string `json:"reviewText" validate:"required,max=1000"`
	Category   string `json:"category" validate:"required,min=3,max=30"`
	GameID     int    `json:"gameId" validate:"required,gte=1"`
}

// UpdateReviewInput - used to validate review edits. UPDATE_REVIEW does not
// touch UserID or GameID.
type UpdateReviewInput struct {
	ReviewText string `json:"reviewText" validate:"required,max=1000"`
	Category   string `json:"category" validate:"required,min=3,max=30"`
}
