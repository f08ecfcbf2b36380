package models

// Request mirrors one row of the Requests table. Username is a snapshot of
// the submitter's name at the time of writing, not a foreign key.
type Request struct {
	RequestID   int    `json:"requestId"`
	RequestText string `json:"requestText"`
	Username    string `json:"username"`
	Date        string `json:"date"`
}

// RequestInput - used to validate new game requests
type RequestInput struct {
	RequestText string `json:"requestText" validate:"required,min=10,max=500"`
}
