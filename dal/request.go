package dal

import (
	"context"

	"gamegroove/models"
)

const requestComponent = "RequestGateway"

var (
	createRequest   = operation{"CREATE_REQUEST", []string{"RequestText", "Username", "Date"}}
	viewAllRequests = operation{"VIEW_ALL_REQUESTS", nil}
	viewRequestByID = operation{"VIEW_REQUEST_BY_ID", []string{"RequestID"}}
	deleteRequest   = operation{"DELETE_REQUEST", []string{"RequestID"}}
)

// RequestGateway runs the stored procedures for the Requests table. There is
// no update path - a request is created, read and eventually deleted.
type RequestGateway struct {
	store *Store
}

func NewRequestGateway(store *Store) *RequestGateway {
	return &RequestGateway{store: store}
}

func (g *RequestGateway) Create(ctx context.Context, request models.Request) error {
	_, err := g.store.exec(ctx, requestComponent, createRequest, map[string]interface{}{
		"RequestText": request.RequestText,
		"Username":    request.Username,
		"Date":        request.Date,
	})
	return err
}

func (g *RequestGateway) All(ctx context.Context) ([]models.Request, error) {
	rows, err := g.store.queryRows(ctx, requestComponent, viewAllRequests, nil)
	if err != nil {
		return nil, err
	}
	requests := make([]models.Request, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, mapRequest(row))
	}
	return requests, nil
}

// ByID returns one request; a missing ID yields a zero-value Request.
func (g *RequestGateway) ByID(ctx context.Context, requestID int) (models.Request, error) {
	row, err := g.store.queryRow(ctx, requestComponent, viewRequestByID, map[string]interface{}{
		"RequestID": requestID,
	})
	if err != nil {
		return models.Request{}, err
	}
	return mapRequest(row), nil
}

func (g *RequestGateway) Delete(ctx context.Context, requestID int) error {
	_, err := g.store.exec(ctx, requestComponent, deleteRequest, map[string]interface{}{
		"RequestID": requestID,
	})
	return err
}
