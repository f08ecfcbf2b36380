package dal

import (
	"context"

	"gamegroove/models"
)

const reviewComponent = "ReviewGateway"

var (
	createReview           = operation{"CREATE_REVIEW", []string{"ReviewText", "DatePosted", "Category", "UserID", "GameID"}}
	viewAllReviews         = operation{"VIEW_ALL_REVIEWS", nil}
	viewReviewByID         = operation{"VIEW_REVIEW_BY_ID", []string{"ReviewID"}}
	updateReview           = operation{"UPDATE_REVIEW", []string{"ReviewID", "ReviewText", "DatePosted", "Category"}}
	deleteReview           = operation{"DELETE_REVIEW", []string{"ReviewID"}}
	calcTopCategory        = operation{"CALCULATE_TOP_CATEGORY", nil}
	calcTopCategoryForUser = operation{"CALCULATE_TOP_CATEGORY_FOR_USER", []string{"UserID"}}
)

// ReviewGateway runs the stored procedures for the Reviews table, including
// the store-side aggregation queries.
type ReviewGateway struct {
	store *Store
}

func NewReviewGateway(store *Store) *ReviewGateway {
	return &ReviewGateway{store: store}
}

func (g *ReviewGateway) Create(ctx context.Context, review models.Review) error {
	_, err := g.store.exec(ctx, reviewComponent, createReview, map[string]interface{}{
		"ReviewText": review.ReviewText,
		"DatePosted": review.DatePosted,
		"Category":   review.Category,
		"UserID":     review.UserID,
		"GameID":     review.GameID,
	})
	return err
}

func (g *ReviewGateway) All(ctx context.Context) ([]models.Review, error) {
	rows, err := g.store.queryRows(ctx, reviewComponent, viewAllReviews, nil)
	if err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, mapReview(row))
	}
	return reviews, nil
}

// ByID returns one review; a missing ID yields a zero-value Review.
func (g *ReviewGateway) ByID(ctx context.Context, reviewID int) (models.Review, error) {
	row, err := g.store.queryRow(ctx, reviewComponent, viewReviewByID, map[string]interface{}{
		"ReviewID": reviewID,
	})
	if err != nil {
		return models.Review{}, err
	}
	return mapReview(row), nil
}

// Update rewrites the review's text, date and category. Ownership and the
// reviewed game never change after creation.
func (g *ReviewGateway) Update(ctx context.Context, review models.Review) error {
	_, err := g.store.exec(ctx, reviewComponent, updateReview, map[string]interface{}{
		"ReviewID":   review.ReviewID,
		"ReviewText": review.ReviewText,
		"DatePosted": review.DatePosted,
		"Category":   review.Category,
	})
	return err
}

func (g *ReviewGateway) Delete(ctx context.Context, reviewID int) error {
	_, err := g.store.exec(ctx, reviewComponent, deleteReview, map[string]interface{}{
		"ReviewID": reviewID,
	})
	return err
}

// TopCategory asks the store for the most frequent review category. With no
// reviews at all the result is a zero-value Review - callers treat that as
// nothing to display.
func (g *ReviewGateway) TopCategory(ctx context.Context) (models.Review, error) {
	row, err := g.store.queryRow(ctx, reviewComponent, calcTopCategory, nil)
	if err != nil {
		return models.Review{}, err
	}
	return mapTopCategory(row), nil
}

// TopCategoryForUser is TopCategory restricted to one author's reviews.
func (g *ReviewGateway) TopCategoryForUser(ctx context.Context, userID int) (models.Review, error) {
	row, err := g.store.queryRow(ctx, reviewComponent, calcTopCategoryForUser, map[string]interface{}{
		"UserID": userID,
	})
	if err != nil {
		return models.Review{}, err
	}
	return mapTopCategory(row), nil
}
