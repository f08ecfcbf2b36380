// Package bll holds the client-side aggregations over a review collection.
// The store-side equivalents live on dal.ReviewGateway; both produce the
// same shape of result.
package bll

import "gamegroove/models"

// TopGame returns the ID of the game with the most reviews. Ties go to the
// group that reached the winning count first in slice order. An empty slice
// yields 0 - nothing to display, not an error.
func TopGame(reviews []models.Review) int {
	counts := make(map[int]int, len(reviews))
	topID, best := 0, 0
	for _, r := range reviews {
		counts[r.GameID]++
		if counts[r.GameID] > best {
			best = counts[r.GameID]
			topID = r.GameID
		}
	}
	return topID
}

// TopCategory returns the most frequent category across the given reviews,
// with the same tie-break and empty-input behavior as TopGame.
func TopCategory(reviews []models.Review) string {
	counts := make(map[string]int, len(reviews))
	top, best := "", 0
	for _, r := range reviews {
		counts[r.Category]++
		if counts[r.Category] > best {
			best = counts[r.Category]
			top = r.Category
		}
	}
	return top
}

// TopCategoryForUser restricts TopCategory to one author's reviews.
func TopCategoryForUser(reviews []models.Review, userID int) string {
	var own []models.Review
	for _, r := range reviews {
		if r.UserID == userID {
			own = append(own, r)
		}
	}
	return TopCategory(own)
}
