// Package mapping builds presentation records from domain records. Pure
// shape transforms - no lookups, no validation.
package mapping

import "gamegroove/models"

// UserToDetails copies the user verbatim and attaches the denormalized
// display fields for a profile page.
func UserToDetails(user models.User, role models.Role, favoriteCategory string) models.UserDetails {
	return models.UserDetails{
		User:             user,
		RoleName:         role.RoleName,
		FavoriteCategory: favoriteCategory,
	}
}

// ReviewToDetails copies the review verbatim and attaches the reviewed
// game's title and the author's username.
func ReviewToDetails(review models.Review, game models.Game, author models.User) models.ReviewDetails {
	return models.ReviewDetails{
		Review:    review,
		GameTitle: game.Title,
		Username:  author.Username,
	}
}
