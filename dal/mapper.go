package dal

import (
	"strconv"
	"time"

	"gamegroove/models"
)

// The field readers below filter rows while reading from the database: a
// NULL cell or an absent column always maps to the zero value, never to an
// error. This holds for numeric foreign keys too - a NULL GameID becomes 0.

func intField(row Row, col string) int {
	switch v := row[col].(type) {
	case int64:
		return int(v)
	case int32:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case []byte:
		n, _ := strconv.Atoi(string(v))
		return n
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

func stringField(row Row, col string) string {
	switch v := row[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format("2006-01-02")
	default:
		return ""
	}
}

func mapUser(row Row) models.User {
	return models.User{
		UserID:    intField(row, "UserID"),
		FirstName: stringField(row, "FirstName"),
		LastName:  stringField(row, "LastName"),
		Username:  stringField(row, "Username"),
		Password:  stringField(row, "Password"),
		Email:     stringField(row, "Email"),
		RoleID:    intField(row, "RoleID"),
	}
}

func mapGame(row Row) models.Game {
	return models.Game{
		GameID:      intField(row, "GameID"),
		Title:       stringField(row, "Title"),
		ReleaseDate: stringField(row, "ReleaseDate"),
		Developer:   stringField(row, "Developer"),
		Platform:    stringField(row, "Platform"),
	}
}

func mapReview(row Row) models.Review {
	return models.Review{
		ReviewID:   intField(row, "ReviewID"),
		ReviewText: stringField(row, "ReviewText"),
		DatePosted: stringField(row, "DatePosted"),
		Category:   stringField(row, "Category"),
		UserID:     intField(row, "UserID"),
		GameID:     intField(row, "GameID"),
	}
}

func mapRequest(row Row) models.Request {
	return models.Request{
		RequestID:   intField(row, "RequestID"),
		RequestText: stringField(row, "RequestText"),
		Username:    stringField(row, "Username"),
		Date:        stringField(row, "Date"),
	}
}

func mapRole(row Row) models.Role {
	return models.Role{
		RoleID:   intField(row, "RoleID"),
		RoleName: stringField(row, "RoleName"),
	}
}

// mapTopCategory reads a CALCULATE_TOP_CATEGORY result, which carries only
// the Category column; every other review field stays zero.
func mapTopCategory(row Row) models.Review {
	return models.Review{Category: stringField(row, "Category")}
}
