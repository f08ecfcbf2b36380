package dal

import (
	"context"

	"gamegroove/models"
)

const gameComponent = "GameGateway"

var (
	createGame   = operation{"CREATE_GAME", []string{"Title", "ReleaseDate", "Developer", "Platform"}}
	viewAllGames = operation{"VIEW_ALL_GAMES", nil}
	viewGameByID = operation{"VIEW_GAME_BY_ID", []string{"GameID"}}
	updateGame   = operation{"UPDATE_GAME", []string{"GameID", "Title", "ReleaseDate", "Developer", "Platform"}}
	deleteGame   = operation{"DELETE_GAME", []string{"GameID"}}
)

// GameGateway runs the stored procedures for the Games table.
type GameGateway struct {
	store *Store
}

func NewGameGateway(store *Store) *GameGateway {
	return &GameGateway{store: store}
}

func (g *GameGateway) Create(ctx context.Context, game models.Game) error {
	_, err := g.store.exec(ctx, gameComponent, createGame, map[string]interface{}{
		"Title":       game.Title,
		"ReleaseDate": game.ReleaseDate,
		"Developer":   game.Developer,
		"Platform":    game.Platform,
	})
	return err
}

func (g *GameGateway) All(ctx context.Context) ([]models.Game, error) {
	rows, err := g.store.queryRows(ctx, gameComponent, viewAllGames, nil)
	if err != nil {
		return nil, err
	}
	games := make([]models.Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, mapGame(row))
	}
	return games, nil
}

// ByID returns one game; a missing ID yields a zero-value Game.
func (g *GameGateway) ByID(ctx context.Context, gameID int) (models.Game, error) {
	row, err := g.store.queryRow(ctx, gameComponent, viewGameByID, map[string]interface{}{
		"GameID": gameID,
	})
	if err != nil {
		return models.Game{}, err
	}
	return mapGame(row), nil
}

func (g *GameGateway) Update(ctx context.Context, game models.Game) error {
	_, err := g.store.exec(ctx, gameComponent, updateGame, map[string]interface{}{
		"GameID":      game.GameID,
		"Title":       game.Title,
		"ReleaseDate": game.ReleaseDate,
		"Developer":   game.Developer,
		"Platform":    game.Platform,
	})
	return err
}

func (g *GameGateway) Delete(ctx context.Context, gameID int) error {
	_, err := g.store.exec(ctx, gameComponent, deleteGame, map[string]interface{}{
		"GameID": gameID,
	})
	return err
}
