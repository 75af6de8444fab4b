package espn

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func leagueEndpoint(leagueID string, seasonYear int) string {
	return fmt.Sprintf("/games/%s/seasons/%d/segments/0/leagues/%s", gameCode, seasonYear, leagueID)
}

// GetLeague fetches the teams, rosters, members and settings of a league
// in one request.
func (a *API) GetLeague(ctx context.Context, leagueID string, seasonYear int) (*models.LeagueResponse, error) {
	var league models.LeagueResponse
	params := map[string]string{
		"view": "mTeam,mRoster,mSettings,mStatus",
	}

	if err := a.client.Get(ctx, leagueEndpoint(leagueID, seasonYear), params, nil, &league); err != nil {
		return nil, fmt.Errorf("fetching league: %w", err)
	}

	return &league, nil
}

// GetRawSettings returns the league settings object undecoded.
func (a *API) GetRawSettings(ctx context.Context, leagueID string, seasonYear int) (map[string]any, error) {
	var raw models.RawSettingsResponse
	params := map[string]string{
		"view": "mSettings",
	}

	if err := a.client.Get(ctx, leagueEndpoint(leagueID, seasonYear), params, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetching league settings: %w", err)
	}
	if raw.Settings == nil {
		raw.Settings = map[string]any{}
	}

	return raw.Settings, nil
}

// GetFreeAgents lists unowned players sorted by percent owned. A nil slot
// filter returns every position.
func (a *API) GetFreeAgents(ctx context.Context, leagueID string, seasonYear, scoringPeriodID, size int, slotFilter []int) ([]models.PlayerPoolEntry, error) {
	var response models.PlayerCardResponse
	params := map[string]string{
		"view":            "kona_player_info",
		"scoringPeriodId": fmt.Sprintf("%d", scoringPeriodID),
	}

	if slotFilter == nil {
		slotFilter = []int{}
	}
	filters := map[string]interface{}{
		"players": map[string]interface{}{
			"filterStatus": map[string]interface{}{
				"value": []string{"FREEAGENT", "WAIVERS"},
			},
			"filterSlotIds": map[string]interface{}{
				"value": slotFilter,
			},
			"limit": size,
			"sortPercOwned": map[string]interface{}{
				"sortPriority": 1,
				"sortAsc":      false,
			},
		},
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}

	headers := map[string]string{
		"x-fantasy-filter": string(filtersJSON),
	}

	if err := a.client.Get(ctx, leagueEndpoint(leagueID, seasonYear), params, headers, &response); err != nil {
		return nil, fmt.Errorf("fetching free agents: %w", err)
	}

	return response.Players, nil
}

// GetPlayerDirectory fetches the season-wide id and name index.
func (a *API) GetPlayerDirectory(ctx context.Context, seasonYear int) ([]models.DirectoryPlayer, error) {
	var players []models.DirectoryPlayer
	endpoint := fmt.Sprintf("/games/%s/seasons/%d/players", gameCode, seasonYear)
	params := map[string]string{
		"view": "players_wl",
	}

	headers := map[string]string{
		"x-fantasy-filter": `{"filterActive":null}`,
	}

	if err := a.client.Get(ctx, endpoint, params, headers, &players); err != nil {
		return nil, fmt.Errorf("fetching player directory: %w", err)
	}

	return players, nil
}

// SubmitTransaction posts one transaction. The raw body is kept on the
// result even when it decodes cleanly.
func (a *API) SubmitTransaction(ctx context.Context, leagueID string, seasonYear int, tx models.Transaction) (*models.TransactionResult, error) {
	var result models.TransactionResult
	endpoint := leagueEndpoint(leagueID, seasonYear) + "/transactions/"
	if tx.MemberID == "" {
		tx.MemberID = a.client.Config.SWID
	}

	raw, err := a.client.Post(ctx, endpoint, tx, &result)
	if err != nil {
		return nil, fmt.Errorf("submitting %s transaction: %w", tx.Type, err)
	}
	result.Raw = raw

	return &result, nil
}
