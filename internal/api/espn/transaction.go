package espn

import "github.com/omarshaarawi/espn-fantasy-mcp/internal/models"

const (
	TransactionRoster    = "ROSTER"
	TransactionFreeAgent = "FREEAGENT"
	TransactionWaiver    = "WAIVER"

	ItemLineup = "LINEUP"
	ItemAdd    = "ADD"
	ItemDrop   = "DROP"

	ExecutionExecute = "EXECUTE"
	ExecutionCancel  = "CANCEL"
)

// LineupMove moves one rostered player between two lineup slots.
type LineupMove struct {
	PlayerID int
	FromSlot int
	ToSlot   int
}

func NewLineupTransaction(teamID, scoringPeriodID int, moves []LineupMove) models.Transaction {
	items := make([]models.TransactionItem, 0, len(moves))
	for _, m := range moves {
		from, to := m.FromSlot, m.ToSlot
		items = append(items, models.TransactionItem{
			PlayerID:         m.PlayerID,
			Type:             ItemLineup,
			FromLineupSlotID: &from,
			ToLineupSlotID:   &to,
		})
	}
	return models.Transaction{
		TeamID:          teamID,
		Type:            TransactionRoster,
		ScoringPeriodID: scoringPeriodID,
		ExecutionType:   ExecutionExecute,
		Items:           items,
	}
}

// NewAddDropTransaction adds a free agent, optionally releasing a rostered
// player in the same request.
func NewAddDropTransaction(teamID, scoringPeriodID, addPlayerID int, dropPlayerID *int) models.Transaction {
	return models.Transaction{
		TeamID:          teamID,
		Type:            TransactionFreeAgent,
		ScoringPeriodID: scoringPeriodID,
		ExecutionType:   ExecutionExecute,
		Items:           addDropItems(teamID, addPlayerID, dropPlayerID),
	}
}

func NewDropTransaction(teamID, scoringPeriodID, playerID int) models.Transaction {
	return models.Transaction{
		TeamID:          teamID,
		Type:            TransactionFreeAgent,
		ScoringPeriodID: scoringPeriodID,
		ExecutionType:   ExecutionExecute,
		Items:           []models.TransactionItem{dropItem(teamID, playerID)},
	}
}

func NewWaiverTransaction(teamID, scoringPeriodID, addPlayerID int, dropPlayerID *int, bidAmount int) models.Transaction {
	return models.Transaction{
		TeamID:          teamID,
		Type:            TransactionWaiver,
		ScoringPeriodID: scoringPeriodID,
		ExecutionType:   ExecutionExecute,
		BidAmount:       &bidAmount,
		Items:           addDropItems(teamID, addPlayerID, dropPlayerID),
	}
}

// NewCancelWaiverTransaction withdraws a pending claim by its id.
func NewCancelWaiverTransaction(teamID, scoringPeriodID int, transactionID string) models.Transaction {
	return models.Transaction{
		TeamID:               teamID,
		Type:                 TransactionWaiver,
		ScoringPeriodID:      scoringPeriodID,
		ExecutionType:        ExecutionCancel,
		RelatedTransactionID: transactionID,
		Items:                []models.TransactionItem{},
	}
}

func addDropItems(teamID, addPlayerID int, dropPlayerID *int) []models.TransactionItem {
	to := teamID
	items := []models.TransactionItem{{
		PlayerID: addPlayerID,
		Type:     ItemAdd,
		ToTeamID: &to,
	}}
	if dropPlayerID != nil {
		items = append(items, dropItem(teamID, *dropPlayerID))
	}
	return items
}

func dropItem(teamID, playerID int) models.TransactionItem {
	from := teamID
	return models.TransactionItem{
		PlayerID:   playerID,
		Type:       ItemDrop,
		FromTeamID: &from,
	}
}
