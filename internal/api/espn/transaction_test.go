package espn

import (
	"encoding/json"
	"testing"
)

func TestNewLineupTransaction(t *testing.T) {
	tx := NewLineupTransaction(3, 12, []LineupMove{
		{PlayerID: 100, FromSlot: SlotBench, ToSlot: 5},
		{PlayerID: 200, FromSlot: 5, ToSlot: SlotBench},
	})

	if tx.Type != TransactionRoster || tx.ExecutionType != ExecutionExecute || tx.ScoringPeriodID != 12 {
		t.Errorf("tx = %+v", tx)
	}
	if len(tx.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(tx.Items))
	}
	first := tx.Items[0]
	if first.Type != ItemLineup || *first.FromLineupSlotID != 16 || *first.ToLineupSlotID != 5 {
		t.Errorf("first item = %+v", first)
	}
	if *tx.Items[1].FromLineupSlotID != 5 {
		t.Error("slot pointers must not alias between moves")
	}
}

func TestNewAddDropTransaction(t *testing.T) {
	tx := NewAddDropTransaction(2, 1, 111, nil)
	if len(tx.Items) != 1 || tx.Items[0].Type != ItemAdd || *tx.Items[0].ToTeamID != 2 {
		t.Errorf("add only items = %+v", tx.Items)
	}

	drop := 222
	tx = NewAddDropTransaction(2, 1, 111, &drop)
	if len(tx.Items) != 2 || tx.Items[1].Type != ItemDrop || tx.Items[1].PlayerID != 222 || *tx.Items[1].FromTeamID != 2 {
		t.Errorf("add/drop items = %+v", tx.Items)
	}
	if tx.BidAmount != nil {
		t.Error("free agent adds carry no bid")
	}
}

func TestNewWaiverTransaction_JSON(t *testing.T) {
	b, err := json.Marshal(NewWaiverTransaction(1, 7, 111, nil, 0))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	json.Unmarshal(b, &m)

	if m["type"] != "WAIVER" {
		t.Errorf("type = %v", m["type"])
	}
	if bid, ok := m["bidAmount"]; !ok || bid.(float64) != 0 {
		t.Errorf("bidAmount = %v (present=%v), want explicit 0", bid, ok)
	}
	if _, ok := m["relatedTransactionId"]; ok {
		t.Error("relatedTransactionId should be omitted")
	}
}

func TestNewCancelWaiverTransaction(t *testing.T) {
	tx := NewCancelWaiverTransaction(1, 7, "abc-123")
	if tx.ExecutionType != ExecutionCancel || tx.RelatedTransactionID != "abc-123" || tx.Type != TransactionWaiver {
		t.Errorf("tx = %+v", tx)
	}
	if len(tx.Items) != 0 {
		t.Errorf("items = %v, want none", tx.Items)
	}
}

func TestSlotName(t *testing.T) {
	tests := map[int]string{0: "C", 5: "OF", 12: "UTIL", 13: "P", 16: "BE", 17: "IL", 999: "999"}
	for id, want := range tests {
		if got := SlotName(id); got != want {
			t.Errorf("SlotName(%d) = %q, want %q", id, got, want)
		}
	}
	if id, ok := SlotID("SP"); !ok || id != 14 {
		t.Errorf("SlotID(SP) = %d, %v", id, ok)
	}
}

func TestStatName(t *testing.T) {
	if name, ok := StatName("5"); !ok || name != "HR" {
		t.Errorf("StatName(5) = %q, %v", name, ok)
	}
	if _, ok := StatName("22"); ok {
		t.Error("stat 22 has no name")
	}
	if !IsPitchingStat("ERA") || IsPitchingStat("HR") {
		t.Error("pitching bucket misclassified")
	}
}
