package domain

import "time"

// Event type constants published on the event bus and consumed by
// metrics, SSE notification and the activity worker.
//
// Event types follow the pattern: <entity>.<action>
const (
	EventTypePlayerCreated     = "player.created"
	EventTypePlayerLeveledUp   = "player.leveled_up"
	EventTypeItemBought        = "item.bought"
	EventTypeItemSold          = "item.sold"
	EventTypeItemUsed          = "item.used"
	EventTypeItemUpgraded      = "item.upgraded"
	EventTypeActivityStarted   = "activity.started"
	EventTypeActivityCompleted = "activity.completed"
	EventTypeCombatFinished    = "combat.finished"
	EventTypeBankDeposited     = "bank.deposited"
	EventTypeBankClaimed       = "bank.claimed"
	EventTypeBankCancelled     = "bank.cancelled"
	EventTypeIncomeCollected   = "income.collected"
)

// ItemTradePayload is carried by item.bought and item.sold
type ItemTradePayload struct {
	PlayerID string `json:"player_id"`
	ItemKey  string `json:"item_key,omitempty"`
	ItemName string `json:"item_name"`
	Gold     int    `json:"gold"`
}

// ItemUsedPayload is carried by item.used
type ItemUsedPayload struct {
	PlayerID string `json:"player_id"`
	ItemKey  string `json:"item_key"`
}

// UpgradePayload is carried by item.upgraded for every attempt
type UpgradePayload struct {
	PlayerID       string `json:"player_id"`
	ItemID         string `json:"item_id"`
	Rarity         Rarity `json:"rarity"`
	Success        bool   `json:"success"`
	Cost           int    `json:"cost"`
	NewLevel       int    `json:"new_level"`
	UsedLuckCharge bool   `json:"used_luck_charge"`
}

// ActivityStartedPayload is carried by activity.started
type ActivityStartedPayload struct {
	PlayerID     string    `json:"player_id"`
	LocationName string    `json:"location_name"`
	IsBoss       bool      `json:"is_boss"`
	EndTime      time.Time `json:"end_time"`
}

// ActivityCompletedPayload is carried by activity.completed
type ActivityCompletedPayload struct {
	PlayerID     string `json:"player_id"`
	LocationName string `json:"location_name"`
	IsBoss       bool   `json:"is_boss"`
	Won          bool   `json:"won"`
	XP           int    `json:"xp"`
	Gold         int    `json:"gold"`
	ItemName     string `json:"item_name,omitempty"`
}

// CombatFinishedPayload is carried by combat.finished
type CombatFinishedPayload struct {
	PlayerID string `json:"player_id"`
	Kind     string `json:"kind"`
	Opponent string `json:"opponent"`
	Won      bool   `json:"won"`
	Turns    int    `json:"turns"`
	Gold     int    `json:"gold"`
}

// LevelUpPayload is carried by player.leveled_up
type LevelUpPayload struct {
	PlayerID string `json:"player_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
}

// BankPayload is carried by the bank.* events
type BankPayload struct {
	PlayerID  string `json:"player_id"`
	DepositID string `json:"deposit_id"`
	Amount    int    `json:"amount"`
	Fee       int    `json:"fee,omitempty"`
}

// GoldPayload is carried by events that only move gold
type GoldPayload struct {
	PlayerID string `json:"player_id"`
	Gold     int    `json:"gold"`
}
