package economy

import "time"

// ==================== Market ====================

// Market limits
const (
	// SellPricePercent is the share of an item's value paid back when selling
	SellPricePercent     = 40
	// MinSellPrice is paid for even the most worthless item
	MinSellPrice         = 1
	// MaxBuyQuantity caps a single purchase
	MaxBuyQuantity       = 99
	// PotionRestorePercent is the share of the max pool a potion restores
	PotionRestorePercent = 50
)

// ==================== Combat ====================

// Arena and PvP rewards
const (
	ArenaXPPerLevel       = 20
	ArenaGoldPerLevel     = 10
	ArenaGoldJitter       = 0.5
	PvPXPPerLevel         = 30
	PvPGoldPerLevel       = 15
	PvPTheftPercent       = 10
	MinHPAfterDuel        = 1
	MaxReports            = 20
	MaxMessages           = 50
	DefaultRankingsLength = 10
)

// ==================== Sessions ====================

// Session cache defaults
const (
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 30 * time.Minute
)

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgLoadPlayerFmt       = "load player %s: %w"
	ErrMsgItemNotInventoryFmt = "item %s: %w"
	ErrMsgNotBuyableFmt       = "%s %w"
	ErrMsgQuantityFmt         = "quantity %d: %w"
	ErrMsgBuyCostFmt          = "cost %d, balance %d: %w"
	ErrMsgShutdownFmt         = "flush sessions: %w"
	ErrMsgMaxRankFmt          = "read ladder size: %w"
	ErrMsgStaleOpponentFmt    = "%s now holds rank %d: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgPlayerCreated     = "Player created"
	LogMsgPlayerLoaded      = "Player session loaded"
	LogMsgItemPurchased     = "Item purchased"
	LogMsgItemSold          = "Item sold"
	LogMsgItemDeleted       = "Item deleted"
	LogMsgItemUsed          = "Item used"
	LogMsgUpgradeAttempted  = "Upgrade attempted"
	LogMsgActivityStarted   = "Activity started"
	LogMsgActivityCompleted = "Activity completed"
	LogMsgArenaFight        = "Arena fight resolved"
	LogMsgChallengeResolved = "Challenge resolved"
	LogMsgDepositCreated    = "Deposit created"
	LogMsgDepositClaimed    = "Deposit claimed"
	LogMsgDepositCancelled  = "Deposit cancelled"
	LogMsgIncomeCollected   = "Income collected"
	LogMsgRankWriteFailed   = "Failed to update leaderboard entry"
	LogMsgPublishFailed     = "Failed to publish event"
	LogMsgMessageAppendFail = "Failed to append activity message"
)

// Shutdown log messages
const (
	LogMsgShuttingDown = "Economy service shutting down, flushing sessions..."
	LogMsgShutdownDone = "Economy service shutdown complete"
)

// Message subjects
const (
	SubjectExpedition = "Expedition report"
	SubjectBoss       = "Boss encounter"
)
