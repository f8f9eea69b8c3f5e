package domain

import "errors"

// Error message string constants. Tests match on these with assert.Contains.
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgPlayerBusy     = "player is busy"
	ErrMsgInvalidName    = "invalid player name"

	// Item and inventory errors
	ErrMsgItemNotFound       = "item not found"
	ErrMsgNotEquippable      = "item is not equippable"
	ErrMsgSlotMismatch       = "item does not fit that slot"
	ErrMsgSlotEmpty          = "slot is empty"
	ErrMsgRequirementsNotMet = "item requirements not met"
	ErrMsgNotConsumable      = "item cannot be used"
	ErrMsgLuckChargeMissing  = "no luck charge in inventory"
	ErrMsgNoStatPoints       = "no stat points available"
	ErrMsgInvalidStat        = "invalid stat"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNotBuyable        = "is not buyable"
	ErrMsgInvalidAmount     = "invalid amount"

	// Activity errors
	ErrMsgActivityInProgress  = "an activity is already in progress"
	ErrMsgNoActivity          = "no activity in progress"
	ErrMsgActivityNotFinished = "activity has not finished yet"
	ErrMsgLocationNotFound    = "location not found"
	ErrMsgLevelTooLow         = "level too low"

	// Bank errors
	ErrMsgDepositNotFound  = "deposit not found"
	ErrMsgDepositNotMature = "deposit has not matured"
	ErrMsgDepositMatured   = "deposit has already matured"

	// Inbox and report errors
	ErrMsgMessageNotFound = "message not found"
	ErrMsgReportNotFound  = "combat report not found"

	// League errors
	ErrMsgOpponentNotEligible = "opponent is not eligible"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Sentinel errors shared by every layer.
// Wrap them with fmt.Errorf("...: %w", domain.ErrXxx) to add context.
var (
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerBusy     = errors.New(ErrMsgPlayerBusy)
	ErrInvalidName    = errors.New(ErrMsgInvalidName)

	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrNotEquippable      = errors.New(ErrMsgNotEquippable)
	ErrSlotMismatch       = errors.New(ErrMsgSlotMismatch)
	ErrSlotEmpty          = errors.New(ErrMsgSlotEmpty)
	ErrRequirementsNotMet = errors.New(ErrMsgRequirementsNotMet)
	ErrNotConsumable      = errors.New(ErrMsgNotConsumable)
	ErrLuckChargeMissing  = errors.New(ErrMsgLuckChargeMissing)
	ErrNoStatPoints       = errors.New(ErrMsgNoStatPoints)
	ErrInvalidStat        = errors.New(ErrMsgInvalidStat)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNotBuyable        = errors.New(ErrMsgNotBuyable)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	ErrActivityInProgress  = errors.New(ErrMsgActivityInProgress)
	ErrNoActivity          = errors.New(ErrMsgNoActivity)
	ErrActivityNotFinished = errors.New(ErrMsgActivityNotFinished)
	ErrLocationNotFound    = errors.New(ErrMsgLocationNotFound)
	ErrLevelTooLow         = errors.New(ErrMsgLevelTooLow)

	ErrDepositNotFound  = errors.New(ErrMsgDepositNotFound)
	ErrDepositNotMature = errors.New(ErrMsgDepositNotMature)
	ErrDepositMatured   = errors.New(ErrMsgDepositMatured)

	ErrMessageNotFound = errors.New(ErrMsgMessageNotFound)
	ErrReportNotFound  = errors.New(ErrMsgReportNotFound)

	ErrOpponentNotEligible = errors.New(ErrMsgOpponentNotEligible)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
