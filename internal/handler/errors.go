package handler

// Request level error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgPlayerNotFoundError   = "Gladiator not found"
	ErrMsgItemNotFoundError     = "You don't have that item"
	ErrMsgDepositNotFoundError  = "Deposit not found"
	ErrMsgMessageNotFoundError  = "Message not found"
	ErrMsgReportNotFoundError   = "Combat report not found"
	ErrMsgLocationNotFoundError = "Unknown location"

	ErrMsgNotEnoughGoldError  = "Not enough gold"
	ErrMsgNotBuyableError     = "The merchant doesn't sell that"
	ErrMsgInvalidAmountError  = "Invalid amount"
	ErrMsgNotEquippableError  = "That item cannot be equipped"
	ErrMsgSlotMismatchError   = "That item doesn't fit that slot"
	ErrMsgSlotEmptyError      = "Nothing is equipped in that slot"
	ErrMsgNotConsumableError  = "That item cannot be used"
	ErrMsgNoStatPointsError   = "No stat points to spend"
	ErrMsgInvalidStatError    = "Unknown stat"
	ErrMsgInvalidNameError    = "Invalid gladiator name"
	ErrMsgLevelTooLowError    = "Your level is too low"
	ErrMsgPlayerBusyError     = "You are away on an activity"
	ErrMsgNoActivityError     = "No activity in progress"
	ErrMsgDepositMaturedError = "That deposit has already matured; claim it instead"

	ErrMsgRequirementsNotMetError  = "You don't meet the item's requirements"
	ErrMsgLuckChargeMissingError   = "You need a luck charge for that"
	ErrMsgOpponentNotEligibleError = "That opponent is not available to challenge"
	ErrMsgActivityInProgressError  = "An activity is already in progress"
	ErrMsgActivityNotFinishedError = "The activity has not finished yet"
	ErrMsgDepositNotMatureError    = "That deposit has not matured yet"
)

// Success messages
const (
	MsgItemDeleted = "Item discarded"
	MsgMessageRead = "Message marked as read"
)

// Log messages
const (
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgUpgradeFailed    = "WebSocket upgrade failed"
	LogMsgReplayStarted    = "Duel replay started"
	LogMsgReplayInterrupt  = "Duel replay interrupted"
	LogMsgReplayFinished   = "Duel replay finished"
	LogMsgPlayerCreated    = "Player created"
	LogMsgActivityFinished = "Activity completed"
)
