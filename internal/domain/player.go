package domain

import "time"

// Player is the aggregate root for one character. Every engine mutation
// produces a new Player value; callers never edit a shared instance.
type Player struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Avatar       string         `json:"avatar,omitempty"`
	Level        int            `json:"level"`
	CurrentXP    int            `json:"current_xp"`
	Gold         int            `json:"gold"`
	Stats        Stats          `json:"stats"`
	StatPoints   int            `json:"stat_points"`
	HP           int            `json:"hp"`
	MaxHP        int            `json:"max_hp"`
	MP           int            `json:"mp"`
	MaxMP        int            `json:"max_mp"`
	Equipment    Equipment      `json:"equipment"`
	Inventory    []Item         `json:"inventory"`
	Rank         int            `json:"rank"`
	Wins         int            `json:"wins"`
	Losses       int            `json:"losses"`
	Activity     *ActivityState `json:"activity,omitempty"`
	Deposits     []BankDeposit  `json:"deposits"`
	Messages     []Message      `json:"messages"`
	Reports      []CombatReport `json:"reports"`
	LastIncomeAt time.Time      `json:"last_income_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Clone returns a deep copy safe to mutate independently of p
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Equipment = p.Equipment.Clone()
	c.Inventory = make([]Item, len(p.Inventory))
	for i, item := range p.Inventory {
		c.Inventory[i] = item.Clone()
	}
	if p.Activity != nil {
		a := *p.Activity
		c.Activity = &a
	}
	c.Deposits = append([]BankDeposit(nil), p.Deposits...)
	c.Messages = append([]Message(nil), p.Messages...)
	c.Reports = make([]CombatReport, len(p.Reports))
	for i, r := range p.Reports {
		r.Rounds = append([]CombatRound(nil), r.Rounds...)
		c.Reports[i] = r
	}
	return &c
}

// InventoryIndex returns the position of itemID in the inventory, or -1
func (p *Player) InventoryIndex(itemID string) int {
	for i := range p.Inventory {
		if p.Inventory[i].ID == itemID {
			return i
		}
	}
	return -1
}

// InventoryIndexByKey returns the first inventory position holding a catalogue item with key, or -1
func (p *Player) InventoryIndexByKey(key string) int {
	for i := range p.Inventory {
		if p.Inventory[i].Key == key {
			return i
		}
	}
	return -1
}

// IsBusy reports whether a timed activity currently occupies the player
func (p *Player) IsBusy() bool {
	return p.Activity != nil
}

// RankEntry projects the player onto a ladder row
func (p *Player) RankEntry() RankEntry {
	return RankEntry{
		PlayerID: p.ID,
		Rank:     p.Rank,
		Name:     p.Name,
		Level:    p.Level,
		Wins:     p.Wins,
		Avatar:   p.Avatar,
	}
}

// Enemy is an ephemeral opponent rolled for a single encounter.
type Enemy struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	Stats       Stats  `json:"stats"`
	HP          int    `json:"hp"`
	MaxHP       int    `json:"max_hp"`
	IsBoss      bool   `json:"is_boss"`
}

// ActivityState records the single in-flight timed activity. EndTime is absolute.
type ActivityState struct {
	LocationName string    `json:"location_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IsBoss       bool      `json:"is_boss"`
	Level        int       `json:"level"`
}

// BankDeposit is a time-locked vault entry holding the net amount.
type BankDeposit struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// RankEntry is one read-only leaderboard row.
type RankEntry struct {
	PlayerID string `json:"player_id"`
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Wins     int    `json:"wins"`
	Avatar   string `json:"avatar,omitempty"`
}

// League is a level band with its passive income rate.
type League struct {
	Tier          int     `json:"tier"`
	Name          string  `json:"name"`
	MinLevel      int     `json:"min_level"`
	MaxLevel      int     `json:"max_level"`
	IncomePerHour float64 `json:"income_per_hour"`
}

// Message is an inbox entry appended by engine events.
type Message struct {
	ID      string    `json:"id"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
	Read    bool      `json:"read"`
}

// Combat sides as recorded in round logs
const (
	SidePlayer   = "player"
	SideOpponent = "opponent"
)

// CombatRound is one attack in a resolved duel. HP values are after the hit.
type CombatRound struct {
	Turn       int    `json:"turn"`
	Attacker   string `json:"attacker"`
	Damage     int    `json:"damage"`
	Crit       bool   `json:"crit"`
	PlayerHP   int    `json:"player_hp"`
	OpponentHP int    `json:"opponent_hp"`
}

// CombatReport is the persisted record of a finished duel.
type CombatReport struct {
	ID        string        `json:"id"`
	Kind      string        `json:"kind"`
	Opponent  string        `json:"opponent"`
	Won       bool          `json:"won"`
	XPGained  int           `json:"xp_gained"`
	GoldDelta int           `json:"gold_delta"`
	Rounds    []CombatRound `json:"rounds"`
	CreatedAt time.Time     `json:"created_at"`
}

// Combat report kinds
const (
	CombatKindArena = "arena"
	CombatKindPvP   = "pvp"
)

// OpponentQuery is the banded, ranked lookup used to find PvP opponents.
// BelowRank of 0 means the challenger is unranked and any ranked player qualifies.
type OpponentQuery struct {
	ExcludeID string `json:"exclude_id"`
	MinLevel  int    `json:"min_level"`
	MaxLevel  int    `json:"max_level"`
	BelowRank int    `json:"below_rank"`
	Limit     int    `json:"limit"`
}
