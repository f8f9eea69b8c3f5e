// Package league bands players into level brackets and selects PvP opponents.
package league

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// Leagues is the fixed banding table, lowest tier first. A MaxLevel of 0 is open ended.
var Leagues = []domain.League{
	{Tier: 1, Name: "Bronze", MinLevel: 1, MaxLevel: 9, IncomePerHour: 5},
	{Tier: 2, Name: "Silver", MinLevel: 10, MaxLevel: 19, IncomePerHour: 10},
	{Tier: 3, Name: "Gold", MinLevel: 20, MaxLevel: 29, IncomePerHour: 20},
	{Tier: 4, Name: "Platinum", MinLevel: 30, MaxLevel: 39, IncomePerHour: 35},
	{Tier: 5, Name: "Diamond", MinLevel: 40, MaxLevel: 49, IncomePerHour: 55},
	{Tier: 6, Name: "Champion", MinLevel: 50, MaxLevel: 0, IncomePerHour: 80},
}

// ForLevel returns the league a player of the given level belongs to
func ForLevel(level int) domain.League {
	for _, l := range Leagues {
		if level <= l.MaxLevel || l.MaxLevel == 0 {
			return l
		}
	}
	return Leagues[0]
}

// BuildQuery shapes the opponent lookup for a challenger
func BuildQuery(p *domain.Player, limit int) domain.OpponentQuery {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	l := ForLevel(p.Level)
	maxLevel := l.MaxLevel
	if maxLevel == 0 {
		maxLevel = math.MaxInt32
	}
	return domain.OpponentQuery{
		ExcludeID: p.ID,
		MinLevel:  l.MinLevel,
		MaxLevel:  maxLevel,
		BelowRank: p.Rank,
		Limit:     limit,
	}
}

// Eligible reports whether entry satisfies q
func Eligible(entry domain.RankEntry, q domain.OpponentQuery) bool {
	if entry.PlayerID == q.ExcludeID || entry.Rank <= 0 {
		return false
	}
	if entry.Level < q.MinLevel || entry.Level > q.MaxLevel {
		return false
	}
	return q.BelowRank == 0 || entry.Rank < q.BelowRank
}

// Filter applies q to entries and returns the matches ascending by rank, bounded by q.Limit
func Filter(entries []domain.RankEntry, q domain.OpponentQuery) []domain.RankEntry {
	out := make([]domain.RankEntry, 0, len(entries))
	for _, e := range entries {
		if Eligible(e, q) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.RankEntry) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// Income returns the piggy-bank gold accrued since last, capped at MaxIncomeHours
func Income(level int, last, now time.Time) int {
	gold, _ := Accrue(level, last, now)
	return gold
}

// Accrue returns the whole gold accrued since last and the collection mark to
// store. The mark advances only by the time that gold paid for, so the
// fractional remainder carries into the next collection. Time beyond the cap
// is forfeited and the mark jumps to now.
func Accrue(level int, last, now time.Time) (int, time.Time) {
	if last.IsZero() || !now.After(last) {
		return 0, last
	}
	rate := ForLevel(level).IncomePerHour
	hours := now.Sub(last).Hours()
	if hours > MaxIncomeHours {
		return int(math.Floor(MaxIncomeHours * rate)), now
	}
	gold := int(math.Floor(hours * rate))
	if gold == 0 {
		return 0, last
	}
	paid := time.Duration(math.Round(float64(gold) * float64(time.Hour) / rate))
	return gold, last.Add(paid)
}

// Matchmaker reads the ladder and renders opponent lists
type Matchmaker struct {
	board    repository.Leaderboard
	pageSize int
}

// NewMatchmaker creates a Matchmaker over board
func NewMatchmaker(board repository.Leaderboard, pageSize int) *Matchmaker {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Matchmaker{board: board, pageSize: pageSize}
}

// Opponents returns the challenger's eligible opponents. Backend results are
// filtered again so every backend yields the same ordering.
func (m *Matchmaker) Opponents(ctx context.Context, p *domain.Player) ([]domain.RankEntry, error) {
	q := BuildQuery(p, m.pageSize)
	entries, err := m.board.FindOpponents(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgOpponentQueryFailed, "player_id", p.ID, "error", err)
		return nil, fmt.Errorf("find opponents: %w", err)
	}
	return Filter(entries, q), nil
}

// IsEligible checks a chosen opponent against the challenger's current query
func (m *Matchmaker) IsEligible(ctx context.Context, p *domain.Player, opponentID string) (domain.RankEntry, error) {
	opponents, err := m.Opponents(ctx, p)
	if err != nil {
		return domain.RankEntry{}, err
	}
	for _, o := range opponents {
		if o.PlayerID == opponentID {
			return o, nil
		}
	}
	return domain.RankEntry{}, fmt.Errorf("%s: %w", opponentID, domain.ErrOpponentNotEligible)
}

// Rankings returns the top n ladder entries
func (m *Matchmaker) Rankings(ctx context.Context, n int) ([]domain.RankEntry, error) {
	if n <= 0 {
		n = m.pageSize
	}
	entries, err := m.board.TopN(ctx, n)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgRankingsFailed, "error", err)
		return nil, fmt.Errorf("rankings: %w", err)
	}
	return entries, nil
}
