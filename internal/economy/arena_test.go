package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/character"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/combat"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

func zero() float64 { return 0 }

func brute(id string) *domain.Player {
	p := character.NewPlayer(id, "Brute "+id, t0)
	p.Stats.STR = 100
	return p
}

func weakling(id string) *domain.Player {
	return character.NewPlayer(id, "Weakling "+id, t0)
}

func giant() domain.Enemy {
	return domain.Enemy{
		Name:  "Titan",
		Level: 1,
		Stats: domain.Stats{STR: 1000, VIT: 1000},
		HP:    100000,
		MaxHP: 100000,
	}
}

func TestRewards(t *testing.T) {
	xp, gold := ArenaRewards(4, 0)
	assert.Equal(t, 80, xp)
	assert.Equal(t, 40, gold)

	_, gold = ArenaRewards(4, 0.99)
	assert.Equal(t, 59, gold)

	xp, gold = PvPRewards(3, 7)
	assert.Equal(t, 90, xp)
	assert.Equal(t, 105, gold)

	assert.Equal(t, 100, Theft(1000))
	assert.Equal(t, 0, Theft(9))
}

func TestFightArena(t *testing.T) {
	r := combat.NewResolver(zero)

	t.Run("win grants rewards and files report", func(t *testing.T) {
		p := brute("p1")
		enemy := r.GenerateEnemy(1, false)

		next, out, err := FightArena(p, enemy, r, zero, t0)
		require.NoError(t, err)
		assert.True(t, out.Report.Won)
		assert.Equal(t, domain.CombatKindArena, out.Report.Kind)
		assert.Equal(t, p.Gold+10, next.Gold)
		assert.Equal(t, 20, next.CurrentXP)
		assert.Equal(t, p.HP, next.HP)
		require.Len(t, next.Reports, 1)
		assert.NotEmpty(t, next.Reports[0].Rounds)
		assert.Empty(t, p.Reports, "input untouched")
	})

	t.Run("loss floors hp at one", func(t *testing.T) {
		p := weakling("p1")
		next, out, err := FightArena(p, giant(), r, zero, t0)
		require.NoError(t, err)
		assert.False(t, out.Report.Won)
		assert.Equal(t, MinHPAfterDuel, next.HP)
		assert.Equal(t, p.Gold, next.Gold)
		assert.Equal(t, 0, out.Report.XPGained)
	})

	t.Run("busy player is rejected", func(t *testing.T) {
		p := brute("p1")
		p.Activity = &domain.ActivityState{LocationName: "Outskirts Road", EndTime: t0}
		_, _, err := FightArena(p, giant(), r, zero, t0)
		assert.ErrorIs(t, err, domain.ErrPlayerBusy)
	})

	t.Run("keeps the most recent reports", func(t *testing.T) {
		p := brute("p1")
		for range MaxReports + 5 {
			next, _, err := FightArena(p, r.GenerateEnemy(1, false), r, zero, t0)
			require.NoError(t, err)
			p = next
		}
		assert.Len(t, p.Reports, MaxReports)
	})
}

func TestChallenge(t *testing.T) {
	r := combat.NewResolver(zero)

	t.Run("win takes the opponent's rank", func(t *testing.T) {
		p, opp := brute("p1"), weakling("p2")
		p.Rank, opp.Rank = 5, 2
		opp.Level = 3

		next, out, err := Challenge(p, opp, r, t0)
		require.NoError(t, err)
		assert.True(t, out.Report.Won)
		assert.Equal(t, 2, next.Rank)
		assert.Equal(t, 5, out.OldRank)
		assert.Equal(t, 2, out.NewRank)
		assert.Equal(t, 1, next.Wins)
		assert.Equal(t, p.Gold+45, next.Gold)
		assert.Equal(t, 30, next.CurrentXP)
	})

	t.Run("loss hands over gold from hand only", func(t *testing.T) {
		p, opp := weakling("p1"), brute("p2")
		opp.Stats.VIT = 1000
		p.Rank, opp.Rank = 5, 2
		p.Gold = 1000
		p.Deposits = []domain.BankDeposit{{ID: "d1", Amount: 5000}}

		next, out, err := Challenge(p, opp, r, t0)
		require.NoError(t, err)
		assert.False(t, out.Report.Won)
		assert.Equal(t, 100, out.GoldStolen)
		assert.Equal(t, 900, next.Gold)
		assert.Equal(t, -100, out.Report.GoldDelta)
		assert.Equal(t, 5000, next.Deposits[0].Amount)
		assert.Equal(t, 5, next.Rank)
		assert.Equal(t, 1, next.Losses)
		assert.Equal(t, MinHPAfterDuel, next.HP)
	})
}
