package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

var now = time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

func TestCommission(t *testing.T) {
	assert.Equal(t, 20, Commission(1000))
	assert.Equal(t, 0, Commission(49))
	assert.Equal(t, 1, Commission(50))
	assert.Equal(t, 2, Commission(149))
}

func TestDepositScenario(t *testing.T) {
	p := &domain.Player{ID: "p1", Gold: 1000}

	next, rec, err := Deposit(p, 1000, now)
	require.NoError(t, err)

	assert.Equal(t, 0, next.Gold)
	require.Len(t, next.Deposits, 1)
	assert.Equal(t, 980, next.Deposits[0].Amount)
	assert.Equal(t, now.Add(7*24*time.Hour), next.Deposits[0].EndTime)
	assert.Equal(t, 20, rec.Commission)
	assert.NotEmpty(t, next.Deposits[0].ID)

	assert.Equal(t, 1000, p.Gold, "input untouched")
	assert.Empty(t, p.Deposits)
}

func TestDepositRejections(t *testing.T) {
	p := &domain.Player{Gold: 100}

	_, _, err := Deposit(p, 0, now)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, _, err = Deposit(p, -5, now)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, _, err = Deposit(p, 101, now)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 100, p.Gold)
}

func TestClaim(t *testing.T) {
	p, _, err := Deposit(&domain.Player{Gold: 500}, 500, now)
	require.NoError(t, err)
	id := p.Deposits[0].ID

	_, _, err = Claim(p, id, now.Add(6*24*time.Hour))
	assert.ErrorIs(t, err, domain.ErrDepositNotMature)

	next, rec, err := Claim(p, id, now.Add(MaturityWindow))
	require.NoError(t, err)
	assert.Equal(t, 490, next.Gold)
	assert.Equal(t, 490, rec.Credited)
	assert.Empty(t, next.Deposits)

	_, _, err = Claim(next, id, now.Add(MaturityWindow))
	assert.ErrorIs(t, err, domain.ErrDepositNotFound, "entries are never reused")
}

func TestCancel(t *testing.T) {
	p, _, err := Deposit(&domain.Player{Gold: 1000}, 1000, now)
	require.NoError(t, err)
	id := p.Deposits[0].ID

	next, rec, err := Cancel(p, id, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 980, next.Gold, "no penalty beyond commission")
	assert.Equal(t, 980, rec.Credited)
	assert.Empty(t, next.Deposits)

	_, _, err = Cancel(p, id, now.Add(MaturityWindow))
	assert.ErrorIs(t, err, domain.ErrDepositMatured)

	_, _, err = Cancel(p, "missing", now)
	assert.ErrorIs(t, err, domain.ErrDepositNotFound)
}

func TestTotal(t *testing.T) {
	p := &domain.Player{Deposits: []domain.BankDeposit{{Amount: 10}, {Amount: 25}}}
	assert.Equal(t, 35, Total(p))
}
