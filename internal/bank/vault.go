// Package bank keeps time-locked gold deposits. Vault gold earns no interest;
// its only benefit is that it cannot be stolen on a PvP loss.
package bank

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// Receipt describes the gold moved by a vault operation
type Receipt struct {
	Deposit    domain.BankDeposit `json:"deposit"`
	Gross      int                `json:"gross,omitempty"`
	Commission int                `json:"commission,omitempty"`
	Credited   int                `json:"credited,omitempty"`
}

// Commission returns the entry fee charged on a deposit of amount
func Commission(amount int) int {
	return amount * CommissionPercent / 100
}

// Matured reports whether d may be claimed at now
func Matured(d domain.BankDeposit, now time.Time) bool {
	return !now.Before(d.EndTime)
}

// Deposit moves amount gold from the player into a new vault entry
func Deposit(p *domain.Player, amount int, now time.Time) (*domain.Player, Receipt, error) {
	if amount <= 0 {
		return nil, Receipt{}, fmt.Errorf("deposit %d: %w", amount, domain.ErrInvalidAmount)
	}
	if amount > p.Gold {
		return nil, Receipt{}, fmt.Errorf("deposit %d with %d gold: %w", amount, p.Gold, domain.ErrInsufficientFunds)
	}

	fee := Commission(amount)
	d := domain.BankDeposit{
		ID:        uuid.NewString(),
		Amount:    amount - fee,
		StartTime: now,
		EndTime:   now.Add(MaturityWindow),
	}

	next := p.Clone()
	next.Gold -= amount
	next.Deposits = append(next.Deposits, d)
	return next, Receipt{Deposit: d, Gross: amount, Commission: fee}, nil
}

// Claim pays out a matured deposit and removes it
func Claim(p *domain.Player, depositID string, now time.Time) (*domain.Player, Receipt, error) {
	idx := indexOf(p, depositID)
	if idx < 0 {
		return nil, Receipt{}, fmt.Errorf("claim %s: %w", depositID, domain.ErrDepositNotFound)
	}
	d := p.Deposits[idx]
	if !Matured(d, now) {
		return nil, Receipt{}, fmt.Errorf("claim %s: %w", depositID, domain.ErrDepositNotMature)
	}
	return payout(p, idx)
}

// Cancel withdraws a deposit before maturity. Only the entry commission is lost.
func Cancel(p *domain.Player, depositID string, now time.Time) (*domain.Player, Receipt, error) {
	idx := indexOf(p, depositID)
	if idx < 0 {
		return nil, Receipt{}, fmt.Errorf("cancel %s: %w", depositID, domain.ErrDepositNotFound)
	}
	if Matured(p.Deposits[idx], now) {
		return nil, Receipt{}, fmt.Errorf("cancel %s: %w", depositID, domain.ErrDepositMatured)
	}
	return payout(p, idx)
}

// Total returns the gold held in the vault
func Total(p *domain.Player) int {
	sum := 0
	for _, d := range p.Deposits {
		sum += d.Amount
	}
	return sum
}

func payout(p *domain.Player, idx int) (*domain.Player, Receipt, error) {
	next := p.Clone()
	d := next.Deposits[idx]
	next.Deposits = append(next.Deposits[:idx], next.Deposits[idx+1:]...)
	next.Gold += d.Amount
	return next, Receipt{Deposit: d, Credited: d.Amount}, nil
}

func indexOf(p *domain.Player, id string) int {
	for i := range p.Deposits {
		if p.Deposits[i].ID == id {
			return i
		}
	}
	return -1
}
