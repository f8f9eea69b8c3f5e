package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/activity"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/bank"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/forge"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// MockService mocks economy.Service
type MockService struct {
	mock.Mock
}

var _ economy.Service = (*MockService)(nil)

func player(args mock.Arguments) *domain.Player {
	if p, ok := args.Get(0).(*domain.Player); ok {
		return p
	}
	return nil
}

func (m *MockService) CreatePlayer(ctx context.Context, name, avatar string) (*domain.Player, error) {
	args := m.Called(ctx, name, avatar)
	return player(args), args.Error(1)
}

func (m *MockService) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	return player(args), args.Error(1)
}

func (m *MockService) SpendStatPoint(ctx context.Context, playerID string, stat domain.StatType) (*domain.Player, error) {
	args := m.Called(ctx, playerID, stat)
	return player(args), args.Error(1)
}

func (m *MockService) Equip(ctx context.Context, playerID, itemID string, slot domain.Slot) (*domain.Player, error) {
	args := m.Called(ctx, playerID, itemID, slot)
	return player(args), args.Error(1)
}

func (m *MockService) Unequip(ctx context.Context, playerID string, slot domain.Slot) (*domain.Player, error) {
	args := m.Called(ctx, playerID, slot)
	return player(args), args.Error(1)
}

func (m *MockService) Shop() []economy.ShopEntry {
	args := m.Called()
	return args.Get(0).([]economy.ShopEntry)
}

func (m *MockService) Buy(ctx context.Context, playerID, key string, quantity int) (*domain.Player, economy.Trade, error) {
	args := m.Called(ctx, playerID, key, quantity)
	return player(args), args.Get(1).(economy.Trade), args.Error(2)
}

func (m *MockService) Sell(ctx context.Context, playerID, itemID string) (*domain.Player, economy.Trade, error) {
	args := m.Called(ctx, playerID, itemID)
	return player(args), args.Get(1).(economy.Trade), args.Error(2)
}

func (m *MockService) DeleteItem(ctx context.Context, playerID, itemID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID, itemID)
	return player(args), args.Error(1)
}

func (m *MockService) UseItem(ctx context.Context, playerID, itemID string) (*domain.Player, economy.Use, error) {
	args := m.Called(ctx, playerID, itemID)
	return player(args), args.Get(1).(economy.Use), args.Error(2)
}

func (m *MockService) Upgrade(ctx context.Context, playerID, itemID string, useLuck bool) (*domain.Player, forge.Outcome, error) {
	args := m.Called(ctx, playerID, itemID, useLuck)
	return player(args), args.Get(1).(forge.Outcome), args.Error(2)
}

func (m *MockService) Locations() []activity.Location {
	args := m.Called()
	return args.Get(0).([]activity.Location)
}

func (m *MockService) StartActivity(ctx context.Context, playerID, location string) (*domain.Player, error) {
	args := m.Called(ctx, playerID, location)
	return player(args), args.Error(1)
}

func (m *MockService) ActivityStatus(ctx context.Context, playerID string) (economy.ActivityStatus, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).(economy.ActivityStatus), args.Error(1)
}

func (m *MockService) CompleteActivity(ctx context.Context, playerID string) (*domain.Player, economy.Completion, error) {
	args := m.Called(ctx, playerID)
	return player(args), args.Get(1).(economy.Completion), args.Error(2)
}

func (m *MockService) AutoCompleteActivity(ctx context.Context, playerID string) error {
	return m.Called(ctx, playerID).Error(0)
}

func (m *MockService) PendingActivities(ctx context.Context) ([]repository.PendingActivity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.PendingActivity), args.Error(1)
}

func (m *MockService) FightEnemy(ctx context.Context, playerID string) (*domain.Player, economy.DuelOutcome, error) {
	args := m.Called(ctx, playerID)
	return player(args), args.Get(1).(economy.DuelOutcome), args.Error(2)
}

func (m *MockService) FindOpponents(ctx context.Context, playerID string) ([]domain.RankEntry, error) {
	args := m.Called(ctx, playerID)
	return args.Get(0).([]domain.RankEntry), args.Error(1)
}

func (m *MockService) Rankings(ctx context.Context, n int) ([]domain.RankEntry, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]domain.RankEntry), args.Error(1)
}

func (m *MockService) Challenge(ctx context.Context, playerID, opponentID string) (*domain.Player, economy.DuelOutcome, error) {
	args := m.Called(ctx, playerID, opponentID)
	return player(args), args.Get(1).(economy.DuelOutcome), args.Error(2)
}

func (m *MockService) Report(ctx context.Context, playerID, reportID string) (domain.CombatReport, error) {
	args := m.Called(ctx, playerID, reportID)
	return args.Get(0).(domain.CombatReport), args.Error(1)
}

func (m *MockService) Deposit(ctx context.Context, playerID string, amount int) (*domain.Player, bank.Receipt, error) {
	args := m.Called(ctx, playerID, amount)
	return player(args), args.Get(1).(bank.Receipt), args.Error(2)
}

func (m *MockService) ClaimDeposit(ctx context.Context, playerID, depositID string) (*domain.Player, bank.Receipt, error) {
	args := m.Called(ctx, playerID, depositID)
	return player(args), args.Get(1).(bank.Receipt), args.Error(2)
}

func (m *MockService) CancelDeposit(ctx context.Context, playerID, depositID string) (*domain.Player, bank.Receipt, error) {
	args := m.Called(ctx, playerID, depositID)
	return player(args), args.Get(1).(bank.Receipt), args.Error(2)
}

func (m *MockService) CollectIncome(ctx context.Context, playerID string) (*domain.Player, int, error) {
	args := m.Called(ctx, playerID)
	return player(args), args.Int(1), args.Error(2)
}

func (m *MockService) MarkMessageRead(ctx context.Context, playerID, messageID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID, messageID)
	return player(args), args.Error(1)
}

func (m *MockService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
