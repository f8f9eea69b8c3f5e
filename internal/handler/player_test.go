package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/bank"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/forge"
)

// newRequest builds a request with a JSON body and chi URL params attached
func newRequest(t *testing.T, method, target string, body any, params map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func pid() map[string]string { return map[string]string{ParamPlayerID: "p1"} }

func TestHandleCreatePlayer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockService{}
		svc.On("CreatePlayer", mock.Anything, "Spartacus", "thracian").
			Return(&domain.Player{ID: "p1", Name: "Spartacus", Level: 1}, nil)
		h := NewPlayerHandler(svc)

		w := httptest.NewRecorder()
		h.HandleCreatePlayer(w, newRequest(t, "POST", "/players", CreatePlayerRequest{Name: "Spartacus", Avatar: "thracian"}, nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		p := decodeBody[domain.Player](t, w)
		assert.Equal(t, "p1", p.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		svc := &MockService{}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleCreatePlayer(w, newRequest(t, "POST", "/players", "{not json", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
		svc.AssertNotCalled(t, "CreatePlayer")
	})

	t.Run("Validation Failure", func(t *testing.T) {
		svc := &MockService{}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleCreatePlayer(w, newRequest(t, "POST", "/players", CreatePlayerRequest{}, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Contains(t, resp.Fields, "name")
	})

	t.Run("Blank Name Rejected By Service", func(t *testing.T) {
		svc := &MockService{}
		svc.On("CreatePlayer", mock.Anything, "   ", "").Return(nil, fmt.Errorf("create: %w", domain.ErrInvalidName))

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleCreatePlayer(w, newRequest(t, "POST", "/players", CreatePlayerRequest{Name: "   "}, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidNameError)
	})
}

func TestHandleGetPlayer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockService{}
		svc.On("GetPlayer", mock.Anything, "p1").Return(&domain.Player{ID: "p1", Gold: 42}, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleGetPlayer(w, newRequest(t, "GET", "/players/p1", nil, pid()))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 42, decodeBody[domain.Player](t, w).Gold)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := &MockService{}
		svc.On("GetPlayer", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleGetPlayer(w, newRequest(t, "GET", "/players/ghost", nil, map[string]string{ParamPlayerID: "ghost"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgPlayerNotFoundError)
	})

	t.Run("Missing Path Param", func(t *testing.T) {
		svc := &MockService{}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleGetPlayer(w, newRequest(t, "GET", "/players/", nil, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetPlayer")
	})

	t.Run("Storage Failure Is Not Leaked", func(t *testing.T) {
		svc := &MockService{}
		svc.On("GetPlayer", mock.Anything, "p1").Return(nil, fmt.Errorf("load player p1: dial tcp: refused"))

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleGetPlayer(w, newRequest(t, "GET", "/players/p1", nil, pid()))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "dial tcp")
	})
}

func TestHandleSpendStatPoint(t *testing.T) {
	svc := &MockService{}
	svc.On("SpendStatPoint", mock.Anything, "p1", domain.StatType("agi")).Return(&domain.Player{ID: "p1"}, nil)
	svc.On("SpendStatPoint", mock.Anything, "p1", domain.StatType("vit")).Return(nil, domain.ErrNoStatPoints)
	h := NewPlayerHandler(svc)

	w := httptest.NewRecorder()
	h.HandleSpendStatPoint(w, newRequest(t, "POST", "/", SpendStatRequest{Stat: "AGI"}, pid()))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.HandleSpendStatPoint(w, newRequest(t, "POST", "/", SpendStatRequest{Stat: "vit"}, pid()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgNoStatPointsError)

	w = httptest.NewRecorder()
	h.HandleSpendStatPoint(w, newRequest(t, "POST", "/", SpendStatRequest{Stat: "charm"}, pid()))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}

func TestHandleEquipAndUnequip(t *testing.T) {
	svc := &MockService{}
	svc.On("Equip", mock.Anything, "p1", "sword", domain.Slot("")).Return(&domain.Player{ID: "p1"}, nil)
	svc.On("Equip", mock.Anything, "p1", "ring", domain.SlotWeapon).Return(nil, domain.ErrSlotMismatch)
	svc.On("Unequip", mock.Anything, "p1", domain.SlotHelmet).Return(nil, domain.ErrSlotEmpty)
	h := NewPlayerHandler(svc)

	w := httptest.NewRecorder()
	h.HandleEquip(w, newRequest(t, "POST", "/", EquipRequest{ItemID: "sword"}, pid()))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.HandleEquip(w, newRequest(t, "POST", "/", EquipRequest{ItemID: "ring", Slot: "weapon"}, pid()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgSlotMismatchError)

	w = httptest.NewRecorder()
	h.HandleUnequip(w, newRequest(t, "POST", "/", UnequipRequest{Slot: "helmet"}, pid()))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}

func TestHandleMarket(t *testing.T) {
	t.Run("Buy", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Buy", mock.Anything, "p1", domain.ItemKeyHealthPotion, 2).
			Return(&domain.Player{ID: "p1", Gold: 400}, economy.Trade{Gold: 100}, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleBuy(w, newRequest(t, "POST", "/", BuyRequest{ItemKey: domain.ItemKeyHealthPotion, Quantity: 2}, pid()))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[TradeResponse](t, w)
		assert.Equal(t, 400, resp.Player.Gold)
		assert.Equal(t, 100, resp.Trade.Gold)
	})

	t.Run("Buy Insufficient Funds", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Buy", mock.Anything, "p1", domain.ItemKeyLuckCharge, 1).
			Return(nil, economy.Trade{}, fmt.Errorf("cost 500, balance 10: %w", domain.ErrInsufficientFunds))

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleBuy(w, newRequest(t, "POST", "/", BuyRequest{ItemKey: domain.ItemKeyLuckCharge, Quantity: 1}, pid()))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotEnoughGoldError)
	})

	t.Run("Buy Quantity Validation", func(t *testing.T) {
		svc := &MockService{}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleBuy(w, newRequest(t, "POST", "/", BuyRequest{ItemKey: "iron_ore", Quantity: 0}, pid()))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Buy")
	})

	t.Run("Sell Equipped Item", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Sell", mock.Anything, "p1", "sword").Return(nil, economy.Trade{}, domain.ErrItemNotFound)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleSell(w, newRequest(t, "POST", "/", ItemRequest{ItemID: "sword"}, pid()))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete Item", func(t *testing.T) {
		svc := &MockService{}
		svc.On("DeleteItem", mock.Anything, "p1", "junk").Return(&domain.Player{ID: "p1"}, nil)

		params := map[string]string{ParamPlayerID: "p1", ParamItemID: "junk"}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleDeleteItem(w, newRequest(t, "DELETE", "/", nil, params))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Use Potion", func(t *testing.T) {
		svc := &MockService{}
		svc.On("UseItem", mock.Anything, "p1", "potion").
			Return(&domain.Player{ID: "p1", HP: 80}, economy.Use{HPRestored: 50}, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleUseItem(w, newRequest(t, "POST", "/", ItemRequest{ItemID: "potion"}, pid()))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 50, decodeBody[UseResponse](t, w).Use.HPRestored)
	})

	t.Run("Upgrade Failure Still Succeeds As Request", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Upgrade", mock.Anything, "p1", "sword", true).
			Return(&domain.Player{ID: "p1"}, forge.Outcome{ItemID: "sword", Success: false, Cost: 300, UsedLuckCharge: true}, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleUpgrade(w, newRequest(t, "POST", "/", UpgradeRequest{ItemID: "sword", LuckCharge: true}, pid()))

		assert.Equal(t, http.StatusOK, w.Code)
		out := decodeBody[UpgradeResponse](t, w).Outcome
		assert.False(t, out.Success)
		assert.Equal(t, 300, out.Cost)
	})

	t.Run("Upgrade Without Luck Charge", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Upgrade", mock.Anything, "p1", "sword", true).Return(nil, forge.Outcome{}, domain.ErrLuckChargeMissing)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleUpgrade(w, newRequest(t, "POST", "/", UpgradeRequest{ItemID: "sword", LuckCharge: true}, pid()))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgLuckChargeMissingError)
	})
}

func TestHandleActivity(t *testing.T) {
	t.Run("Start While Busy", func(t *testing.T) {
		svc := &MockService{}
		svc.On("StartActivity", mock.Anything, "p1", "Outskirts Road").Return(nil, domain.ErrActivityInProgress)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleStartActivity(w, newRequest(t, "POST", "/", StartActivityRequest{Location: "Outskirts Road"}, pid()))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Start Below Level", func(t *testing.T) {
		svc := &MockService{}
		svc.On("StartActivity", mock.Anything, "p1", "Dragon Lair").Return(nil, domain.ErrLevelTooLow)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleStartActivity(w, newRequest(t, "POST", "/", StartActivityRequest{Location: "Dragon Lair"}, pid()))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Complete Too Early", func(t *testing.T) {
		svc := &MockService{}
		svc.On("CompleteActivity", mock.Anything, "p1").Return(nil, economy.Completion{}, domain.ErrActivityNotFinished)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleCompleteActivity(w, newRequest(t, "POST", "/", nil, pid()))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgActivityNotFinishedError)
	})

	t.Run("Complete", func(t *testing.T) {
		svc := &MockService{}
		done := economy.Completion{Narrative: "The road was quiet."}
		done.Location, done.Won, done.Gold = "Outskirts Road", true, 25
		svc.On("CompleteActivity", mock.Anything, "p1").Return(&domain.Player{ID: "p1"}, done, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleCompleteActivity(w, newRequest(t, "POST", "/", nil, pid()))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[CompletionResponse](t, w)
		assert.Equal(t, 25, resp.Completion.Gold)
		assert.Equal(t, "The road was quiet.", resp.Completion.Narrative)
	})
}

func TestHandleArena(t *testing.T) {
	t.Run("Rankings Default Limit", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Rankings", mock.Anything, economy.DefaultRankingsLength).Return([]domain.RankEntry{{PlayerID: "a", Rank: 1}}, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleRankings(w, newRequest(t, "GET", "/rankings", nil, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[[]domain.RankEntry](t, w), 1)
	})

	t.Run("Rankings Limit Is Capped", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Rankings", mock.Anything, MaxRankingsLimit).Return([]domain.RankEntry{}, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleRankings(w, newRequest(t, "GET", "/rankings?limit=5000", nil, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Rankings Bad Limit", func(t *testing.T) {
		svc := &MockService{}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleRankings(w, newRequest(t, "GET", "/rankings?limit=-3", nil, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Challenge Ineligible", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Challenge", mock.Anything, "p1", "p2").Return(nil, economy.DuelOutcome{}, domain.ErrOpponentNotEligible)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleChallenge(w, newRequest(t, "POST", "/", ChallengeRequest{OpponentID: "p2"}, pid()))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Fight", func(t *testing.T) {
		svc := &MockService{}
		out := economy.DuelOutcome{Report: domain.CombatReport{ID: "r1", Won: true, XPGained: 20}}
		svc.On("FightEnemy", mock.Anything, "p1").Return(&domain.Player{ID: "p1"}, out, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleFightEnemy(w, newRequest(t, "POST", "/", nil, pid()))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeBody[DuelResponse](t, w).Outcome.Report.Won)
	})

	t.Run("Report Not Found", func(t *testing.T) {
		svc := &MockService{}
		svc.On("Report", mock.Anything, "p1", "nope").Return(domain.CombatReport{}, domain.ErrReportNotFound)

		params := map[string]string{ParamPlayerID: "p1", ParamReportID: "nope"}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleGetReport(w, newRequest(t, "GET", "/", nil, params))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleBank(t *testing.T) {
	t.Run("Deposit", func(t *testing.T) {
		svc := &MockService{}
		rec := bank.Receipt{Deposit: domain.BankDeposit{ID: "d1", Amount: 1000}}
		svc.On("Deposit", mock.Anything, "p1", 1000).Return(&domain.Player{ID: "p1"}, rec, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleDeposit(w, newRequest(t, "POST", "/", DepositRequest{Amount: 1000}, pid()))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "d1", decodeBody[ReceiptResponse](t, w).Receipt.Deposit.ID)
	})

	t.Run("Claim Immature", func(t *testing.T) {
		svc := &MockService{}
		svc.On("ClaimDeposit", mock.Anything, "p1", "d1").Return(nil, bank.Receipt{}, domain.ErrDepositNotMature)

		params := map[string]string{ParamPlayerID: "p1", ParamDepositID: "d1"}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleClaimDeposit(w, newRequest(t, "POST", "/", nil, params))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Cancel Matured", func(t *testing.T) {
		svc := &MockService{}
		svc.On("CancelDeposit", mock.Anything, "p1", "d1").Return(nil, bank.Receipt{}, domain.ErrDepositMatured)

		params := map[string]string{ParamPlayerID: "p1", ParamDepositID: "d1"}
		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleCancelDeposit(w, newRequest(t, "POST", "/", nil, params))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgDepositMaturedError)
	})

	t.Run("Collect Income", func(t *testing.T) {
		svc := &MockService{}
		svc.On("CollectIncome", mock.Anything, "p1").Return(&domain.Player{ID: "p1"}, 35, nil)

		w := httptest.NewRecorder()
		NewPlayerHandler(svc).HandleCollectIncome(w, newRequest(t, "POST", "/", nil, pid()))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 35, decodeBody[IncomeResponse](t, w).Collected)
	})
}

func TestHandleMarkMessageRead(t *testing.T) {
	svc := &MockService{}
	svc.On("MarkMessageRead", mock.Anything, "p1", "m1").Return(&domain.Player{ID: "p1"}, nil)
	svc.On("MarkMessageRead", mock.Anything, "p1", "m2").Return(nil, domain.ErrMessageNotFound)
	h := NewPlayerHandler(svc)

	w := httptest.NewRecorder()
	h.HandleMarkMessageRead(w, newRequest(t, "POST", "/", nil, map[string]string{ParamPlayerID: "p1", ParamMessageID: "m1"}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgMessageRead)

	w = httptest.NewRecorder()
	h.HandleMarkMessageRead(w, newRequest(t, "POST", "/", nil, map[string]string{ParamPlayerID: "p1", ParamMessageID: "m2"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("wrapped: %w", domain.ErrPlayerNotFound), http.StatusNotFound},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrLevelTooLow, http.StatusForbidden},
		{domain.ErrPlayerBusy, http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, msg := mapServiceError(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
		assert.NotEmpty(t, msg)
	}
}
