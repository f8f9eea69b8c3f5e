package handler

import (
	"net/http"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/forge"
)

// BuyRequest is the body of POST /players/{playerID}/buy
type BuyRequest struct {
	ItemKey  string `json:"item_key" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=99"`
}

// ItemRequest names one inventory item
type ItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// UpgradeRequest is the body of POST /players/{playerID}/upgrade
type UpgradeRequest struct {
	ItemID     string `json:"item_id" validate:"required"`
	LuckCharge bool   `json:"luck_charge"`
}

// TradeResponse pairs the player's new state with the trade made
type TradeResponse struct {
	Player *domain.Player `json:"player"`
	Trade  economy.Trade  `json:"trade"`
}

// UseResponse pairs the player's new state with what the item restored
type UseResponse struct {
	Player *domain.Player `json:"player"`
	Use    economy.Use    `json:"use"`
}

// UpgradeResponse pairs the player's new state with the forge outcome
type UpgradeResponse struct {
	Player  *domain.Player `json:"player"`
	Outcome forge.Outcome  `json:"outcome"`
}

// HandleGetShop lists the merchant's goods
// @Summary List shop
// @Tags market
// @Produce json
// @Success 200 {array} economy.ShopEntry
// @Router /shop [get]
func (h *PlayerHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Shop())
}

// HandleBuy purchases goods from the merchant
// @Summary Buy item
// @Tags market
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body BuyRequest true "Good and quantity"
// @Success 200 {object} TradeResponse
// @Failure 400 {object} ErrorResponse
// @Router /players/{playerID}/buy [post]
func (h *PlayerHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req BuyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy item"); err != nil {
		return
	}
	p, trade, err := h.svc.Buy(r.Context(), id, req.ItemKey, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Buy item", err)
		return
	}
	respondJSON(w, http.StatusOK, TradeResponse{Player: p, Trade: trade})
}

// HandleSell sells an inventory item
// @Summary Sell item
// @Tags market
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body ItemRequest true "Item to sell"
// @Success 200 {object} TradeResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/sell [post]
func (h *PlayerHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell item"); err != nil {
		return
	}
	p, trade, err := h.svc.Sell(r.Context(), id, req.ItemID)
	if err != nil {
		respondServiceError(w, r, "Sell item", err)
		return
	}
	respondJSON(w, http.StatusOK, TradeResponse{Player: p, Trade: trade})
}

// HandleDeleteItem discards an inventory item for nothing
// @Summary Delete item
// @Tags market
// @Produce json
// @Param playerID path string true "Player ID"
// @Param itemID path string true "Item ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/items/{itemID} [delete]
func (h *PlayerHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	itemID, ok := pathParam(w, r, ParamItemID)
	if !ok {
		return
	}
	p, err := h.svc.DeleteItem(r.Context(), id, itemID)
	if err != nil {
		respondServiceError(w, r, "Delete item", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleUseItem drinks a potion
// @Summary Use item
// @Tags market
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body ItemRequest true "Consumable to use"
// @Success 200 {object} UseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/use [post]
func (h *PlayerHandler) HandleUseItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Use item"); err != nil {
		return
	}
	p, use, err := h.svc.UseItem(r.Context(), id, req.ItemID)
	if err != nil {
		respondServiceError(w, r, "Use item", err)
		return
	}
	respondJSON(w, http.StatusOK, UseResponse{Player: p, Use: use})
}

// HandleUpgrade attempts to raise an item's upgrade level at the forge
// @Summary Upgrade item
// @Description Charges the forge cost whether or not the attempt succeeds
// @Tags forge
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body UpgradeRequest true "Item and luck charge flag"
// @Success 200 {object} UpgradeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/upgrade [post]
func (h *PlayerHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req UpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upgrade item"); err != nil {
		return
	}
	p, out, err := h.svc.Upgrade(r.Context(), id, req.ItemID, req.LuckCharge)
	if err != nil {
		respondServiceError(w, r, "Upgrade item", err)
		return
	}
	respondJSON(w, http.StatusOK, UpgradeResponse{Player: p, Outcome: out})
}
