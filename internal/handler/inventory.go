package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CoinToss_Go/internal/catalog"
	"github.com/osse101/CoinToss_Go/internal/inventory"
	"github.com/osse101/CoinToss_Go/internal/logger"
)

// InventoryHandler serves inventory, catalog and admin stock endpoints
type InventoryHandler struct {
	inventory inventory.Service
	catalog   catalog.Service
}

// NewInventoryHandler creates an InventoryHandler
func NewInventoryHandler(inv inventory.Service, cat catalog.Service) *InventoryHandler {
	return &InventoryHandler{inventory: inv, catalog: cat}
}

// AdjustStockRequest adds or removes units of an item for any owner
type AdjustStockRequest struct {
	OwnerID string `json:"owner_id" validate:"required,max=100"`
	ItemID  string `json:"item_id" validate:"required,max=50"`
	Delta   int    `json:"delta" validate:"required,min=-1000,max=1000"`
}

// AdjustStockResponse reports the resulting quantity
type AdjustStockResponse struct {
	OwnerID  string `json:"owner_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// HandleGetInventory returns the authenticated owner's inventory
func (h *InventoryHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := requireOwner(w, r)
	if !ok {
		return
	}

	lines, err := h.inventory.View(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, r, "Get inventory", err)
		return
	}

	respondJSON(w, http.StatusOK, lines)
}

// HandleListItems returns the catalog
func (h *InventoryHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.List(r.Context())
	if err != nil {
		respondServiceError(w, r, "List items", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// HandleGetItem returns one catalog item
func (h *InventoryHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingItemID)
		return
	}

	item, err := h.catalog.Get(r.Context(), itemID)
	if err != nil {
		respondServiceError(w, r, "Get item", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleAdjustStock applies an admin stock delta
func (h *InventoryHandler) HandleAdjustStock(w http.ResponseWriter, r *http.Request) {
	var req AdjustStockRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adjust stock"); err != nil {
		return
	}

	qty, err := h.inventory.AdjustStock(r.Context(), req.OwnerID, req.ItemID, req.Delta)
	if err != nil {
		respondServiceError(w, r, "Adjust stock", err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgStockAdjusted,
		"owner_id", req.OwnerID,
		"item_id", req.ItemID,
		"delta", req.Delta,
		"quantity", qty)
	respondJSON(w, http.StatusOK, AdjustStockResponse{OwnerID: req.OwnerID, ItemID: req.ItemID, Quantity: qty})
}
