package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
	"github.com/benittaafriyie-svg/acity-eats/internal/order"
)

type AdminHandler struct {
	orders    order.Repository
	menuItems menu.Repository
	publisher OrderEventsPublisher
	logger    *log.Logger
}

func NewAdminHandler(orders order.Repository, menuItems menu.Repository, publisher OrderEventsPublisher, logger *log.Logger) *AdminHandler {
	return &AdminHandler{orders: orders, menuItems: menuItems, publisher: publisher, logger: logger}
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := h.orders.ListAll(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing order id")
		return
	}

	var body struct {
		Status order.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !body.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.orders.UpdateStatus(ctx, orderID, body.Status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	if err := h.publisher.PublishOrderStatusChanged(ctx, orderID, body.Status); err != nil {
		h.logger.Printf("publish OrderStatusChanged for %s: %v", orderID, err)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(body.Status)})
}

func (h *AdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	it, ok := decodeMenuItem(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.menuItems.Create(ctx, it); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create menu item")
		return
	}

	writeJSON(w, http.StatusCreated, it)
}

func (h *AdminHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	it, ok := decodeMenuItem(w, r)
	if !ok {
		return
	}
	it.ID = id

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.menuItems.Update(ctx, it)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update menu item")
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	writeJSON(w, http.StatusOK, it)
}

func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.menuItems.Delete(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete menu item")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.orders.Stats(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func decodeMenuItem(w http.ResponseWriter, r *http.Request) (*menu.Item, bool) {
	var it menu.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return nil, false
	}
	if it.Name == "" || it.Category == "" {
		writeError(w, http.StatusBadRequest, "name and category are required")
		return nil, false
	}
	if it.Price < 0 {
		writeError(w, http.StatusBadRequest, "price must not be negative")
		return nil, false
	}
	return &it, true
}
