package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benittaafriyie-svg/acity-eats/internal/auth"
	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
	"github.com/benittaafriyie-svg/acity-eats/internal/order"
)

func newTestRouter(t *testing.T, menus menu.Repository, orders order.Repository) (http.Handler, *auth.Tokens) {
	t.Helper()
	tokens := auth.NewTokens("test-secret")
	h := NewRouter(Deps{
		Menu:      menus,
		Orders:    orders,
		Users:     &fakeUserRepo{},
		Tokens:    tokens,
		Publisher: &recordingPublisher{},
		Logger:    testLogger(),
	})
	return h, tokens
}

func TestRouter_MenuIsPublic(t *testing.T) {
	menus := &fakeMenuRepo{
		listFunc: func(ctx context.Context) ([]menu.Item, error) {
			return []menu.Item{{ID: 1, Name: "Jollof Rice", Category: menu.CategoryMeals}}, nil
		},
	}
	h, _ := newTestRouter(t, menus, &fakeOrderRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var items []menu.Item
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "Jollof Rice", items[0].Name)
}

func TestRouter_OrdersRequireToken(t *testing.T) {
	h, _ := newTestRouter(t, &fakeMenuRepo{}, &fakeOrderRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_RejectsGarbageToken(t *testing.T) {
	h, _ := newTestRouter(t, &fakeMenuRepo{}, &fakeOrderRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_AcceptsIssuedToken(t *testing.T) {
	orders := &fakeOrderRepo{
		listByUserFunc: func(ctx context.Context, userID string) ([]order.Order, error) {
			assert.Equal(t, "user-1", userID)
			return []order.Order{{ID: "o1", UserID: userID}}, nil
		},
	}
	h, tokens := newTestRouter(t, &fakeMenuRepo{}, orders)

	token, err := tokens.Issue("user-1", "Ama", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_AdminForbiddenForRegularUser(t *testing.T) {
	h, tokens := newTestRouter(t, &fakeMenuRepo{}, &fakeOrderRepo{})

	token, err := tokens.Issue("user-1", "Ama", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRouter_AdminStatusUpdate(t *testing.T) {
	var gotID string
	var gotStatus order.Status
	orders := &fakeOrderRepo{
		updateStatusFunc: func(ctx context.Context, orderID string, status order.Status) (bool, error) {
			gotID = orderID
			gotStatus = status
			return true, nil
		},
	}
	h, tokens := newTestRouter(t, &fakeMenuRepo{}, orders)

	token, err := tokens.Issue("admin-1", "Chef", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/ord-7/status",
		strings.NewReader(`{"status":"Preparing"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ord-7", gotID)
	assert.Equal(t, order.StatusPreparing, gotStatus)
}

func TestRouter_AdminStatusUpdateRejectsUnknownStatus(t *testing.T) {
	h, tokens := newTestRouter(t, &fakeMenuRepo{}, &fakeOrderRepo{})

	token, err := tokens.Issue("admin-1", "Chef", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/ord-7/status",
		strings.NewReader(`{"status":"Burnt"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRouter_AdminMenuDelete(t *testing.T) {
	var deletedID int64
	menus := &fakeMenuRepo{
		deleteFunc: func(ctx context.Context, id int64) (bool, error) {
			deletedID = id
			return true, nil
		},
	}
	h, tokens := newTestRouter(t, menus, &fakeOrderRepo{})

	token, err := tokens.Issue("admin-1", "Chef", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/menu/42", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(42), deletedID)
}

func TestRouter_Health(t *testing.T) {
	h, _ := newTestRouter(t, &fakeMenuRepo{}, &fakeOrderRepo{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}
