package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benittaafriyie-svg/acity-eats/internal/menu"
)

func TestMenuList_EmptyIsJSONArray(t *testing.T) {
	h := NewMenuHandler(&fakeMenuRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestMenuList_RepoError(t *testing.T) {
	menus := &fakeMenuRepo{
		listFunc: func(ctx context.Context) ([]menu.Item, error) {
			return nil, errors.New("db down")
		},
	}
	h := NewMenuHandler(menus)

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rr := httptest.NewRecorder()

	h.List(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMenuGetByID(t *testing.T) {
	menus := &fakeMenuRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*menu.Item, error) {
			return availableItem(id, "Sobolo", 5), nil
		},
	}
	h := NewMenuHandler(menus)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/menu/3", nil), "id", "3")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var item menu.Item
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&item))
	assert.Equal(t, int64(3), item.ID)
	assert.Equal(t, "Sobolo", item.Name)
}

func TestMenuGetByID_NotFound(t *testing.T) {
	h := NewMenuHandler(&fakeMenuRepo{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/menu/99", nil), "id", "99")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestMenuGetByID_BadID(t *testing.T) {
	h := NewMenuHandler(&fakeMenuRepo{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/menu/abc", nil), "id", "abc")
	rr := httptest.NewRecorder()

	h.GetByID(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
