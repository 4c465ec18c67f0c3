package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
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

type fakeMenuRepo struct {
	listFunc    func(ctx context.Context) ([]menu.Item, error)
	getByIDFunc func(ctx context.Context, id int64) (*menu.Item, error)
	createFunc  func(ctx context.Context, it *menu.Item) error
	updateFunc  func(ctx context.Context, it *menu.Item) (bool, error)
	deleteFunc  func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeMenuRepo) List(ctx context.Context) ([]menu.Item, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func (f *fakeMenuRepo) GetByID(ctx context.Context, id int64) (*menu.Item, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeMenuRepo) Create(ctx context.Context, it *menu.Item) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, it)
	}
	return nil
}

func (f *fakeMenuRepo) Update(ctx context.Context, it *menu.Item) (bool, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, it)
	}
	return true, nil
}

func (f *fakeMenuRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return true, nil
}

type fakeOrderRepo struct {
	createFunc       func(ctx context.Context, o *order.Order) error
	listByUserFunc   func(ctx context.Context, userID string) ([]order.Order, error)
	listAllFunc      func(ctx context.Context) ([]order.Order, error)
	updateStatusFunc func(ctx context.Context, orderID string, status order.Status) (bool, error)
	statsFunc        func(ctx context.Context) (*order.Stats, error)
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, o)
	}
	o.ID = "ord-1"
	return nil
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	if f.listByUserFunc != nil {
		return f.listByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context) ([]order.Order, error) {
	if f.listAllFunc != nil {
		return f.listAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status order.Status) (bool, error) {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(ctx, orderID, status)
	}
	return true, nil
}

func (f *fakeOrderRepo) Stats(ctx context.Context) (*order.Stats, error) {
	if f.statsFunc != nil {
		return f.statsFunc(ctx)
	}
	return &order.Stats{}, nil
}

type recordingPublisher struct {
	created       []*order.Order
	statusChanges []string
	err           error
}

func (p *recordingPublisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	p.created = append(p.created, o)
	return p.err
}

func (p *recordingPublisher) PublishOrderStatusChanged(ctx context.Context, orderID string, status order.Status) error {
	p.statusChanges = append(p.statusChanges, orderID+":"+string(status))
	return p.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", log.LstdFlags)
}

func authedRequest(method, target, body string, claims *auth.Claims) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), ctxClaims, claims))
	}
	return req
}

func userClaims(userID string) *auth.Claims {
	c := &auth.Claims{Name: "Ama"}
	c.Subject = userID
	return c
}

func availableItem(id int64, name string, price float64) *menu.Item {
	return &menu.Item{ID: id, Name: name, Price: price, Category: menu.CategoryMeals, Available: true}
}

func TestCreateOrder_RecomputesTotalFromCatalog(t *testing.T) {
	var created *order.Order
	orders := &fakeOrderRepo{
		createFunc: func(ctx context.Context, o *order.Order) error {
			o.ID = "ord-42"
			created = o
			return nil
		},
	}
	menus := &fakeMenuRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*menu.Item, error) {
			switch id {
			case 1:
				return availableItem(1, "Jollof Rice", 12), nil
			case 2:
				return availableItem(2, "Sobolo", 5), nil
			default:
				return nil, nil
			}
		},
	}
	pub := &recordingPublisher{}
	h := NewOrderHandler(orders, menus, pub, testLogger())

	// Client sends stale snapshot prices; the server's own prices win.
	body := `{"items":[{"menu_item_id":1,"quantity":2,"price":10},{"menu_item_id":2,"quantity":1,"price":5}],"order_type":"Takeout"}`
	req := authedRequest(http.MethodPost, "/api/orders", body, userClaims("user-1"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ord-42", resp["order_id"])

	require.NotNil(t, created)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, order.StatusPending, created.Status)
	assert.Equal(t, order.TypeTakeout, created.OrderType)
	assert.Equal(t, 29.0, created.TotalAmount) // 12*2 + 5*1
	require.Len(t, created.Items, 2)
	assert.Equal(t, "Jollof Rice", created.Items[0].Name)
	assert.Equal(t, 12.0, created.Items[0].Price)

	require.Len(t, pub.created, 1)
	assert.Equal(t, "ord-42", pub.created[0].ID)
}

func TestCreateOrder_UnknownMenuItem(t *testing.T) {
	menus := &fakeMenuRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*menu.Item, error) {
			return nil, nil
		},
	}
	h := NewOrderHandler(&fakeOrderRepo{}, menus, &recordingPublisher{}, testLogger())

	body := `{"items":[{"menu_item_id":7,"quantity":1,"price":10}]}`
	req := authedRequest(http.MethodPost, "/api/orders", body, userClaims("user-1"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "unknown menu item 7", resp["error"])
}

func TestCreateOrder_UnavailableMenuItem(t *testing.T) {
	menus := &fakeMenuRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*menu.Item, error) {
			it := availableItem(1, "Jollof Rice", 12)
			it.Available = false
			return it, nil
		},
	}
	h := NewOrderHandler(&fakeOrderRepo{}, menus, &recordingPublisher{}, testLogger())

	body := `{"items":[{"menu_item_id":1,"quantity":1,"price":12}]}`
	req := authedRequest(http.MethodPost, "/api/orders", body, userClaims("user-1"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	h := NewOrderHandler(&fakeOrderRepo{}, &fakeMenuRepo{}, &recordingPublisher{}, testLogger())

	req := authedRequest(http.MethodPost, "/api/orders", `{"items":[]}`, userClaims("user-1"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "order has no items", resp["error"])
}

func TestCreateOrder_DefaultsToInhouse(t *testing.T) {
	var created *order.Order
	orders := &fakeOrderRepo{
		createFunc: func(ctx context.Context, o *order.Order) error {
			created = o
			return nil
		},
	}
	menus := &fakeMenuRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*menu.Item, error) {
			return availableItem(id, "Jollof Rice", 12), nil
		},
	}
	h := NewOrderHandler(orders, menus, &recordingPublisher{}, testLogger())

	body := `{"items":[{"menu_item_id":1,"quantity":1,"price":12}]}`
	req := authedRequest(http.MethodPost, "/api/orders", body, userClaims("user-1"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, created)
	assert.Equal(t, order.TypeInhouse, created.OrderType)
}

func TestCreateOrder_PublishFailureDoesNotFailRequest(t *testing.T) {
	menus := &fakeMenuRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*menu.Item, error) {
			return availableItem(id, "Jollof Rice", 12), nil
		},
	}
	pub := &recordingPublisher{err: errors.New("broker down")}
	h := NewOrderHandler(&fakeOrderRepo{}, menus, pub, testLogger())

	body := `{"items":[{"menu_item_id":1,"quantity":1,"price":12}]}`
	req := authedRequest(http.MethodPost, "/api/orders", body, userClaims("user-1"))
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestListMine(t *testing.T) {
	orders := &fakeOrderRepo{
		listByUserFunc: func(ctx context.Context, userID string) ([]order.Order, error) {
			return []order.Order{{ID: "o1", UserID: userID}, {ID: "o2", UserID: userID}}, nil
		},
	}
	h := NewOrderHandler(orders, &fakeMenuRepo{}, &recordingPublisher{}, testLogger())

	req := authedRequest(http.MethodGet, "/api/orders", "", userClaims("user-9"))
	rr := httptest.NewRecorder()

	h.ListMine(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []order.Order
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "user-9", resp[0].UserID)
}

func TestListMine_EmptyIsJSONArray(t *testing.T) {
	h := NewOrderHandler(&fakeOrderRepo{}, &fakeMenuRepo{}, &recordingPublisher{}, testLogger())

	req := authedRequest(http.MethodGet, "/api/orders", "", userClaims("user-9"))
	rr := httptest.NewRecorder()

	h.ListMine(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}
