package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maison/internal/delivery/http/response"
	"maison/internal/domain/entity"
	"maison/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDashboardUsecase records whether a delivery action reached the usecase.
type stubDashboardUsecase struct {
	actionCalled bool
	actionInput  *usecase.DeliveryActionInput
}

func (s *stubDashboardUsecase) Refresh(context.Context) (*usecase.DashboardSnapshot, error) {
	return &usecase.DashboardSnapshot{}, nil
}

func (s *stubDashboardUsecase) Snapshot() *usecase.DashboardSnapshot {
	return &usecase.DashboardSnapshot{}
}

func (s *stubDashboardUsecase) ApplyDeliveryAction(_ context.Context, orderID string, input *usecase.DeliveryActionInput) (*entity.Order, error) {
	s.actionCalled = true
	s.actionInput = input

	return &entity.Order{ID: orderID}, nil
}

func (s *stubDashboardUsecase) PendingDeliveries() []*entity.Order { return nil }

func (s *stubDashboardUsecase) OrdersByDeliveryStatus(context.Context, entity.DeliveryStatus) ([]*entity.Order, error) {
	return nil, nil
}

func (s *stubDashboardUsecase) DeleteOrder(context.Context, string) error    { return nil }
func (s *stubDashboardUsecase) DeleteProduct(context.Context, string) error  { return nil }
func (s *stubDashboardUsecase) DeleteCategory(context.Context, string) error { return nil }
func (s *stubDashboardUsecase) DeleteUser(context.Context, string) error     { return nil }

func (s *stubDashboardUsecase) CreateProduct(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (s *stubDashboardUsecase) UpdateProduct(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (s *stubDashboardUsecase) CreateCategory(_ context.Context, c *entity.Category) (*entity.Category, error) {
	return c, nil
}

func (s *stubDashboardUsecase) UpdateCategory(_ context.Context, c *entity.Category) (*entity.Category, error) {
	return c, nil
}

func (s *stubDashboardUsecase) UpdateUser(_ context.Context, u *entity.User) (*entity.User, error) {
	return u, nil
}

func postDeliveryAction(t *testing.T, stub *stubDashboardUsecase, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/order-1/delivery", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	h := NewDashboardHandler(stub)
	require.NoError(t, h.ApplyDeliveryAction(c))

	return rec
}

// The binder leaves the input nil for an empty or null body; the handler must
// answer with the binding-error envelope, not reach the usecase.
func TestDashboardHandler_ApplyDeliveryAction_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "null"} {
		stub := &stubDashboardUsecase{}
		rec := postDeliveryAction(t, stub, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)

		var envelope response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "INVALID_INPUT", envelope.Error.Code)

		assert.False(t, stub.actionCalled, "usecase must not see a nil action for body %q", body)
	}
}

func TestDashboardHandler_ApplyDeliveryAction_ForwardsValidInput(t *testing.T) {
	stub := &stubDashboardUsecase{}
	rec := postDeliveryAction(t, stub, `{"action":"assign","courier":"Rahim"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.actionInput)
	assert.Equal(t, usecase.ActionAssign, stub.actionInput.Action)
	assert.Equal(t, "Rahim", stub.actionInput.Courier)
}
