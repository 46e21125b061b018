package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/evanlesnar/billetterie/internal/handler/http/mocks"
	"github.com/evanlesnar/billetterie/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	eventID := uuid.New()
	orderID := uuid.New()
	createdAt := time.Now()

	validBody := `{"eventId":"` + eventID.String() + `","customerName":"Jean","customerPhone":"+243811111111","tickets":[{"type":"VIP","quantity":2,"price":10000}],"totalAmount":20000,"paymentMethod":"mpesa"}`

	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_201",
			body: validBody,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&models.Order{
					ID:            orderID,
					EventID:       eventID,
					CustomerName:  "Jean",
					CustomerPhone: "+243811111111",
					Tickets:       []models.Ticket{{Type: "VIP", Quantity: 2, Price: 10000}},
					TotalAmount:   20000,
					PaymentMethod: models.PaymentMethodMpesa,
					PaymentStatus: models.PaymentStatusPending,
					CreatedAt:     createdAt,
				}, models.PaymentInstructions{USSD: "*150#"}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "unknown_event_return_404",
			body: validBody,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, models.PaymentInstructions{}, models.ErrEventNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "invalid_payment_method_return_400",
			body: validBody,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, models.PaymentInstructions{}, models.ErrInvalidPaymentMethod).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "malformed_event_id_return_404",
			body: `{"eventId":"not-a-uuid"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "malformed_body_return_400",
			body: `{`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "internal_error_return_500",
			body: validBody,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, models.PaymentInstructions{}, models.ErrInternalError).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler := NewOrderHandler(tt.setup(t))
			h := handler.CreateOrder()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestOrderHandler_VerifyToken(t *testing.T) {
	orderID := uuid.New()
	eventID := uuid.New()
	tokenValue := "EL-123456-ABCDEF"
	usedAt := time.Now()

	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
		wantToken      string
	}{
		{
			name: "valid_token_return_200",
			body: `{"token":"` + tokenValue + `"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Redeem(gomock.Any(), tokenValue).Return(&models.Order{
					ID:            orderID,
					EventID:       eventID,
					CustomerName:  "Jean",
					CustomerPhone: "+243811111111",
					PaymentMethod: models.PaymentMethodMpesa,
					PaymentStatus: models.PaymentStatusValidated,
					Token:         &tokenValue,
					TokenUsed:     true,
					TokenUsedAt:   &usedAt,
					CreatedAt:     usedAt,
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantToken:      tokenValue,
		},
		{
			name: "unknown_token_return_404",
			body: `{"token":"EL-000000-000000"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, models.ErrTokenNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "missing_token_return_400",
			body: `{}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, models.ErrTokenRequired).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "not_validated_return_400",
			body: `{"token":"` + tokenValue + `"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, models.ErrPaymentNotValidated).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "already_used_return_400",
			body: `{"token":"` + tokenValue + `"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, models.ErrTokenAlreadyUsed).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/orders/verify-token", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler := NewOrderHandler(tt.setup(t))
			h := handler.VerifyToken()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantToken != "" {
				resBody, err := io.ReadAll(res.Body)
				require.NoError(t, err)

				var got orderResponse
				require.NoError(t, json.Unmarshal(resBody, &got))

				assert.Equal(t, tt.wantToken, got.Token)
				assert.True(t, got.TokenUsed)
			}
		})
	}
}

func TestOrderHandler_ValidateOrder(t *testing.T) {
	orderID := uuid.New()
	eventID := uuid.New()
	tokenValue := "EL-654321-FEDCBA"
	validatedAt := time.Now()

	tests := []struct {
		name           string
		orderID        string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
	}{
		{
			name:    "valid_request_return_200",
			orderID: orderID.String(),
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Validate(gomock.Any(), orderID).Return(&models.Order{
					ID:            orderID,
					EventID:       eventID,
					CustomerName:  "Jean",
					CustomerPhone: "+243811111111",
					PaymentMethod: models.PaymentMethodOrange,
					PaymentStatus: models.PaymentStatusValidated,
					Token:         &tokenValue,
					ValidatedAt:   &validatedAt,
					CreatedAt:     validatedAt,
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "already_validated_return_400",
			orderID: orderID.String(),
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, models.ErrOrderAlreadyValidated).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:    "unknown_order_return_404",
			orderID: uuid.New().String(),
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, models.ErrOrderNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:    "malformed_order_id_return_404",
			orderID: "not-a-uuid",
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Validate(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewOrderHandler(tt.setup(t))

			router := chi.NewRouter()
			router.Put("/api/orders/{id}/validate", handler.ValidateOrder())

			req := httptest.NewRequest(http.MethodPut, "/api/orders/"+tt.orderID+"/validate", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	orderID := uuid.New()
	eventID := uuid.New()
	createdAt := time.Now()

	tests := []struct {
		name           string
		query          string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
		wantBody       []*orderResponse
	}{
		{
			name:  "valid_request_return_200",
			query: "?status=pending",
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), models.OrderFilter{Status: models.PaymentStatusPending}).Return([]models.Order{
					{
						ID:            orderID,
						EventID:       eventID,
						CustomerName:  "Jean",
						CustomerPhone: "+243811111111",
						Tickets:       []models.Ticket{{Type: "Standard", Quantity: 1, Price: 5000}},
						TotalAmount:   5000,
						PaymentMethod: models.PaymentMethodAirtel,
						PaymentStatus: models.PaymentStatusPending,
						CreatedAt:     createdAt,
					},
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: []*orderResponse{{
				ID:            orderID.String(),
				EventID:       eventID.String(),
				CustomerName:  "Jean",
				CustomerPhone: "+243811111111",
				Tickets:       []models.Ticket{{Type: "Standard", Quantity: 1, Price: 5000}},
				TotalAmount:   5000,
				PaymentMethod: models.PaymentMethodAirtel,
				PaymentStatus: models.PaymentStatusPending,
				CreatedAt:     createdAt.Format(time.RFC3339),
			}},
		},
		{
			name:  "internal_error_return_500",
			query: "",
			setup: func(t *testing.T) *mocks.MockOrderService {

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, models.ErrInternalError).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders"+tt.query, nil)
			w := httptest.NewRecorder()

			handler := NewOrderHandler(tt.setup(t))
			h := handler.ListOrders()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				resBody, err := io.ReadAll(res.Body)
				require.NoError(t, err)

				var got []*orderResponse
				require.NoError(t, json.Unmarshal(resBody, &got))

				if diff := cmp.Diff(tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
