//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"commerce-order-core/internal/domain/purchase"
	"commerce-order-core/internal/handler/api"
	resdto "commerce-order-core/internal/handler/dto/response"
	"commerce-order-core/internal/pkg/errs"
	"commerce-order-core/internal/usecase/commands"
	"commerce-order-core/internal/usecase/queries"
	"commerce-order-core/tests/common/builder"
	"commerce-order-core/tests/common/httptest"
	"commerce-order-core/tests/common/testutil"
	commandsmock "commerce-order-core/tests/mock/commands"
	queriesmock "commerce-order-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	mockQueries  *queriesmock.MockPurchaseQueries
	handler      *api.PurchaseHandler
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPurchaseQueries(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/purchases", s.handler.Place)
	s.router.GET("/purchases/:id", s.handler.Get)
	s.router.POST("/orders", s.handler.PlaceOrder)
	s.router.GET("/orders/pending", s.handler.ListPending)
	s.router.POST("/orders/:id/complete", s.handler.CompleteOrder)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

// ================================================================================
// TestPlace
// ================================================================================

func (s *PurchaseHandlerTestSuite) TestPlace() {
	url := "/purchases"
	b := builder.NewPurchaseBuilder()
	reqBody := b.BuildRequestDTO()
	placed := b.BuildDomain()

	s.Run("success: returns 201 with price snapshot", func() {
		s.mockCommands.EXPECT().
			PlacePurchase(gomock.Any(), commands.PlacePurchaseCommand{
				UserID: b.UserID, ProductID: b.ProductID, Quantity: b.Quantity,
			}).
			Return(placed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(placed.ID(), body.ID)
		s.Equal("49.90", body.UnitPrice)
		s.Equal("99.80", body.TotalPrice)
		s.Equal("COMPLETED", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/purchases/" + placed.ID().String()})
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing user_id", mutate: testutil.Field("user_id", nil)},
			{name: "missing product_id", mutate: testutil.Field("product_id", nil)},
			{name: "user_id not a uuid", mutate: testutil.Field("user_id", "abc")},
			{name: "quantity not a number", mutate: testutil.Field("quantity", "three")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: invalid json", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "{")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"user not found", errs.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
			{"product not found", errs.Mark(errors.New("no rows"), errs.ErrProductNotFound), http.StatusNotFound, "PRODUCT_NOT_FOUND"},
			{"invalid quantity", errs.ErrInvalidQuantity, http.StatusBadRequest, "INVALID_QUANTITY"},
			{"insufficient stock", errs.Wrap(errs.ErrInsufficientStock, "3 left"), http.StatusConflict, "INSUFFICIENT_STOCK"},
			{"infrastructure", errs.Mark(errors.New("pool closed"), errs.ErrInfrastructure), http.StatusServiceUnavailable, "INFRASTRUCTURE"},
			{"unclassified", errors.New("boom"), http.StatusInternalServerError, ""},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PlacePurchase(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

// ================================================================================
// TestPlaceOrder / TestCompleteOrder
// ================================================================================

func (s *PurchaseHandlerTestSuite) TestPlaceOrder() {
	b := builder.NewPurchaseBuilder().WithStatus(purchase.StatusPending)
	pending := b.BuildDomain()

	s.Run("success: returns 201 pending purchase", func() {
		s.mockCommands.EXPECT().PlacePendingPurchase(gomock.Any(), gomock.Any()).Return(pending, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", b.BuildRequestDTO())

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("PENDING", body.Status)
	})

	s.Run("error: insufficient stock is 409", func() {
		s.mockCommands.EXPECT().PlacePendingPurchase(gomock.Any(), gomock.Any()).Return(nil, errs.ErrInsufficientStock).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", b.BuildRequestDTO())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
	})
}

func (s *PurchaseHandlerTestSuite) TestCompleteOrder() {
	completed := builder.NewPurchaseBuilder().BuildDomain()
	url := "/orders/" + completed.ID().String() + "/complete"

	s.Run("success", func() {
		s.mockCommands.EXPECT().CompletePurchase(gomock.Any(), completed.ID()).Return(completed, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body.Status)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/not-a-uuid/complete", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: already completed is 409", func() {
		s.mockCommands.EXPECT().CompletePurchase(gomock.Any(), completed.ID()).Return(nil, errs.ErrInvalidStatusTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "INVALID_STATUS_TRANSITION")
	})
}

// ================================================================================
// TestGet / TestListPending
// ================================================================================

func (s *PurchaseHandlerTestSuite) TestGet() {
	view := builder.NewPurchaseBuilder().BuildView()
	url := "/purchases/" + view.ID.String()

	s.Run("success: returns joined view", func() {
		s.mockQueries.EXPECT().GetPurchase(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.PurchaseViewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.UserEmail, body.UserEmail)
		s.Equal(view.ProductName, body.ProductName)
		s.Equal("99.80", body.TotalPrice)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetPurchase(gomock.Any(), view.ID).Return(nil, errs.ErrPurchaseNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Purchase not found")
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases/123", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *PurchaseHandlerTestSuite) TestListPending() {
	first := builder.NewPurchaseBuilder().WithStatus(purchase.StatusPending).BuildView()
	second := builder.NewPurchaseBuilder().WithStatus(purchase.StatusPending).BuildView()
	next := &queries.Cursor{After: queries.EncodeAfterCursor(second.PurchasedAt, second.ID)}

	s.Run("success: first page with cursor", func() {
		s.mockQueries.EXPECT().ListPendingPurchases(gomock.Any(), (*queries.Cursor)(nil), 2).
			Return([]*queries.PurchaseView{first, second}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/pending?limit=2", nil)

		var body resdto.PendingPurchasesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal(next.After, body.NextCursor)
	})

	s.Run("success: follows cursor with default limit", func() {
		s.mockQueries.EXPECT().ListPendingPurchases(gomock.Any(), next, 0).
			Return([]*queries.PurchaseView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/pending?after="+next.After, nil)

		var body resdto.PendingPurchasesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Empty(body.NextCursor)
	})

	s.Run("error: invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/pending?limit=-1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: invalid cursor", func() {
		s.mockQueries.EXPECT().ListPendingPurchases(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Wrap(queries.ErrInvalidCursor, "bad base64")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/pending?after=zzz", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

func (s *PurchaseHandlerTestSuite) TestPlace_DoesNotCallUseCaseOnBadID() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/purchases",
		map[string]any{"user_id": uuid.Nil.String(), "product_id": uuid.New().String(), "quantity": 1})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
}
