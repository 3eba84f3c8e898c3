package contracts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/pkg/auth"
)

var client = &domain.Profile{ID: 1, FirstName: "Harry", LastName: "Potter", Type: domain.ProfileTypeClient}

func NewMock(t *testing.T) (*ContractHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetContractHandler(t *testing.T) {
	handler, service := NewMock(t)
	contract := &domain.Contract{ID: 1, Terms: "bla bla bla", Status: domain.ContractStatusInProgress, ClientID: 1, ContractorID: 5}

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ContractResponseDTO
	}{
		{
			name: "Contract found",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetContract(gomock.Any(), 1, 1).Return(contract, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ContractResponseDTO{ID: 1, Terms: "bla bla bla", Status: "in_progress", ClientID: 1, ContractorID: 5},
		},
		{
			name:         "Invalid contract id",
			id:           "x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Contract not found",
			id:   "9",
			prepareMock: func() {
				service.EXPECT().GetContract(gomock.Any(), 1, 9).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Not a party",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().GetContract(gomock.Any(), 1, 3).Return(nil, domain.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			r := httptest.NewRequest(http.MethodGet, "/contracts/"+tt.id, nil)
			r = r.WithContext(context.WithValue(auth.WithProfile(r.Context(), client), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.GetContract(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ContractResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestListContractsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Contracts listed",
			prepareMock: func() {
				service.EXPECT().ListContracts(gomock.Any(), 1).Return([]domain.Contract{
					{ID: 1, Status: domain.ContractStatusNew, ClientID: 1, ContractorID: 5},
					{ID: 2, Status: domain.ContractStatusInProgress, ClientID: 1, ContractorID: 6},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No contracts",
			prepareMock: func() {
				service.EXPECT().ListContracts(gomock.Any(), 1).Return([]domain.Contract{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().ListContracts(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/contracts", nil)
			r = r.WithContext(auth.WithProfile(r.Context(), client))
			w := httptest.NewRecorder()
			handler.ListContracts(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.ContractResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
