package contractservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockContractRepo, *MockJobRepo) {
	ctrl := gomock.NewController(t)
	contractRepo := NewMockContractRepo(ctrl)
	jobRepo := NewMockJobRepo(ctrl)
	service := New(contractRepo, jobRepo)
	defer ctrl.Finish()
	return service, contractRepo, jobRepo
}

func TestGetContract(t *testing.T) {
	service, contractRepo, _ := NewMock(t)
	contract := &domain.Contract{ID: 1, Terms: "bla bla bla", Status: domain.ContractStatusInProgress, ClientID: 1, ContractorID: 5}

	tests := []struct {
		name             string
		callerID         int
		prepareMock      func()
		expectedContract *domain.Contract
		expectedError    error
	}{
		{
			name:     "Client reads contract",
			callerID: 1,
			prepareMock: func() {
				contractRepo.EXPECT().GetContract(gomock.Any(), 1).Return(contract, nil)
			},
			expectedContract: contract,
		},
		{
			name:     "Contractor reads contract",
			callerID: 5,
			prepareMock: func() {
				contractRepo.EXPECT().GetContract(gomock.Any(), 1).Return(contract, nil)
			},
			expectedContract: contract,
		},
		{
			name:     "Stranger is forbidden",
			callerID: 2,
			prepareMock: func() {
				contractRepo.EXPECT().GetContract(gomock.Any(), 1).Return(contract, nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:     "Contract not found",
			callerID: 1,
			prepareMock: func() {
				contractRepo.EXPECT().GetContract(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			got, err := service.GetContract(context.Background(), tt.callerID, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedContract, got)
			}
		})
	}
}

func TestListContracts(t *testing.T) {
	service, contractRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Contract
		expectedError error
	}{
		{
			name: "Active contracts",
			prepareMock: func() {
				contractRepo.EXPECT().ListActiveContractsForUser(gomock.Any(), 1).Return([]domain.Contract{{ID: 1}, {ID: 2}}, nil)
			},
			expected: []domain.Contract{{ID: 1}, {ID: 2}},
		},
		{
			name: "No contracts",
			prepareMock: func() {
				contractRepo.EXPECT().ListActiveContractsForUser(gomock.Any(), 1).Return(nil, nil)
			},
			expected: []domain.Contract{},
		},
		{
			name: "Storage error",
			prepareMock: func() {
				contractRepo.EXPECT().ListActiveContractsForUser(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("list contracts of 1: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			got, err := service.ListContracts(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestListUnpaidJobs(t *testing.T) {
	service, contractRepo, jobRepo := NewMock(t)
	jobs := []domain.Job{
		{ID: 3, ContractID: 1, Description: "work", Price: decimal.RequireFromString("121")},
		{ID: 4, ContractID: 2, Description: "work", Price: decimal.RequireFromString("200")},
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Job
		expectedError error
	}{
		{
			name: "Unpaid jobs on active contracts",
			prepareMock: func() {
				contractRepo.EXPECT().ListActiveContractsForUser(gomock.Any(), 1).Return([]domain.Contract{{ID: 1}, {ID: 2}}, nil)
				jobRepo.EXPECT().ListUnpaidJobsForContracts(gomock.Any(), []int{1, 2}).Return(jobs, nil)
			},
			expected: jobs,
		},
		{
			name: "No active contracts",
			prepareMock: func() {
				contractRepo.EXPECT().ListActiveContractsForUser(gomock.Any(), 1).Return(nil, nil)
				jobRepo.EXPECT().ListUnpaidJobsForContracts(gomock.Any(), []int{}).Return(nil, nil)
			},
			expected: []domain.Job{},
		},
		{
			name: "Job storage error",
			prepareMock: func() {
				contractRepo.EXPECT().ListActiveContractsForUser(gomock.Any(), 1).Return([]domain.Contract{{ID: 1}}, nil)
				jobRepo.EXPECT().ListUnpaidJobsForContracts(gomock.Any(), []int{1}).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("list unpaid jobs of 1: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			got, err := service.ListUnpaidJobs(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
