package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"parish/config"
	"parish/infras/otel/mocks"
	"parish/internal/domains/donation/model"
	"parish/internal/domains/donation/model/dto"
	"parish/internal/domains/donation/service"
	"parish/shared/cache"
	cacheMocks "parish/shared/cache/mocks"
	gDto "parish/shared/dto"
	"parish/shared/failure"
	storeMocks "parish/shared/repository/mocks"
)

func newService(ctrl *gomock.Controller) (service.DonationService, *storeMocks.MockStore[model.Donation], *cacheMocks.MockRedisCache) {
	mockRepo := storeMocks.NewMockStore[model.Donation](ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.NewDonationService(mockRepo, mockCache, cfg, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestDonationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			request := dto.CreateDonationRequest{
				DonorName:     "Pedro Penduko",
				Purpose:       "church restoration",
				PaymentMethod: "gcash",
				Amount:        decimal.NewFromInt(500),
			}

			response, err := svc.Create(context.Background(), request, "pedro@example.com")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Regexp(t, "^DN-", response.TransactionID)
			assert.True(t, decimal.NewFromInt(500).Equal(response.Amount))
		})
	}
}

func TestDonationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	donations := []model.Donation{
		{ID: "d-1", TransactionID: "DN-000001-AAAAAA", DonorName: "Pedro Penduko", Amount: decimal.NewFromInt(500)},
		{ID: "d-2", TransactionID: "DN-000002-BBBBBB", DonorName: "Ana Reyes", Amount: decimal.NewFromInt(1500)},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(donations, nil)
	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	response, err := svc.GetAll(context.Background(), "", gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	require.Len(t, response.Donations, 2)
	assert.Equal(t, 2, response.TotalData)
	assert.True(t, decimal.NewFromInt(2000).Equal(response.TotalAmount))
}

func TestDonationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Donation{ID: "d-1", DonorName: "Pedro Penduko"}, nil)

		response, err := svc.Get(context.Background(), "d-1")
		require.NoError(t, err)
		assert.Equal(t, "Pedro Penduko", response.DonorName)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Donation{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
