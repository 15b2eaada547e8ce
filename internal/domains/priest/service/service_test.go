package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"parish/config"
	"parish/infras/otel/mocks"
	"parish/internal/domains/priest/model"
	"parish/internal/domains/priest/model/dto"
	"parish/internal/domains/priest/service"
	"parish/shared/failure"
	storeMocks "parish/shared/repository/mocks"
)

func TestPriestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storeMocks.NewMockStore[model.Priest](ctrl)
	svc := service.NewPriestService(mockRepo, &config.Config{}, mocks.NewOtel())

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

			request := dto.CreatePriestRequest{Name: "Fr. Jose Garcia", Title: "Parish Priest"}

			response, err := svc.Create(context.Background(), request, "admin@parish.ph")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, response.ID)
			assert.Equal(t, "Fr. Jose Garcia", response.Name)
			assert.True(t, response.Active)
		})
	}
}

func TestPriestService_GetAllReturnsActiveOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storeMocks.NewMockStore[model.Priest](ctrl)
	svc := service.NewPriestService(mockRepo, &config.Config{}, mocks.NewOtel())

	priests := []model.Priest{
		{ID: "p-1", Name: "Fr. Jose Garcia", Active: true},
		{ID: "p-2", Name: "Fr. Miguel Torres", Active: true},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(priests, nil)

	response, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, response.Priests, 2)
	assert.Equal(t, "Fr. Jose Garcia", response.Priests[0].Name)
}

func TestPriestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storeMocks.NewMockStore[model.Priest](ctrl)
	svc := service.NewPriestService(mockRepo, &config.Config{}, mocks.NewOtel())

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Priest{ID: "p-1", Name: "Fr. Jose Garcia"}, nil)

		priest, err := svc.Get(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Fr. Jose Garcia", priest.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Priest{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPriestService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := storeMocks.NewMockStore[model.Priest](ctrl)
	svc := service.NewPriestService(mockRepo, &config.Config{}, mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Priest{ID: "p-1", Name: "Fr. Jose Garcia", Active: true}, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) (int64, error) {
			assert.Equal(t, false, fields[model.FieldActive])

			return 1, nil
		})

	err := svc.Deactivate(context.Background(), "p-1", "admin@parish.ph")
	assert.NoError(t, err)
}
