package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"parish/config"
	"parish/infras/otel/mocks"
	s3Mocks "parish/infras/s3/mocks"
	eventMocks "parish/internal/domains/booking/event/mocks"
	"parish/internal/domains/booking/model"
	"parish/internal/domains/booking/model/dto"
	"parish/internal/domains/booking/pipeline"
	"parish/internal/domains/booking/repository"
	"parish/internal/domains/booking/service"
	priestModel "parish/internal/domains/priest/model"
	priestMocks "parish/internal/domains/priest/service/mocks"
	"parish/shared/cache"
	cacheMocks "parish/shared/cache/mocks"
	gDto "parish/shared/dto"
	"parish/shared/failure"
	gModel "parish/shared/model"
	storeMocks "parish/shared/repository/mocks"
)

type serviceMocks struct {
	wedding      *storeMocks.MockStore[model.WeddingRecord]
	baptism      *storeMocks.MockStore[model.BaptismRecord]
	burial       *storeMocks.MockStore[model.BurialRecord]
	communion    *storeMocks.MockStore[model.CommunionRecord]
	confirmation *storeMocks.MockStore[model.ConfirmationRecord]
	anointing    *storeMocks.MockStore[model.AnointingRecord]
	confession   *storeMocks.MockStore[model.ConfessionRecord]
	priests      *priestMocks.MockPriestService
	publisher    *eventMocks.MockPublisher
	cache        *cacheMocks.MockRedisCache
	s3           *s3Mocks.MockS3
}

func newService(ctrl *gomock.Controller) (service.BookingService, *serviceMocks) {
	m := &serviceMocks{
		wedding:      storeMocks.NewMockStore[model.WeddingRecord](ctrl),
		baptism:      storeMocks.NewMockStore[model.BaptismRecord](ctrl),
		burial:       storeMocks.NewMockStore[model.BurialRecord](ctrl),
		communion:    storeMocks.NewMockStore[model.CommunionRecord](ctrl),
		confirmation: storeMocks.NewMockStore[model.ConfirmationRecord](ctrl),
		anointing:    storeMocks.NewMockStore[model.AnointingRecord](ctrl),
		confession:   storeMocks.NewMockStore[model.ConfessionRecord](ctrl),
		priests:      priestMocks.NewMockPriestService(ctrl),
		publisher:    eventMocks.NewMockPublisher(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
	}

	// Invalidation runs on a goroutine after mutations, so it may or may not
	// land before the test finishes.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo := &repository.Bookings{
		Wedding:      m.wedding,
		Baptism:      m.baptism,
		Burial:       m.burial,
		Communion:    m.communion,
		Confirmation: m.confirmation,
		Anointing:    m.anointing,
		Confession:   m.confession,
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.NewBookingService(repo, m.priests, m.publisher, m.cache, m.s3, cfg, mocks.NewOtel())

	return svc, m
}

func pendingWedding(scheduleDate time.Time) model.WeddingRecord {
	return model.WeddingRecord{
		BookingCore: model.BookingCore{
			ID:            "w-1",
			TransactionID: "WD-000001-AAAAAA",
			Status:        model.StatusPending,
			RequesterName: "Juan Dela Cruz",
			ContactNumber: "09171234567",
			Email:         "juan@example.com",
			ScheduleDate:  &scheduleDate,
			ScheduleTime:  "15:00",
			Documents:     model.DocumentSet{},
			Metadata: gModel.Metadata{
				CreatedAt: time.Now().AddDate(0, -1, 0),
				CreatedBy: "juan@example.com",
			},
		},
		GroomFirstName: "Juan",
		GroomLastName:  "Dela Cruz",
		BrideFirstName: "Maria",
		BrideLastName:  "Santos",
	}
}

func validWeddingRequest() dto.CreateWeddingRequest {
	return dto.CreateWeddingRequest{
		CreateBookingCore: dto.CreateBookingCore{
			RequesterName: "Juan Dela Cruz",
			ContactNumber: "09171234567",
			Email:         "juan@example.com",
			ScheduleDate:  "2026-09-20",
			ScheduleTime:  "15:00",
		},
		GroomFirstName: "Juan",
		GroomLastName:  "Dela Cruz",
		BrideFirstName: "Maria",
		BrideLastName:  "Santos",
		CivillyMarried: "no",
	}
}

func TestBookingService_CreateWedding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	tests := []struct {
		name      string
		mutate    func(*dto.CreateWeddingRequest)
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful creation",
			mutate: func(r *dto.CreateWeddingRequest) {},
			setupMock: func() {
				m.wedding.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "malformed schedule date",
			mutate:    func(r *dto.CreateWeddingRequest) { r.ScheduleDate = "next friday" },
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "repository error",
			mutate: func(r *dto.CreateWeddingRequest) {},
			setupMock: func() {
				m.wedding.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			request := validWeddingRequest()
			tt.mutate(&request)

			response, err := svc.CreateWedding(context.Background(), request, "juan@example.com")

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "pending", response.Status)
			assert.Regexp(t, "^WD-", response.TransactionID)
			assert.Equal(t, "Juan Dela Cruz & Maria Santos", response.DisplayName)
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)
	past := time.Now().AddDate(-1, 0, 0)

	priest := priestModel.Priest{ID: "p-1", Name: "Fr. Jose Garcia", Active: true}

	tests := []struct {
		name      string
		request   dto.ConfirmBookingRequest
		setupMock func(m *serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "successful confirmation",
			request: dto.ConfirmBookingRequest{PriestID: "p-1"},
			setupMock: func(m *serviceMocks) {
				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingWedding(future), nil)
				m.priests.EXPECT().
					Get(gomock.Any(), "p-1").
					Return(priest, nil)
				m.wedding.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, model.StatusConfirmed, fields["status"])
						assert.Equal(t, "p-1", fields["priest_id"])
						assert.Equal(t, "Fr. Jose Garcia", fields["priest_name"])
						assert.Equal(t, "staff@parish.ph", fields["modified_by"])

						return 1, nil
					})
				m.publisher.EXPECT().
					PublishStatusChanged(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "priest not selected",
			request:   dto.ConfirmBookingRequest{},
			setupMock: func(m *serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:    "booking not found",
			request: dto.ConfirmBookingRequest{PriestID: "p-1"},
			setupMock: func(m *serviceMocks) {
				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.WeddingRecord{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:    "already resolved",
			request: dto.ConfirmBookingRequest{PriestID: "p-1"},
			setupMock: func(m *serviceMocks) {
				record := pendingWedding(future)
				record.Status = model.StatusCancelled

				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(record, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:    "schedule already passed",
			request: dto.ConfirmBookingRequest{PriestID: "p-1"},
			setupMock: func(m *serviceMocks) {
				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingWedding(past), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:    "deactivated priest",
			request: dto.ConfirmBookingRequest{PriestID: "p-9"},
			setupMock: func(m *serviceMocks) {
				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingWedding(future), nil)
				m.priests.EXPECT().
					Get(gomock.Any(), "p-9").
					Return(priestModel.Priest{ID: "p-9", Name: "Fr. Retired", Active: false}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "lost concurrent resolution",
			request: dto.ConfirmBookingRequest{PriestID: "p-1"},
			setupMock: func(m *serviceMocks) {
				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingWedding(future), nil)
				m.priests.EXPECT().
					Get(gomock.Any(), "p-1").
					Return(priest, nil)
				m.wedding.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			tt.setupMock(m)

			response, err := svc.Confirm(context.Background(), model.SacramentWedding, "w-1", tt.request, "staff@parish.ph")

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "confirmed", response.Status)
			require.NotNil(t, response.PriestName)
			assert.Equal(t, "Fr. Jose Garcia", *response.PriestName)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)

	tests := []struct {
		name      string
		setupMock func(m *serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful cancellation",
			setupMock: func(m *serviceMocks) {
				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingWedding(future), nil)
				m.wedding.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, model.StatusCancelled, fields["status"])
						assert.NotContains(t, fields, "priest_id")
						assert.NotContains(t, fields, "priest_name")

						return 1, nil
					})
				m.publisher.EXPECT().
					PublishStatusChanged(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "already confirmed",
			setupMock: func(m *serviceMocks) {
				record := pendingWedding(future)
				record.Status = model.StatusConfirmed

				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(record, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "publish failure is not fatal",
			setupMock: func(m *serviceMocks) {
				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingWedding(future), nil)
				m.wedding.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
				m.publisher.EXPECT().
					PublishStatusChanged(gomock.Any(), gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			tt.setupMock(m)

			response, err := svc.Cancel(context.Background(), model.SacramentWedding, "w-1", "staff@parish.ph")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "cancelled", response.Status)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	future := time.Now().AddDate(1, 0, 0)

	confirmed := pendingWedding(future)
	confirmed.ID = "w-2"
	confirmed.TransactionID = "WD-000002-BBBBBB"
	confirmed.Status = model.StatusConfirmed

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	m.wedding.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.WeddingRecord{pendingWedding(future), confirmed}, nil)
	m.baptism.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.burial.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.communion.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.confirmation.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.anointing.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.confession.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	criteria := pipeline.Criteria{Status: "pending"}
	params := gDto.QueryParams{Page: 1, Limit: 10}

	response, err := svc.GetAll(context.Background(), criteria, params)
	require.NoError(t, err)

	// Status tab counts cover the whole working set, the list only the tab.
	assert.Equal(t, pipeline.Counts{Total: 2, Pending: 1, Confirmed: 1}, response.Counts)
	require.Len(t, response.Bookings, 1)
	assert.Equal(t, "pending", response.Bookings[0].Status)
	assert.Equal(t, 1, response.TotalData)
}

func TestBookingService_GetAllScopedToSacrament(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	m.baptism.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.BaptismRecord{}, nil)
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	response, err := svc.GetAll(context.Background(), pipeline.Criteria{Sacrament: "baptism"}, gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, response.Bookings)
}

func TestBookingService_GetAllDateTabCacheKeyCarriesTimeBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	var cachedKey string

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ any) error {
			cachedKey = key

			return cache.Nil
		})

	m.wedding.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.baptism.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.burial.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.communion.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.confirmation.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.anointing.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.confession.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.GetAll(context.Background(), pipeline.Criteria{DateTab: pipeline.DateTabActive}, gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	// a minute-resolution bucket ends the key so due-instant crossings age out
	assert.Regexp(t, `:\d{12}$`, cachedKey)
}

func TestBookingService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	future := time.Now().AddDate(1, 0, 0)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)
	m.wedding.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.WeddingRecord{pendingWedding(future)}, nil)
	m.baptism.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.burial.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.communion.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.confirmation.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.anointing.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.confession.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	response, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, pipeline.Counts{Total: 1, Pending: 1}, response.Counts)
	assert.Equal(t, 1, response.BySacrament["wedding"])
	assert.Equal(t, 0, response.BySacrament["confession"])
	assert.Len(t, response.BySacrament, len(model.AllSacraments()))
}

func TestBookingService_SetDocuments(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)

	tests := []struct {
		name      string
		request   dto.UpdateDocumentsRequest
		setupMock func(m *serviceMocks)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "marks requirement supplied",
			request: dto.UpdateDocumentsRequest{Documents: map[string]bool{"cenomar": true}},
			setupMock: func(m *serviceMocks) {
				m.wedding.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingWedding(future), nil)
				m.wedding.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
			},
		},
		{
			name:      "unknown requirement",
			request:   dto.UpdateDocumentsRequest{Documents: map[string]bool{"drivers_license": true}},
			setupMock: func(m *serviceMocks) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newService(ctrl)
			tt.setupMock(m)

			response, err := svc.SetDocuments(context.Background(), model.SacramentWedding, "w-1", tt.request, "staff@parish.ph")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, response.Documents["cenomar"].Supplied)
		})
	}
}

func TestBookingService_UploadDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	future := time.Now().AddDate(1, 0, 0)
	fileHeader := &multipart.FileHeader{Filename: "cenomar.pdf"}

	m.wedding.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(pendingWedding(future), nil)
	m.s3.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), fileHeader, "WD-000001-AAAAAA_cenomar").
		Return("https://bucket.s3.amazonaws.com/documents/WD-000001-AAAAAA_cenomar.pdf", nil)
	m.wedding.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(1), nil)

	response, err := svc.UploadDocument(context.Background(), model.SacramentWedding, "w-1", "cenomar", nil, fileHeader, "staff@parish.ph")
	require.NoError(t, err)

	require.Contains(t, response.Documents, "cenomar")
	assert.True(t, response.Documents["cenomar"].Supplied)
	assert.NotEmpty(t, response.Documents["cenomar"].URL)
}

func TestBookingService_UploadDocumentUnknownRequirement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newService(ctrl)

	_, err := svc.UploadDocument(context.Background(), model.SacramentWedding, "w-1", "drivers_license", nil, nil, "staff@parish.ph")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
