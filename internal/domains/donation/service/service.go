package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=donation_service_mocks

import (
	"context"
	"fmt"
	"parish/config"
	"parish/infras/otel"
	"parish/internal/domains/donation/model"
	"parish/internal/domains/donation/model/dto"
	"parish/shared"
	"parish/shared/cache"
	"parish/shared/constant"
	gDto "parish/shared/dto"
	"parish/shared/failure"
	gRepo "parish/shared/repository"

	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "donations"

type DonationService interface {
	Create(ctx context.Context, request dto.CreateDonationRequest, user string) (dto.DonationResponse, error)
	GetAll(ctx context.Context, search string, params gDto.QueryParams) (dto.GetDonationsResponse, error)
	Get(ctx context.Context, id string) (dto.DonationResponse, error)
}

type donationServiceImpl struct {
	repository gRepo.Store[model.Donation]
	cache      cache.RedisCache
	config     *config.Config
	otel       otel.Otel
}

func NewDonationService(repository gRepo.Store[model.Donation], redisCache cache.RedisCache, config *config.Config, otl otel.Otel) DonationService {
	return &donationServiceImpl{
		repository: repository,
		cache:      redisCache,
		config:     config,
		otel:       otl,
	}
}

func (s *donationServiceImpl) Create(ctx context.Context, request dto.CreateDonationRequest, user string) (response dto.DonationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_donation")
	defer scope.End()
	defer scope.TraceIfError(err)

	donation := request.ToModel(user)

	err = s.repository.Insert(ctx, donation)
	if err != nil {
		log.Error().Err(err).Str("transaction_id", donation.TransactionID).Msg("failed to create donation")

		return response, fmt.Errorf("failed to create donation: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(donation)

	return response, nil
}

func (s *donationServiceImpl) GetAll(ctx context.Context, search string, params gDto.QueryParams) (response dto.GetDonationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "get_donations")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if search != "" {
		filter = gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldDonorName,
					Value:    search,
					Operator: gDto.FilterOperatorLike,
				},
				gDto.Filter{
					ArgName:  "search_transaction_id",
					Field:    model.FieldTransactionID,
					Value:    search,
					Operator: gDto.FilterOperatorLike,
				},
			},
		}
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheKeyPrefix, params, filter)
	if cacheErr := s.cache.Get(ctx, cacheKey, &response); cacheErr == nil {
		return response, nil
	}

	donations, err := s.repository.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get donations")

		return response, fmt.Errorf("failed to get donations: %w", err)
	}

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count donations")

		return response, fmt.Errorf("failed to count donations: %w", err)
	}

	response.FromModels(donations, total, params.Limit)

	if cacheErr := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache donations page")
	}

	return response, nil
}

func (s *donationServiceImpl) Get(ctx context.Context, id string) (response dto.DonationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "get_donation")
	defer scope.End()
	defer scope.TraceIfError(err)

	donation, err := s.repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get donation")

		return response, fmt.Errorf("failed to get donation: %w", err)
	}

	if donation.ID == "" {
		return response, failure.NotFound(model.EntityName)
	}

	response.FromModel(donation)

	return response, nil
}
