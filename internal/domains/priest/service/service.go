package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=priest_service_mocks

import (
	"context"
	"fmt"
	"parish/config"
	"parish/infras/otel"
	"parish/internal/domains/priest/model"
	"parish/internal/domains/priest/model/dto"
	"parish/shared"
	"parish/shared/constant"
	gDto "parish/shared/dto"
	"parish/shared/failure"
	gRepo "parish/shared/repository"
	"parish/shared/timezone"

	"github.com/rs/zerolog/log"
)

type PriestService interface {
	Create(ctx context.Context, request dto.CreatePriestRequest, user string) (dto.PriestResponse, error)
	GetAll(ctx context.Context) (dto.GetPriestsResponse, error)
	Get(ctx context.Context, id string) (model.Priest, error)
	Deactivate(ctx context.Context, id, user string) error
}

type priestServiceImpl struct {
	repository gRepo.Store[model.Priest]
	config     *config.Config
	otel       otel.Otel
}

func NewPriestService(repository gRepo.Store[model.Priest], config *config.Config, otl otel.Otel) PriestService {
	return &priestServiceImpl{
		repository: repository,
		config:     config,
		otel:       otl,
	}
}

func (s *priestServiceImpl) Create(ctx context.Context, request dto.CreatePriestRequest, user string) (response dto.PriestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_priest")
	defer scope.End()
	defer scope.TraceIfError(err)

	priest := request.ToModel(user)

	err = s.repository.Insert(ctx, priest)
	if err != nil {
		log.Error().Err(err).Str("name", request.Name).Msg("failed to create priest")

		return response, fmt.Errorf("failed to create priest: %w", err)
	}

	response.FromModel(priest)

	return response, nil
}

func (s *priestServiceImpl) GetAll(ctx context.Context) (response dto.GetPriestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "get_priests")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}

	priests, err := s.repository.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get priests")

		return response, fmt.Errorf("failed to get priests: %w", err)
	}

	response.FromModels(priests)

	return response, nil
}

func (s *priestServiceImpl) Get(ctx context.Context, id string) (priest model.Priest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "get_priest")
	defer scope.End()
	defer scope.TraceIfError(err)

	priest, err = s.repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get priest")

		return priest, fmt.Errorf("failed to get priest: %w", err)
	}

	if priest.ID == "" {
		return priest, failure.NotFound(model.EntityName)
	}

	return priest, nil
}

func (s *priestServiceImpl) Deactivate(ctx context.Context, id, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "deactivate_priest")
	defer scope.End()
	defer scope.TraceIfError(err)

	priest, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	_, err = s.repository.Update(ctx, fields, shared.FilterByID(priest.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to deactivate priest")

		return fmt.Errorf("failed to deactivate priest: %w", err)
	}

	return nil
}
