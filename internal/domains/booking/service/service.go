package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=booking_service_mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"parish/config"
	"parish/infras/otel"
	"parish/infras/s3"
	"parish/internal/domains/booking/event"
	"parish/internal/domains/booking/model"
	"parish/internal/domains/booking/model/dto"
	"parish/internal/domains/booking/pipeline"
	"parish/internal/domains/booking/repository"
	"parish/internal/domains/booking/requirements"
	priestService "parish/internal/domains/priest/service"
	"parish/shared"
	"parish/shared/cache"
	"parish/shared/constant"
	gDto "parish/shared/dto"
	"parish/shared/failure"
	"parish/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyPrefix      = "bookings"
	dateTabBucketFormat = "200601021504"
)

type BookingService interface {
	CreateWedding(ctx context.Context, request dto.CreateWeddingRequest, user string) (dto.BookingResponse, error)
	CreateBaptism(ctx context.Context, request dto.CreateBaptismRequest, user string) (dto.BookingResponse, error)
	CreateBurial(ctx context.Context, request dto.CreateBurialRequest, user string) (dto.BookingResponse, error)
	CreateCommunion(ctx context.Context, request dto.CreateCommunionRequest, user string) (dto.BookingResponse, error)
	CreateConfirmation(ctx context.Context, request dto.CreateConfirmationRequest, user string) (dto.BookingResponse, error)
	CreateAnointing(ctx context.Context, request dto.CreateAnointingRequest, user string) (dto.BookingResponse, error)
	CreateConfession(ctx context.Context, request dto.CreateConfessionRequest, user string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, criteria pipeline.Criteria, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, sacrament model.Sacrament, id string) (dto.BookingResponse, error)
	Summary(ctx context.Context) (dto.SummaryResponse, error)
	Confirm(ctx context.Context, sacrament model.Sacrament, id string, request dto.ConfirmBookingRequest, user string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, sacrament model.Sacrament, id, user string) (dto.BookingResponse, error)
	SetDocuments(ctx context.Context, sacrament model.Sacrament, id string, request dto.UpdateDocumentsRequest, user string) (dto.BookingResponse, error)
	UploadDocument(ctx context.Context, sacrament model.Sacrament, id, requirementID string, file multipart.File, fileHeader *multipart.FileHeader, user string) (dto.BookingResponse, error)
}

type bookingServiceImpl struct {
	repository *repository.Bookings
	priests    priestService.PriestService
	publisher  event.Publisher
	cache      cache.RedisCache
	s3         s3.S3
	config     *config.Config
	otel       otel.Otel
}

func NewBookingService(
	repository *repository.Bookings,
	priests priestService.PriestService,
	publisher event.Publisher,
	redisCache cache.RedisCache,
	s3Client s3.S3,
	config *config.Config,
	otl otel.Otel,
) BookingService {
	return &bookingServiceImpl{
		repository: repository,
		priests:    priests,
		publisher:  publisher,
		cache:      redisCache,
		s3:         s3Client,
		config:     config,
		otel:       otl,
	}
}

func (s *bookingServiceImpl) CreateWedding(ctx context.Context, request dto.CreateWeddingRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_wedding_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := request.ToRecord(user)
	if err != nil {
		return response, failure.BadRequest(err)
	}

	if err = s.repository.Wedding.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("transaction_id", record.TransactionID).Msg("failed to create wedding booking")

		return response, fmt.Errorf("failed to create wedding booking: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(record.Booking(), timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) CreateBaptism(ctx context.Context, request dto.CreateBaptismRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_baptism_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := request.ToRecord(user)
	if err != nil {
		return response, failure.BadRequest(err)
	}

	if err = s.repository.Baptism.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("transaction_id", record.TransactionID).Msg("failed to create baptism booking")

		return response, fmt.Errorf("failed to create baptism booking: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(record.Booking(), timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) CreateBurial(ctx context.Context, request dto.CreateBurialRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_burial_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := request.ToRecord(user)
	if err != nil {
		return response, failure.BadRequest(err)
	}

	if err = s.repository.Burial.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("transaction_id", record.TransactionID).Msg("failed to create burial booking")

		return response, fmt.Errorf("failed to create burial booking: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(record.Booking(), timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) CreateCommunion(ctx context.Context, request dto.CreateCommunionRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_communion_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := request.ToRecord(user)
	if err != nil {
		return response, failure.BadRequest(err)
	}

	if err = s.repository.Communion.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("transaction_id", record.TransactionID).Msg("failed to create communion booking")

		return response, fmt.Errorf("failed to create communion booking: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(record.Booking(), timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) CreateConfirmation(ctx context.Context, request dto.CreateConfirmationRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_confirmation_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := request.ToRecord(user)
	if err != nil {
		return response, failure.BadRequest(err)
	}

	if err = s.repository.Confirmation.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("transaction_id", record.TransactionID).Msg("failed to create confirmation booking")

		return response, fmt.Errorf("failed to create confirmation booking: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(record.Booking(), timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) CreateAnointing(ctx context.Context, request dto.CreateAnointingRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_anointing_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := request.ToRecord(user)
	if err != nil {
		return response, failure.BadRequest(err)
	}

	if err = s.repository.Anointing.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("transaction_id", record.TransactionID).Msg("failed to create anointing booking")

		return response, fmt.Errorf("failed to create anointing booking: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(record.Booking(), timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) CreateConfession(ctx context.Context, request dto.CreateConfessionRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "create_confession_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := request.ToRecord(user)
	if err != nil {
		return response, failure.BadRequest(err)
	}

	if err = s.repository.Confession.Insert(ctx, record); err != nil {
		log.Error().Err(err).Str("transaction_id", record.TransactionID).Msg("failed to create confession booking")

		return response, fmt.Errorf("failed to create confession booking: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(record.Booking(), timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) GetAll(ctx context.Context, criteria pipeline.Criteria, params gDto.QueryParams) (response dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "get_bookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := s.listCacheKey(criteria, params)
	if cacheErr := s.cache.Get(ctx, cacheKey, &response); cacheErr == nil {
		return response, nil
	}

	merged, err := s.collect(ctx, criteria.Sacrament)
	if err != nil {
		return response, err
	}

	now := timezone.Now()

	// Counts for the status tabs keep every other criterion applied so the
	// tab badges always agree with the list beneath them.
	baseCriteria := criteria
	baseCriteria.Status = ""

	base := pipeline.Apply(merged, baseCriteria, now)
	counts := pipeline.Aggregate(base)

	filtered := base
	if criteria.Status != "" {
		filtered = pipeline.Apply(base, pipeline.Criteria{Status: criteria.Status}, now)
	}

	page := pipeline.Paginate(filtered, params.Page, params.Limit)
	response.FromModels(page, counts, len(filtered), params.Limit, now)

	if cacheErr := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache bookings page")
	}

	return response, nil
}

// listCacheKey derives the cache key for a bookings page. Date-tab results
// change as bookings cross their due instant, so those keys carry a
// minute-resolution bucket and age out instead of serving a stale
// classification for the whole TTL.
func (s *bookingServiceImpl) listCacheKey(criteria pipeline.Criteria, params gDto.QueryParams) string {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheKeyPrefix, params, criteria)

	if criteria.DateTab == pipeline.DateTabActive || criteria.DateTab == pipeline.DateTabPast {
		return shared.BuildCacheKey(cacheKey, timezone.Now().Format(dateTabBucketFormat))
	}

	return cacheKey
}

func (s *bookingServiceImpl) Get(ctx context.Context, sacrament model.Sacrament, id string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "get_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetchOne(ctx, sacrament, id)
	if err != nil {
		return response, err
	}

	response.FromModel(booking, timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) Summary(ctx context.Context) (response dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "get_bookings_summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, "summary")
	if cacheErr := s.cache.Get(ctx, cacheKey, &response); cacheErr == nil {
		return response, nil
	}

	merged, err := s.collect(ctx, constant.Empty)
	if err != nil {
		return response, err
	}

	response.Counts = pipeline.Aggregate(merged)
	response.BySacrament = make(map[string]int, len(model.AllSacraments()))

	for _, sacrament := range model.AllSacraments() {
		response.BySacrament[string(sacrament)] = 0
	}

	for i := range merged {
		response.BySacrament[string(merged[i].Sacrament)]++
	}

	if cacheErr := s.cache.Save(ctx, cacheKey, response, s.config.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache bookings summary")
	}

	return response, nil
}

func (s *bookingServiceImpl) Confirm(ctx context.Context, sacrament model.Sacrament, id string, request dto.ConfirmBookingRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "confirm_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if request.PriestID == "" {
		return response, failure.BadRequestFromString("select a priest before confirming")
	}

	booking, err := s.fetchOne(ctx, sacrament, id)
	if err != nil {
		return response, err
	}

	if !model.CanTransition(booking.Status, model.StatusConfirmed) {
		return response, failure.Conflict(fmt.Sprintf("booking %s is already %s", booking.TransactionID, booking.Status))
	}

	now := timezone.Now()
	if booking.IsPast(now) {
		return response, failure.Conflict("booking schedule has already passed")
	}

	priest, err := s.priests.Get(ctx, request.PriestID)
	if err != nil {
		return response, err
	}

	if !priest.Active {
		return response, failure.BadRequestFromString(fmt.Sprintf("priest %s is no longer active", priest.Name))
	}

	fields := shared.TransformFields(statusTransition{
		Status:     model.StatusConfirmed,
		PriestID:   priest.ID,
		PriestName: priest.Name,
	}, user)

	rows, err := s.repository.Mutator(sacrament).Update(ctx, fields, pendingFilter(sacrament, id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to confirm booking")

		return response, fmt.Errorf("failed to confirm booking: %w", err)
	}

	// Zero rows means another staff member resolved the booking between our
	// read and this update.
	if rows == 0 {
		return response, failure.Conflict("booking was already resolved")
	}

	booking.Status = model.StatusConfirmed
	booking.PriestID = &priest.ID
	booking.PriestName = &priest.Name

	if publishErr := s.publisher.PublishStatusChanged(ctx, booking); publishErr != nil {
		log.Warn().Err(publishErr).Str("transaction_id", booking.TransactionID).Msg("booking confirmed but status event not published")
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(booking, now)

	return response, nil
}

func (s *bookingServiceImpl) Cancel(ctx context.Context, sacrament model.Sacrament, id, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "cancel_booking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.fetchOne(ctx, sacrament, id)
	if err != nil {
		return response, err
	}

	if !model.CanTransition(booking.Status, model.StatusCancelled) {
		return response, failure.Conflict(fmt.Sprintf("booking %s is already %s", booking.TransactionID, booking.Status))
	}

	now := timezone.Now()

	fields := shared.TransformFields(statusTransition{Status: model.StatusCancelled}, user)

	rows, err := s.repository.Mutator(sacrament).Update(ctx, fields, pendingFilter(sacrament, id))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to cancel booking")

		return response, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if rows == 0 {
		return response, failure.Conflict("booking was already resolved")
	}

	booking.Status = model.StatusCancelled

	if publishErr := s.publisher.PublishStatusChanged(ctx, booking); publishErr != nil {
		log.Warn().Err(publishErr).Str("transaction_id", booking.TransactionID).Msg("booking cancelled but status event not published")
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	response.FromModel(booking, now)

	return response, nil
}

func (s *bookingServiceImpl) SetDocuments(ctx context.Context, sacrament model.Sacrament, id string, request dto.UpdateDocumentsRequest, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "set_booking_documents")
	defer scope.End()
	defer scope.TraceIfError(err)

	for requirementID := range request.Documents {
		if !requirements.IsKnown(sacrament, requirementID) {
			return response, failure.BadRequestFromString(fmt.Sprintf("unknown requirement %q for %s", requirementID, sacrament))
		}
	}

	booking, err := s.fetchOne(ctx, sacrament, id)
	if err != nil {
		return response, err
	}

	if booking.Documents == nil {
		booking.Documents = model.DocumentSet{}
	}

	for requirementID, supplied := range request.Documents {
		status := booking.Documents[requirementID]
		status.Supplied = supplied
		booking.Documents[requirementID] = status
	}

	err = s.updateDocuments(ctx, sacrament, &booking, user)
	if err != nil {
		return response, err
	}

	response.FromModel(booking, timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) UploadDocument(ctx context.Context, sacrament model.Sacrament, id, requirementID string, file multipart.File, fileHeader *multipart.FileHeader, user string) (response dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "upload_booking_document")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !requirements.IsKnown(sacrament, requirementID) {
		return response, failure.BadRequestFromString(fmt.Sprintf("unknown requirement %q for %s", requirementID, sacrament))
	}

	booking, err := s.fetchOne(ctx, sacrament, id)
	if err != nil {
		return response, err
	}

	fileName := fmt.Sprintf("%s_%s", booking.TransactionID, requirementID)

	url, err := s.s3.UploadFile(ctx, s.config.External.S3.BucketName, s.config.External.S3.DocumentDir, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Str("transaction_id", booking.TransactionID).Str("requirement", requirementID).Msg("failed to upload booking document")

		return response, fmt.Errorf("failed to upload booking document: %w", err)
	}

	if booking.Documents == nil {
		booking.Documents = model.DocumentSet{}
	}

	booking.Documents[requirementID] = model.DocumentStatus{
		Supplied: true,
		URL:      url,
	}

	err = s.updateDocuments(ctx, sacrament, &booking, user)
	if err != nil {
		return response, err
	}

	response.FromModel(booking, timezone.Now())

	return response, nil
}

func (s *bookingServiceImpl) updateDocuments(ctx context.Context, sacrament model.Sacrament, booking *model.Booking, user string) error {
	fields := map[string]any{
		model.FieldDocuments:     booking.Documents,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	_, err := s.repository.Mutator(sacrament).Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName(sacrament)))
	if err != nil {
		log.Error().Err(err).Str("id", booking.ID).Msg("failed to update booking documents")

		return fmt.Errorf("failed to update booking documents: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyPrefix)

	return nil
}

func (s *bookingServiceImpl) collect(ctx context.Context, only string) ([]model.Booking, error) {
	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: gDto.SortDirDesc,
	}

	var collections [][]model.Booking

	for _, sacrament := range model.AllSacraments() {
		if only != "" && string(sacrament) != only {
			continue
		}

		bookings, err := s.fetchAll(ctx, sacrament, params)
		if err != nil {
			return nil, err
		}

		collections = append(collections, bookings)
	}

	return pipeline.Merge(collections...), nil
}

func (s *bookingServiceImpl) fetchAll(ctx context.Context, sacrament model.Sacrament, params gDto.QueryParams) ([]model.Booking, error) {
	filter := gDto.FilterGroup{}

	switch sacrament {
	case model.SacramentWedding:
		records, err := s.repository.Wedding.GetAll(ctx, params, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get wedding bookings: %w", err)
		}

		return toBookings(records, model.WeddingRecord.Booking), nil
	case model.SacramentBaptism:
		records, err := s.repository.Baptism.GetAll(ctx, params, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get baptism bookings: %w", err)
		}

		return toBookings(records, model.BaptismRecord.Booking), nil
	case model.SacramentBurial:
		records, err := s.repository.Burial.GetAll(ctx, params, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get burial bookings: %w", err)
		}

		return toBookings(records, model.BurialRecord.Booking), nil
	case model.SacramentCommunion:
		records, err := s.repository.Communion.GetAll(ctx, params, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get communion bookings: %w", err)
		}

		return toBookings(records, model.CommunionRecord.Booking), nil
	case model.SacramentConfirmation:
		records, err := s.repository.Confirmation.GetAll(ctx, params, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get confirmation bookings: %w", err)
		}

		return toBookings(records, model.ConfirmationRecord.Booking), nil
	case model.SacramentAnointing:
		records, err := s.repository.Anointing.GetAll(ctx, params, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get anointing bookings: %w", err)
		}

		return toBookings(records, model.AnointingRecord.Booking), nil
	case model.SacramentConfession:
		records, err := s.repository.Confession.GetAll(ctx, params, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to get confession bookings: %w", err)
		}

		return toBookings(records, model.ConfessionRecord.Booking), nil
	}

	return nil, failure.BadRequestFromString(fmt.Sprintf("unknown sacrament %q", sacrament))
}

func (s *bookingServiceImpl) fetchOne(ctx context.Context, sacrament model.Sacrament, id string) (model.Booking, error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName(sacrament))

	var (
		booking model.Booking
		entity  string
		err     error
	)

	switch sacrament {
	case model.SacramentWedding:
		var record model.WeddingRecord

		record, err = s.repository.Wedding.Get(ctx, filter)
		booking, entity = record.Booking(), model.WeddingEntityName
	case model.SacramentBaptism:
		var record model.BaptismRecord

		record, err = s.repository.Baptism.Get(ctx, filter)
		booking, entity = record.Booking(), model.BaptismEntityName
	case model.SacramentBurial:
		var record model.BurialRecord

		record, err = s.repository.Burial.Get(ctx, filter)
		booking, entity = record.Booking(), model.BurialEntityName
	case model.SacramentCommunion:
		var record model.CommunionRecord

		record, err = s.repository.Communion.Get(ctx, filter)
		booking, entity = record.Booking(), model.CommunionEntityName
	case model.SacramentConfirmation:
		var record model.ConfirmationRecord

		record, err = s.repository.Confirmation.Get(ctx, filter)
		booking, entity = record.Booking(), model.ConfirmationEntityName
	case model.SacramentAnointing:
		var record model.AnointingRecord

		record, err = s.repository.Anointing.Get(ctx, filter)
		booking, entity = record.Booking(), model.AnointingEntityName
	case model.SacramentConfession:
		var record model.ConfessionRecord

		record, err = s.repository.Confession.Get(ctx, filter)
		booking, entity = record.Booking(), model.ConfessionEntityName
	default:
		return booking, failure.BadRequestFromString(fmt.Sprintf("unknown sacrament %q", sacrament))
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Str("sacrament", string(sacrament)).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == "" {
		return booking, failure.NotFound(entity)
	}

	return booking, nil
}

// statusTransition carries the columns a resolution writes. Cancellation
// leaves the priest columns zero so TransformFields drops them from the
// update.
type statusTransition struct {
	Status     model.Status `db:"status"`
	PriestID   string       `db:"priest_id"`
	PriestName string       `db:"priest_name"`
}

// pendingFilter scopes a status transition to rows still pending, so the
// loser of a concurrent resolution matches zero rows instead of overwriting.
func pendingFilter(sacrament model.Sacrament, id string) gDto.FilterGroup {
	table := model.TableName(sacrament)

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusPending,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func toBookings[T any](records []T, convert func(T) model.Booking) []model.Booking {
	bookings := make([]model.Booking, len(records))
	for i, record := range records {
		bookings[i] = convert(record)
	}

	return bookings
}
