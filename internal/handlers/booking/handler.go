package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"parish/infras/otel"
	"parish/internal/domains/booking/model"
	"parish/internal/domains/booking/model/dto"
	"parish/internal/domains/booking/pipeline"
	"parish/internal/domains/booking/requirements"
	"parish/internal/domains/booking/service"
	"parish/shared/constant"
	gDto "parish/shared/dto"
	"parish/shared/failure"
	"parish/shared/validator"
	"parish/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.BookingService
	otel    otel.Otel
}

func New(service service.BookingService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Post("/{sacrament}", handler.CreateBooking)
		routerGroup.Get("/{sacrament}/{id}", handler.GetBooking)
		routerGroup.Patch("/{sacrament}/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Patch("/{sacrament}/{id}/cancel", handler.CancelBooking)
		routerGroup.Patch("/{sacrament}/{id}/documents", handler.SetDocuments)
		routerGroup.Post("/{sacrament}/{id}/documents/{requirement}", handler.UploadDocument)
	})

	router.Route("/requirements", func(routerGroup chi.Router) {
		routerGroup.Get("/{sacrament}", handler.GetRequirements)
	})
}

// CreateBooking handles a new sacrament booking submission.
// @Summary Create a new booking
// @Description Submit a booking request for the given sacrament type.
// @Tags Booking
// @Accept json
// @Produce json
// @Param sacrament path string true "Sacrament type (wedding, baptism, burial, communion, confirmation, anointing, confession)"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{sacrament} [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	sacrament, err := model.ParseSacrament(chi.URLParam(request, constant.RequestParamSacrament))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	switch sacrament {
	case model.SacramentWedding:
		create(ctx, writer, request.Body, user, scope, handler.service.CreateWedding)
	case model.SacramentBaptism:
		create(ctx, writer, request.Body, user, scope, handler.service.CreateBaptism)
	case model.SacramentBurial:
		create(ctx, writer, request.Body, user, scope, handler.service.CreateBurial)
	case model.SacramentCommunion:
		create(ctx, writer, request.Body, user, scope, handler.service.CreateCommunion)
	case model.SacramentConfirmation:
		create(ctx, writer, request.Body, user, scope, handler.service.CreateConfirmation)
	case model.SacramentAnointing:
		create(ctx, writer, request.Body, user, scope, handler.service.CreateAnointing)
	case model.SacramentConfession:
		create(ctx, writer, request.Body, user, scope, handler.service.CreateConfession)
	}
}

// create decodes and validates one submission shape, then delegates to the
// matching service call. Violations come back as a field map so the form can
// mark each offending input.
func create[T any](
	ctx context.Context,
	writer http.ResponseWriter,
	body io.Reader,
	user string,
	scope otel.Scope,
	call func(context.Context, T, string) (dto.BookingResponse, error),
) {
	var req T

	if err := json.NewDecoder(body).Decode(&req); err != nil {
		err = failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err))
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode booking request")

		response.WithError(writer, err)

		return
	}

	if violations := validator.Fields(&req); len(violations) > 0 {
		response.WithFieldErrors(writer, violations)

		return
	}

	booking, err := call(ctx, req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + booking.TransactionID + " created")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings retrieves the merged booking collection across all sacraments.
// @Summary Get all bookings
// @Description Retrieve bookings across every sacrament type with filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Match against reference number, contact number, names, address, or email"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param sacrament query string false "Filter by sacrament type"
// @Param month query int false "Filter by schedule month (1-12)"
// @Param date_tab query string false "Schedule window (all, active, past)"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Merged booking page"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	criteria := pipeline.Criteria{
		Search:  request.URL.Query().Get(constant.RequestParamSearch),
		DateTab: request.URL.Query().Get(constant.RequestParamDateTab),
	}

	if status := request.URL.Query().Get(constant.RequestParamStatus); status != "" {
		parsed, err := model.ParseStatus(status)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.BadRequest(err))

			return
		}

		criteria.Status = string(parsed)
	}

	if sacrament := request.URL.Query().Get(constant.RequestParamSacrament); sacrament != "" {
		parsed, err := model.ParseSacrament(sacrament)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.BadRequest(err))

			return
		}

		criteria.Sacrament = string(parsed)
	}

	if month := request.URL.Query().Get(constant.RequestParamMonth); month != "" {
		parsed, err := strconv.Atoi(month)
		if err != nil || parsed < 1 || parsed > 12 {
			response.WithError(writer, failure.BadRequestFromString("month must be a number between 1 and 12"))

			return
		}

		criteria.Month = parsed
	}

	bookings, err := handler.service.GetAll(ctx, criteria, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetSummary reports booking totals by status and sacrament.
// @Summary Get booking summary
// @Description Retrieve aggregate booking counts for the dashboard.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.SummaryResponse] "Booking summary"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking summary")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}

// GetBooking retrieves a single booking by sacrament and ID.
// @Summary Get a booking
// @Description Retrieve one booking with its sacrament-specific details.
// @Tags Booking
// @Produce json
// @Param sacrament path string true "Sacrament type"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{sacrament}/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	sacrament, err := model.ParseSacrament(chi.URLParam(request, constant.RequestParamSacrament))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	booking, err := handler.service.Get(ctx, sacrament, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// ConfirmBooking confirms a pending booking and assigns the officiating priest.
// @Summary Confirm a booking
// @Description Confirm a pending booking. A priest must be selected and the schedule must not be past due.
// @Tags Booking
// @Accept json
// @Produce json
// @Param sacrament path string true "Sacrament type"
// @Param id path string true "Booking ID"
// @Param request body dto.ConfirmBookingRequest true "Confirm Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Confirmed booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{sacrament}/{id}/confirm [patch]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	sacrament, err := model.ParseSacrament(chi.URLParam(request, constant.RequestParamSacrament))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.ConfirmBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := handler.service.Confirm(ctx, sacrament, chi.URLParam(request, constant.RequestParamID), req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + booking.TransactionID + " confirmed by " + user)

	response.WithJSON(writer, http.StatusOK, booking)
}

// CancelBooking cancels a pending booking.
// @Summary Cancel a booking
// @Description Cancel a pending booking. Confirmed and cancelled bookings stay as they are.
// @Tags Booking
// @Produce json
// @Param sacrament path string true "Sacrament type"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Cancelled booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{sacrament}/{id}/cancel [patch]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	sacrament, err := model.ParseSacrament(chi.URLParam(request, constant.RequestParamSacrament))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := handler.service.Cancel(ctx, sacrament, chi.URLParam(request, constant.RequestParamID), user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + booking.TransactionID + " cancelled by " + user)

	response.WithJSON(writer, http.StatusOK, booking)
}

// SetDocuments updates the supplied flags on a booking's document checklist.
// @Summary Update document checklist
// @Description Mark document requirements as supplied or missing for a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param sacrament path string true "Sacrament type"
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateDocumentsRequest true "Document checklist"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{sacrament}/{id}/documents [patch]
// @Security BearerAuth
func (handler *Handler) SetDocuments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDocuments")
	defer scope.End()

	sacrament, err := model.ParseSacrament(chi.URLParam(request, constant.RequestParamSacrament))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.UpdateDocumentsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := handler.service.SetDocuments(ctx, sacrament, chi.URLParam(request, constant.RequestParamID), req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking documents")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// UploadDocument attaches an uploaded file to one document requirement.
// @Summary Upload a requirement document
// @Description Upload the file satisfying one document requirement of a booking.
// @Tags Booking
// @Accept multipart/form-data
// @Produce json
// @Param sacrament path string true "Sacrament type"
// @Param id path string true "Booking ID"
// @Param requirement path string true "Requirement ID"
// @Param file formData file true "Document file"
// @Success 200 {object} response.Data[dto.BookingResponse] "Updated booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{sacrament}/{id}/documents/{requirement} [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDocument")
	defer scope.End()

	sacrament, err := model.ParseSacrament(chi.URLParam(request, constant.RequestParamSacrament))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(writer, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	booking, err := handler.service.UploadDocument(
		ctx,
		sacrament,
		chi.URLParam(request, constant.RequestParamID),
		chi.URLParam(request, constant.RequestParamRequirement),
		file,
		fileHeader,
		user,
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload booking document")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetRequirements lists the document requirements for a sacrament.
// @Summary Get document requirements
// @Description List the documents required for the given sacrament type. For weddings, pass civilly_married=yes to include the marriage contract.
// @Tags Booking
// @Produce json
// @Param sacrament path string true "Sacrament type"
// @Param civilly_married query string false "Whether the couple is civilly married (yes/no)"
// @Success 200 {object} response.Data[[]requirements.Requirement] "Document requirements"
// @Failure 400 {object} response.Error
// @Router /v1/requirements/{sacrament} [get]
func (handler *Handler) GetRequirements(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequirements")
	defer scope.End()

	sacrament, err := model.ParseSacrament(chi.URLParam(request, constant.RequestParamSacrament))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	flags := requirements.Flags{
		CivillyMarried: request.URL.Query().Get("civilly_married"),
	}

	response.WithJSON(writer, http.StatusOK, requirements.Resolve(sacrament, flags))
}
