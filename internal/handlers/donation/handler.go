package donation

import (
	"net/http"
	"parish/infras/otel"
	"parish/internal/domains/donation/model/dto"
	"parish/internal/domains/donation/service"
	"parish/shared/constant"
	gDto "parish/shared/dto"
	"parish/shared/validator"
	"parish/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.DonationService
	otel    otel.Otel
}

func New(service service.DonationService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/donations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDonation)
		routerGroup.Get("/", handler.GetDonations)
		routerGroup.Get("/{id}", handler.GetDonation)
	})
}

// CreateDonation records a donation and issues a receipt reference.
// @Summary Create a donation
// @Description Record a donation with its purpose and amount.
// @Tags Donation
// @Accept json
// @Produce json
// @Param request body dto.CreateDonationRequest true "Create Donation Request"
// @Success 201 {object} response.Data[dto.DonationResponse] "Donation recorded"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/donations [post]
// @Security BearerAuth
func (handler *Handler) CreateDonation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDonation")
	defer scope.End()

	req := dto.CreateDonationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	donation, err := handler.service.Create(ctx, req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create donation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Donation " + donation.TransactionID + " recorded")

	response.WithJSON(writer, http.StatusCreated, donation)
}

// GetDonations retrieves donations with their running total.
// @Summary Get all donations
// @Description Retrieve donations with pagination and an aggregate amount for the listed page.
// @Tags Donation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Match against donor name or receipt reference"
// @Success 200 {object} response.Data[dto.GetDonationsResponse] "Donation page"
// @Failure 500 {object} response.Error
// @Router /v1/donations [get]
// @Security BearerAuth
func (handler *Handler) GetDonations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDonations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	search := request.URL.Query().Get(constant.RequestParamSearch)

	donations, err := handler.service.GetAll(ctx, search, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get donations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, donations)
}

// GetDonation retrieves one donation by ID.
// @Summary Get a donation
// @Description Retrieve a single donation record.
// @Tags Donation
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} response.Data[dto.DonationResponse] "Donation"
// @Failure 404 {object} response.Error
// @Router /v1/donations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDonation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDonation")
	defer scope.End()

	donation, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get donation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, donation)
}
