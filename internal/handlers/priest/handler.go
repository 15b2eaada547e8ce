package priest

import (
	"net/http"
	"parish/infras/otel"
	"parish/internal/domains/priest/model/dto"
	"parish/internal/domains/priest/service"
	"parish/shared/constant"
	"parish/shared/validator"
	"parish/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PriestService
	otel    otel.Otel
}

func New(service service.PriestService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/priests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPriests)
		routerGroup.Post("/", handler.CreatePriest)
		routerGroup.Delete("/{id}", handler.DeactivatePriest)
	})
}

// GetPriests lists the active priests available for assignment.
// @Summary Get all priests
// @Description Retrieve the active priests, ordered by name.
// @Tags Priest
// @Produce json
// @Success 200 {object} response.Data[dto.GetPriestsResponse] "List of priests"
// @Failure 500 {object} response.Error
// @Router /v1/priests [get]
// @Security BearerAuth
func (handler *Handler) GetPriests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPriests")
	defer scope.End()

	priests, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get priests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, priests)
}

// CreatePriest registers a new priest.
// @Summary Create a priest
// @Description Register a priest who can be assigned to confirmed bookings.
// @Tags Priest
// @Accept json
// @Produce json
// @Param request body dto.CreatePriestRequest true "Create Priest Request"
// @Success 201 {object} response.Data[dto.PriestResponse] "Priest created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/priests [post]
// @Security BearerAuth
func (handler *Handler) CreatePriest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePriest")
	defer scope.End()

	req := dto.CreatePriestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	priest, err := handler.service.Create(ctx, req, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create priest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, priest)
}

// DeactivatePriest removes a priest from the assignment roster.
// @Summary Deactivate a priest
// @Description Deactivate a priest so they no longer appear in the assignment list. Existing bookings keep their assignment.
// @Tags Priest
// @Produce json
// @Param id path string true "Priest ID"
// @Success 200 {object} response.Message "Priest deactivated"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/priests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivatePriest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivatePriest")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	err := handler.service.Deactivate(ctx, chi.URLParam(request, constant.RequestParamID), user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate priest")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Priest deactivated successfully")
}
