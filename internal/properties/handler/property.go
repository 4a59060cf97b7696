package handler

import (
	"net/http"

	"rentals/internal/properties/service"
	apperrors "rentals/pkg/errors"
	httputil "rentals/pkg/http"
	"rentals/pkg/logger"
	"rentals/pkg/model"
	"rentals/pkg/sanitizer"

	"github.com/julienschmidt/httprouter"
)

type PropertyHandler struct {
	service service.PropertyService
	log     *logger.Logger
}

func NewPropertyHandler(service service.PropertyService, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log,
	}
}

// Search serves the browse page. Without query parameters it returns the
// whole catalog split into featured and regular properties.
func (h *PropertyHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filters, err := parseSearchFilters(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	result, err := h.service.Search(r.Context(), filters)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Search", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PropertyHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := sanitizer.NormalizeID(ps.ByName("id"))

	property, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, property); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PropertyHandler) Quote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := sanitizer.NormalizeID(ps.ByName("id"))
	query := r.URL.Query()

	quote, err := h.service.Quote(r.Context(), id, query.Get("check_in"), query.Get("check_out"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Quote", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, quote); err != nil {
		h.log.Error("failed to write success response", "handler", "Quote", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PropertyHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/properties", h.Search)
	router.GET("/api/v1/properties/id/:id", h.GetByID)
	router.GET("/api/v1/properties/id/:id/quote", h.Quote)
}

// parseSearchFilters starts from the named price_range (if any) and lets
// explicit min_price and max_price override either bound.
func parseSearchFilters(r *http.Request) (model.SearchFilters, error) {
	filters := model.DefaultSearchFilters()

	filters.Location = sanitizer.NormalizeLocation(httputil.QueryString(r, "location"))
	// Type is matched exactly, so only surrounding whitespace is removed.
	if t := sanitizer.TrimAndNormalize(httputil.QueryString(r, "type")); t != "" {
		filters.Type = t
	}

	if pr := sanitizer.NormalizeKeyword(httputil.QueryString(r, "price_range")); pr != "" {
		switch pr {
		case model.PriceRangeAll, model.PriceRangeBudget, model.PriceRangeMid, model.PriceRangePremium:
			filters.MinPrice, filters.MaxPrice = model.PriceBounds(pr)
		default:
			return filters, apperrors.InvalidInput("invalid price_range parameter: " + pr)
		}
	}

	var err error
	if filters.MinPrice, err = httputil.QueryFloat(r, "min_price", filters.MinPrice); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = httputil.QueryFloat(r, "max_price", filters.MaxPrice); err != nil {
		return filters, err
	}

	return filters, nil
}
