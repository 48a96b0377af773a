package http

import (
	"encoding/json"
	"net/http"

	"github.com/paycycle-hq/paycycle-backend-go/internal/domain/currency"
	"github.com/paycycle-hq/paycycle-backend-go/internal/handler/http/response"
)

type CurrencyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type currencyHandlerImpl struct {
	currencyService currency.CurrencyService
}

func NewCurrencyHandler(currencyService currency.CurrencyService) CurrencyHandler {
	return &currencyHandlerImpl{currencyService: currencyService}
}

func (h *currencyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.currencyService.ListCurrencies(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *currencyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req currency.CreateCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.currencyService.CreateCurrency(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Currency created", result)
}
