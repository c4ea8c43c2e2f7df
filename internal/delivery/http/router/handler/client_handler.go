package handler

import (
	"localia/internal/delivery/http/response"
	"localia/internal/domain/repository"
	"localia/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ClientHandler serves the client administration endpoints.
type ClientHandler struct {
	clientUC usecase.ClientUsecase
}

// NewClientHandler is the constructor for ClientHandler.
func NewClientHandler(clientUC usecase.ClientUsecase) *ClientHandler {
	return &ClientHandler{clientUC: clientUC}
}

// List handles GET /clients.
func (h *ClientHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	filter := repository.ClientFilter{
		Page:          page,
		Limit:         limit,
		IsActive:      queryBool(c, "isActive"),
		PhoneVerified: queryBool(c, "phoneVerified"),
		Search:        c.QueryParam("search"),
		SortBy:        c.QueryParam("sortBy"),
		SortOrder:     c.QueryParam("sortOrder"),
	}

	result, err := h.clientUC.ListClients(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

// Get handles GET /clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	client, err := h.clientUC.GetClient(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, client)
}
