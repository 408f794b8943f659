package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

// ClientHandler serves the client roster.
type ClientHandler struct {
	directory ports.DirectoryService
}

func NewClientHandler(directory ports.DirectoryService) *ClientHandler {
	return &ClientHandler{directory: directory}
}

type listClientsResponse struct {
	Clients []domain.ClientRecord `json:"clients"`
}

// List returns all client records with roles, newest first. Any
// authenticated caller may read the roster.
//
// @Summary      List client records
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listClientsResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	records, err := h.directory.ListAccounts(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.ClientRecord{}
	}

	return c.JSON(http.StatusOK, listClientsResponse{Clients: records})
}
