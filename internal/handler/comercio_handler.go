package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zykorwx/dapp/internal/apperror"
	"github.com/zykorwx/dapp/internal/dto"
	"github.com/zykorwx/dapp/internal/service"
	"github.com/zykorwx/dapp/pkg/logger"
	"go.uber.org/zap"
)

// ComercioHandler serves the admin endpoints
type ComercioHandler struct {
	svc *service.ComercioService
}

func NewComercioHandler(svc *service.ComercioService) *ComercioHandler {
	return &ComercioHandler{svc: svc}
}

// Create registers a comercio and returns its API key
func (h *ComercioHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var req dto.NewComercioRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to parse comercio request", zap.Error(err))
		return apperror.ErrIncompleteData
	}
	if err := c.Validate(&req); err != nil {
		log.Warn("Invalid comercio data", zap.Error(err))
		return err
	}

	comercio, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Ok(dto.NewComercioView(comercio)))
}

func (h *ComercioHandler) List(c echo.Context) error {
	comercios, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Ok(dto.NewComercioViews(comercios)))
}
