package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zykorwx/dapp/internal/apperror"
	"github.com/zykorwx/dapp/internal/auth"
	"github.com/zykorwx/dapp/internal/dto"
	"github.com/zykorwx/dapp/internal/service"
	"github.com/zykorwx/dapp/pkg/config"
	"github.com/zykorwx/dapp/pkg/logger"
	"go.uber.org/zap"
)

// EmpleadoHandler serves /empleados
type EmpleadoHandler struct {
	svc     *service.EmpleadoService
	tenancy config.TenancyConfig
	binder  echo.DefaultBinder
}

func NewEmpleadoHandler(svc *service.EmpleadoService, tenancy config.TenancyConfig) *EmpleadoHandler {
	return &EmpleadoHandler{svc: svc, tenancy: tenancy}
}

// readScope is the comercio whose rows the request may see; 0 when the
// service runs unscoped.
func (h *EmpleadoHandler) readScope(c echo.Context) uint {
	if comercio := auth.ComercioFrom(c); comercio != nil {
		return comercio.ID
	}
	return 0
}

// owner is the comercio that new rows are created under
func (h *EmpleadoHandler) owner(c echo.Context) uint {
	if comercio := auth.ComercioFrom(c); comercio != nil {
		return comercio.ID
	}
	return h.tenancy.DefaultComercioID
}

// bind decodes the JSON body and validates it. Any failure, including a
// wrong field type or content type, is reported as incomplete data.
func (h *EmpleadoHandler) bind(c echo.Context, req interface{}) error {
	log := logger.FromEcho(c)
	if err := h.binder.BindBody(c, req); err != nil {
		log.Warn("Failed to parse empleado request", zap.Error(err))
		return apperror.ErrIncompleteData
	}
	if err := c.Validate(req); err != nil {
		log.Warn("Invalid empleado data", zap.Error(err))
		return err
	}
	return nil
}

// List returns every employee of the comercio
func (h *EmpleadoHandler) List(c echo.Context) error {
	empleados, err := h.svc.List(c.Request().Context(), h.readScope(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Ok(dto.NewEmpleadoViews(empleados)))
}

func (h *EmpleadoHandler) Get(c echo.Context) error {
	e, err := h.svc.Get(c.Request().Context(), h.readScope(c), c.Param("uuid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Ok(dto.NewEmpleadoView(e)))
}

func (h *EmpleadoHandler) Create(c echo.Context) error {
	var req dto.NewEmpleadoRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	e, err := h.svc.Create(c.Request().Context(), h.owner(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Ok(dto.NewEmpleadoView(e)))
}

// Update validates the body before looking the id up, so a bad payload on
// an unknown id reports incomplete data.
func (h *EmpleadoHandler) Update(c echo.Context) error {
	var req dto.UpdateEmpleadoRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	e, err := h.svc.Update(c.Request().Context(), h.readScope(c), c.Param("uuid"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Ok(dto.NewEmpleadoView(e)))
}

func (h *EmpleadoHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), h.readScope(c), c.Param("uuid")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.Ok(nil))
}

// NeedID answers PUT and DELETE on the collection path
func NeedID(c echo.Context) error {
	return apperror.ErrNoEmployeeID
}
