package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"phonestore/internal/delivery/http/middleware"
	"phonestore/internal/delivery/http/response"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing and management.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListBrands handles the public brand listing.
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.uc.ListBrands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brands, "Brands retrieved successfully")
}

// GetBrand handles the public single-brand lookup.
func (h *CatalogHandler) GetBrand(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid brand ID")
	}

	brand, err := h.uc.GetBrand(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brand, "Brand retrieved successfully")
}

// ListPhones handles the public paginated catalog listing, optionally
// filtered by brand via the "brand" query parameter.
func (h *CatalogHandler) ListPhones(c echo.Context) error {
	input := usecase.ListPhonesInput{Page: queryPage(c)}

	if brandParam := c.QueryParam("brand"); brandParam != "" {
		brandID, err := uuid.Parse(brandParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid brand ID")
		}
		input.BrandID = &brandID
	}

	page, err := h.uc.ListPhones(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"phones":      page.Phones,
		"page":        page.Page,
		"page_size":   page.PageSize,
		"total_count": page.TotalCount,
	}, "Phones retrieved successfully")
}

// GetPhone handles the public single-phone lookup.
func (h *CatalogHandler) GetPhone(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid phone ID")
	}

	phone, err := h.uc.GetPhone(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, phone, "Phone retrieved successfully")
}

// SearchPhones handles the public name search via the "q" query parameter.
func (h *CatalogHandler) SearchPhones(c echo.Context) error {
	phones, err := h.uc.SearchPhones(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, phones, "Search completed successfully")
}

// CreateBrand handles the staff brand creation request.
func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.SaveBrandInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	brand, err := h.uc.CreateBrand(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, brand, "Brand created successfully")
}

// UpdateBrand handles the staff brand update request.
func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid brand ID")
	}

	var input usecase.SaveBrandInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdateBrand(c.Request().Context(), actor, id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Brand updated successfully")
}

// DeleteBrand handles the staff brand deletion request.
func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid brand ID")
	}

	if err := h.uc.DeleteBrand(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Brand deleted successfully")
}

// CreatePhone handles the staff phone creation request.
func (h *CatalogHandler) CreatePhone(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.SavePhoneInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	phone, err := h.uc.CreatePhone(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, phone, "Phone created successfully")
}

// UpdatePhone handles the staff phone update request.
func (h *CatalogHandler) UpdatePhone(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid phone ID")
	}

	var input usecase.SavePhoneInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.UpdatePhone(c.Request().Context(), actor, id, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Phone updated successfully")
}

// DeletePhone handles the staff phone deletion request.
func (h *CatalogHandler) DeletePhone(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid phone ID")
	}

	if err := h.uc.DeletePhone(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Phone deleted successfully")
}

// queryPage reads the "page" query parameter, defaulting to the first page.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}
