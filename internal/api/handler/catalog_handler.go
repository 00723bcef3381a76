package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/v4health/clinic-api/internal/api/metrics"
	"github.com/v4health/clinic-api/internal/core/ports"
)

// CatalogHandler handles the reference-table create endpoints and image uploads.
type CatalogHandler struct {
	catalog ports.CatalogService
	images  ports.ImageService
}

func NewCatalogHandler(catalog ports.CatalogService, images ports.ImageService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, images: images}
}

func created(c echo.Context, resource, message string, id int64) error {
	metrics.CatalogRecordsCreatedTotal.WithLabelValues(resource).Inc()
	return c.JSON(http.StatusCreated, createdResponse{Message: message, ID: id})
}

// CreateSlotAmount prices a consultation slot.
//
// @Summary      Create a slot amount
// @Tags         catalog
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      createSlotAmountRequest  true  "Slot length and price"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /sloatAmount [post]
func (h *CatalogHandler) CreateSlotAmount(c echo.Context) error {
	var req createSlotAmountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	sa, err := h.catalog.CreateSlotAmount(c.Request().Context(), req.Minute.Int(), req.Amount.Int())
	if err != nil {
		return err
	}
	return created(c, "sloat_amounts", "Sloat amount created successfully", sa.ID)
}

// AddQuestion appends a questionnaire entry.
//
// @Summary      Add a question
// @Tags         catalog
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      addQuestionRequest  true  "Question"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /questionnaire [post]
func (h *CatalogHandler) AddQuestion(c echo.Context) error {
	var req addQuestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	q, err := h.catalog.AddQuestion(c.Request().Context(), req.Question)
	if err != nil {
		return err
	}
	return created(c, "questionnaire", "Question added successfully", q.ID)
}

// CreateDesignation creates a staff designation.
//
// @Summary      Create a designation
// @Tags         catalog
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      createDesignationRequest  true  "Designation"
// @Success      201   {object}  createDesignationResponse
// @Failure      422   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /designations [post]
func (h *CatalogHandler) CreateDesignation(c echo.Context) error {
	var req createDesignationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Designation = strings.TrimSpace(req.Designation)
	if err := validateStatus(c, &req, http.StatusUnprocessableEntity); err != nil {
		return err
	}

	d, err := h.catalog.CreateDesignation(c.Request().Context(), req.Designation)
	if err != nil {
		return err
	}
	metrics.CatalogRecordsCreatedTotal.WithLabelValues("designations").Inc()
	return c.JSON(http.StatusCreated, createDesignationResponse{
		Message:       "Designation created successfully",
		DesignationID: d.ID,
	})
}

// AddPrivilege creates a privilege.
//
// @Summary      Add a privilege
// @Tags         catalog
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      addPrivilegeRequest  true  "Privilege"
// @Success      201   {object}  createdResponse
// @Failure      422   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /all_privileges [post]
func (h *CatalogHandler) AddPrivilege(c echo.Context) error {
	var req addPrivilegeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Privilege = clean(req.Privilege)
	if err := validateStatus(c, &req, http.StatusUnprocessableEntity); err != nil {
		return err
	}

	p, err := h.catalog.CreatePrivilege(c.Request().Context(), req.Privilege)
	if err != nil {
		return err
	}
	return created(c, "all_privileges", "Privilege added successfully", p.ID)
}

// AddDepartment creates a department.
//
// @Summary      Add a department
// @Tags         catalog
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      addDepartmentRequest  true  "Department"
// @Success      201   {object}  createdResponse
// @Failure      422   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /departments [post]
func (h *CatalogHandler) AddDepartment(c echo.Context) error {
	var req addDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Department = strings.TrimSpace(req.Department)
	if err := validateStatus(c, &req, http.StatusUnprocessableEntity); err != nil {
		return err
	}

	d, err := h.catalog.CreateDepartment(c.Request().Context(), req.Department)
	if err != nil {
		return err
	}
	return created(c, "departments", "Department added successfully", d.ID)
}

// CreateLanguage creates a spoken language entry.
//
// @Summary      Create a language
// @Tags         catalog
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      createLanguageRequest  true  "Language"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /languages [post]
func (h *CatalogHandler) CreateLanguage(c echo.Context) error {
	var req createLanguageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Language = clean(req.Language)
	if err := validateStatus(c, &req, http.StatusBadRequest); err != nil {
		return err
	}

	l, err := h.catalog.CreateLanguage(c.Request().Context(), req.Language)
	if err != nil {
		return err
	}
	return created(c, "languages", "Language created successfully", l.ID)
}

// CreateMedicine creates a medicine with its base price.
//
// @Summary      Create a medicine
// @Tags         catalog
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      createMedicineRequest  true  "Medicine"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /medicines [post]
func (h *CatalogHandler) CreateMedicine(c echo.Context) error {
	var req createMedicineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Name = clean(req.Name)
	req.BasePrice = flexString(req.BasePrice.String())
	if err := validateStatus(c, &req, http.StatusBadRequest); err != nil {
		return err
	}

	m, err := h.catalog.CreateMedicine(c.Request().Context(), req.Name, req.BasePrice.String())
	if err != nil {
		return err
	}
	return created(c, "medicines", "Medicine created successfully", m.ID)
}

// CreateExtraCharge creates a surcharge.
//
// @Summary      Create an extra charge
// @Tags         catalog
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      createExtraChargeRequest  true  "Extra charge"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /extra_charges [post]
func (h *CatalogHandler) CreateExtraCharge(c echo.Context) error {
	var req createExtraChargeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	e, err := h.catalog.CreateExtraCharge(c.Request().Context(), strings.TrimSpace(req.ChargeType), req.Amount.Int())
	if err != nil {
		return err
	}
	return created(c, "extra_charges", "Extra charge created successfully", e.ID)
}

// UploadImage stores an image sent as multipart field "img".
//
// @Summary      Upload an image
// @Tags         catalog
// @Accept       mpfd
// @Produce      json
// @Param        img  formData  file  true  "Image file"
// @Success      201  {object}  createdResponse
// @Failure      400  {object}  messageResponse
// @Failure      413  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /images [post]
func (h *CatalogHandler) UploadImage(c echo.Context) error {
	upload, file, err := formFile(c, "img")
	if err != nil {
		return err
	}
	if file == nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "No file uploaded"})
	}
	defer file.Close()

	img, err := h.images.Upload(c.Request().Context(), upload, file)
	if err != nil {
		return err
	}
	metrics.ImageUploadBytes.Observe(float64(upload.Size))
	return created(c, "images", "Image uploaded successfully", img.ID)
}
