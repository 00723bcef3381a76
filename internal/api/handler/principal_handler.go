package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/v4health/clinic-api/internal/api/metrics"
	"github.com/v4health/clinic-api/internal/core/domain"
	"github.com/v4health/clinic-api/internal/core/ports"
)

const discardTimeout = 5 * time.Second

// imageFields are the multipart fields a principal portrait is read from.
// "imgage" is the spelling older clients send.
var imageFields = []string{"image", "imgage"}

// PrincipalHandler handles the staff, doctor and patient registration endpoints.
type PrincipalHandler struct {
	staff    ports.RegistrationService[*domain.Staff]
	doctors  ports.RegistrationService[*domain.Doctor]
	patients ports.RegistrationService[*domain.Patient]
	files    ports.FileStorage
}

func NewPrincipalHandler(
	staff ports.RegistrationService[*domain.Staff],
	doctors ports.RegistrationService[*domain.Doctor],
	patients ports.RegistrationService[*domain.Patient],
	files ports.FileStorage,
) *PrincipalHandler {
	return &PrincipalHandler{staff: staff, doctors: doctors, patients: patients, files: files}
}

// CreateStaff registers a clinic operator.
//
// @Summary      Register a staff member
// @Tags         principals
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body  body      createStaffRequest  true  "Staff details"
// @Success      201   {object}  staffRegistration
// @Failure      400   {object}  validationResponse
// @Failure      500   {object}  messageResponse
// @Router       /v4_staffs [post]
func (h *PrincipalHandler) CreateStaff(c echo.Context) error {
	var req createStaffRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s := &domain.Staff{Account: domain.Account{
		Name:     strings.TrimSpace(req.Name),
		Username: strings.TrimSpace(req.Username),
	}}
	return register(c, h.staff, s, req.Password, "Data inserted successfully", nil)
}

// CreateDoctor registers a practitioner, optionally with a portrait.
//
// @Summary      Register a doctor
// @Tags         principals
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body   body      createDoctorRequest  true   "Doctor details"
// @Param        image  formData  file                 false  "Portrait"
// @Success      201    {object}  doctorRegistration
// @Failure      400    {object}  validationResponse
// @Failure      500    {object}  messageResponse
// @Router       /doctors [post]
func (h *PrincipalHandler) CreateDoctor(c echo.Context) error {
	var req createDoctorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}

	d := &domain.Doctor{
		Account:      domain.Account{Name: strings.TrimSpace(req.Name), Username: strings.TrimSpace(req.Username)},
		Email:        strings.TrimSpace(req.Email),
		OtherContact: optional(req.OtherContact.String()),
		Image:        image,
		Experience:   req.Experience.Int(),
		Status:       req.Status.Int(),
	}
	return register(c, h.doctors, d, req.Password, "Doctor added successfully", h.discardImage(c, image))
}

// CreatePatient registers a patient, optionally with a portrait.
//
// @Summary      Register a patient
// @Tags         principals
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        body   body      createPatientRequest  true   "Patient details"
// @Param        image  formData  file                  false  "Portrait"
// @Success      201    {object}  patientRegistration
// @Failure      400    {object}  validationResponse
// @Failure      500    {object}  messageResponse
// @Router       /patients [post]
func (h *PrincipalHandler) CreatePatient(c echo.Context) error {
	var req createPatientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}

	p := &domain.Patient{
		Account:      domain.Account{Name: strings.TrimSpace(req.Name), Username: strings.TrimSpace(req.Username)},
		Email:        strings.TrimSpace(req.Email),
		OtherContact: optional(req.OtherContact.String()),
		Image:        image,
		Status:       req.Status.Int(),
	}
	return register(c, h.patients, p, req.Password, "Patient added successfully", h.discardImage(c, image))
}

// register runs the guard and renders its outcome. Failures are handed to the
// central error handler after onFailure, when set, has run.
func register[P domain.Principal](c echo.Context, svc ports.RegistrationService[P], p P, password, message string, onFailure func()) error {
	kind := p.Kind().String()
	start := time.Now()

	out, err := svc.Register(c.Request().Context(), p, password)
	metrics.RegistrationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(kind, registrationOutcome(err)).Inc()
		if onFailure != nil {
			onFailure()
		}
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues(kind, metrics.OutcomeCreated).Inc()

	return c.JSON(http.StatusCreated, registrationResponse[P]{
		Message: message,
		Record:  out.Record,
		Token:   out.Token,
	})
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrPrincipalExists):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

// saveImage stores the optional portrait and returns its filename, or nil
// when the request carries none.
func (h *PrincipalHandler) saveImage(c echo.Context) (*string, error) {
	upload, file, err := formFile(c, imageFields...)
	if err != nil || file == nil {
		return nil, err
	}
	defer file.Close()

	name, err := h.files.Save(c.Request().Context(), upload, file)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

// discardImage returns a cleanup that removes a portrait saved for a
// registration that did not go through. It is nil when nothing was saved.
func (h *PrincipalHandler) discardImage(c echo.Context, image *string) func() {
	if image == nil {
		return nil
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), discardTimeout)
		defer cancel()
		if err := h.files.Delete(ctx, *image); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("filename", *image).Msg("orphaned portrait not removed")
		}
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
