package handler

import "github.com/v4health/clinic-api/internal/core/domain"

// Bounds mirror the principal columns: VARCHAR(255) text, VARCHAR(32)
// other_contact, INTEGER experience and status.

type createStaffRequest struct {
	Name     string `json:"name"     form:"name"     validate:"required,max=255"`
	Username string `json:"username" form:"username" validate:"required,max=255"`
	Password string `json:"password" form:"password" validate:"required"`
}

type createDoctorRequest struct {
	Name         string     `json:"name"          form:"name"          validate:"required,max=255"`
	Username     string     `json:"username"      form:"username"      validate:"required,max=255"`
	Password     string     `json:"password"      form:"password"      validate:"required"`
	Email        string     `json:"email"         form:"email"         validate:"required,max=255,email"`
	OtherContact flexString `json:"other_contact" form:"other_contact" validate:"omitempty,max=32,numeric"`
	Experience   flexString `json:"experience"    form:"experience"    validate:"required,integer,intrange=0-2147483647"`
	Status       flexString `json:"status"        form:"status"        validate:"required,integer,intrange=0-2147483647"`
}

type createPatientRequest struct {
	Name         string     `json:"name"          form:"name"          validate:"required,max=255"`
	Username     string     `json:"username"      form:"username"      validate:"required,max=255"`
	Password     string     `json:"password"      form:"password"      validate:"required"`
	Email        string     `json:"email"         form:"email"         validate:"required,max=255,email"`
	OtherContact flexString `json:"other_contact" form:"other_contact" validate:"omitempty,max=32,numeric"`
	Status       flexString `json:"status"        form:"status"        validate:"required,integer,intrange=0-2147483647"`
}

// registrationResponse is the 201 body of every principal endpoint.
type registrationResponse[P domain.Principal] struct {
	Message string `json:"message"`
	Record  P      `json:"record"`
	Token   string `json:"token"`
}

// Instantiations named for the API docs.
type (
	staffRegistration   = registrationResponse[*domain.Staff]
	doctorRegistration  = registrationResponse[*domain.Doctor]
	patientRegistration = registrationResponse[*domain.Patient]
)
