package handler

type createSlotAmountRequest struct {
	Minute flexString `json:"minute" form:"minute" validate:"required,integer,intrange=0-255"`
	Amount flexString `json:"amount" form:"amount" validate:"required,integer,intrange=0-65535"`
}

type addQuestionRequest struct {
	Question string `json:"question" form:"question" validate:"required"`
}

type createDesignationRequest struct {
	Designation string `json:"designation" form:"designation" validate:"required,max=255"`
}

type createDesignationResponse struct {
	Message       string `json:"message"`
	DesignationID int64  `json:"designationId"`
}

type addPrivilegeRequest struct {
	Privilege string `json:"privilege" form:"privilege" validate:"required,max=255"`
}

type addDepartmentRequest struct {
	Department string `json:"department" form:"department" validate:"required,max=255"`
}

type createLanguageRequest struct {
	Language string `json:"language" form:"language" validate:"required,max=255"`
}

type createMedicineRequest struct {
	Name      string     `json:"name"       form:"name"       validate:"required,max=255"`
	BasePrice flexString `json:"base_price" form:"base_price" validate:"required,numeric"`
}

type createExtraChargeRequest struct {
	ChargeType string     `json:"charge_type" form:"charge_type" validate:"required,max=255"`
	Amount     flexString `json:"amount"      form:"amount"      validate:"required,integer,intrange=0-2147483647"`
}
