// Package docs registers the OpenAPI document served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/v4_staffs": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"principals"
				],
				"summary": "Register a staff member",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createStaffRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.staffRegistration"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/doctors": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"principals"
				],
				"summary": "Register a doctor",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createDoctorRequest"
						}
					},
					{
						"type": "file",
						"description": "Portrait",
						"name": "image",
						"in": "formData"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.doctorRegistration"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/patients": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"principals"
				],
				"summary": "Register a patient",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createPatientRequest"
						}
					},
					{
						"type": "file",
						"description": "Portrait",
						"name": "image",
						"in": "formData"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.patientRegistration"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/sloatAmount": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Create a slot amount",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createSlotAmountRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createdResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/questionnaire": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Add a question",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.addQuestionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createdResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/designations": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Create a designation",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createDesignationRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createDesignationResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/all_privileges": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Add a privilege",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.addPrivilegeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createdResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/departments": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Add a department",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.addDepartmentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createdResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/languages": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Create a language",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createLanguageRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createdResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/medicines": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Create a medicine",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createMedicineRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createdResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/extra_charges": {
			"post": {
				"consumes": [
					"application/json",
					"application/x-www-form-urlencoded",
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Create an extra charge",
				"parameters": [
					{
						"description": "Request body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.createExtraChargeRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createdResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.validationResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		},
		"/images": {
			"post": {
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "Upload an image",
				"parameters": [
					{
						"type": "file",
						"description": "Image file",
						"name": "img",
						"in": "formData",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.createdResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"413": {
						"description": "Request Entity Too Large",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/handler.messageResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handler.messageResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				}
			}
		},
		"handler.FieldError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"handler.validationResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"errors": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handler.FieldError"
					}
				}
			}
		},
		"handler.createdResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				}
			}
		},
		"handler.createDesignationResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"designationId": {
					"type": "integer"
				}
			}
		},
		"handler.createStaffRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"username",
				"password"
			]
		},
		"handler.createDoctorRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"other_contact": {
					"type": "string"
				},
				"experience": {
					"type": "integer"
				},
				"status": {
					"type": "integer"
				}
			},
			"required": [
				"name",
				"username",
				"password",
				"email",
				"experience",
				"status"
			]
		},
		"handler.createPatientRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"other_contact": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				}
			},
			"required": [
				"name",
				"username",
				"password",
				"email",
				"status"
			]
		},
		"handler.createSlotAmountRequest": {
			"type": "object",
			"properties": {
				"minute": {
					"type": "integer",
					"minimum": 0,
					"maximum": 255
				},
				"amount": {
					"type": "integer",
					"minimum": 0,
					"maximum": 65535
				}
			},
			"required": [
				"minute",
				"amount"
			]
		},
		"handler.addQuestionRequest": {
			"type": "object",
			"properties": {
				"question": {
					"type": "string"
				}
			},
			"required": [
				"question"
			]
		},
		"handler.createDesignationRequest": {
			"type": "object",
			"properties": {
				"designation": {
					"type": "string"
				}
			},
			"required": [
				"designation"
			]
		},
		"handler.addPrivilegeRequest": {
			"type": "object",
			"properties": {
				"privilege": {
					"type": "string"
				}
			},
			"required": [
				"privilege"
			]
		},
		"handler.addDepartmentRequest": {
			"type": "object",
			"properties": {
				"department": {
					"type": "string"
				}
			},
			"required": [
				"department"
			]
		},
		"handler.createLanguageRequest": {
			"type": "object",
			"properties": {
				"language": {
					"type": "string"
				}
			},
			"required": [
				"language"
			]
		},
		"handler.createMedicineRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"base_price": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"base_price"
			]
		},
		"handler.createExtraChargeRequest": {
			"type": "object",
			"properties": {
				"charge_type": {
					"type": "string"
				},
				"amount": {
					"type": "integer",
					"minimum": 0
				}
			},
			"required": [
				"charge_type",
				"amount"
			]
		},
		"domain.Staff": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				}
			}
		},
		"domain.Doctor": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"other_contact": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"experience": {
					"type": "integer"
				},
				"status": {
					"type": "integer"
				}
			}
		},
		"domain.Patient": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"other_contact": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				}
			}
		},
		"handler.staffRegistration": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"record": {
					"$ref": "#/definitions/domain.Staff"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"handler.doctorRegistration": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"record": {
					"$ref": "#/definitions/domain.Doctor"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"handler.patientRegistration": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"record": {
					"$ref": "#/definitions/domain.Patient"
				},
				"token": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/v4health",
	Schemes:		  []string{},
	Title:			"Clinic API",
	Description:	  "Clinic back office: principal registration and reference data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
