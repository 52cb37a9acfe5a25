// Package docs holds the OpenAPI document served under /swagger.
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
        "/generar-pdf": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/pdf"],
                "summary": "Generate a filled Gravamen certificate request",
                "parameters": [
                    {
                        "description": "Form fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.gravamenRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Formulario_Gravamen.pdf", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/generar-pdf-busqueda": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/pdf"],
                "summary": "Generate a filled Búsqueda certificate request",
                "parameters": [
                    {
                        "description": "Form fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.busquedaRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Formulario_Busqueda.pdf", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.healthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_FAILED"},
                "message": {"type": "string", "example": "Faltan campos requeridos: nombre, telefono"},
                "missing_fields": {"type": "array", "items": {"type": "string"}},
                "unsupported_fields": {"type": "array", "items": {"type": "string"}},
                "detail": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/handler.errorEnvelope"}
            }
        },
        "handler.healthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "OK"},
                "apiVersion": {"type": "string", "example": "1.0.0"},
                "environment": {"type": "string", "example": "production"},
                "timestamp": {"type": "string", "format": "date-time"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.gravamenRequest": {
            "type": "object",
            "required": ["nombre", "cedulaFacturacion", "direccion", "telefono", "apellidos", "cedulaCertificacion", "lugarInmueble", "usoCertificacion", "especifiqueUso", "recepcionDocumento", "cedulaSolicitante"],
            "properties": {
                "nombre": {"type": "string"},
                "cedulaFacturacion": {"type": "string"},
                "direccion": {"type": "string"},
                "correo": {"type": "string"},
                "telefono": {"type": "string"},
                "apellidos": {"type": "string"},
                "cedulaCertificacion": {"type": "string"},
                "estadoCivil": {"type": "string"},
                "lugarInmueble": {"type": "string"},
                "libro": {"type": "string"},
                "numeroInscripcion": {"type": "string"},
                "fechaInscripcion": {"type": "string"},
                "tomo": {"type": "string"},
                "repertorio": {"type": "string"},
                "fichaRegistral": {"type": "string"},
                "otro": {"type": "string"},
                "usoCertificacion": {"type": "string", "enum": ["Tramites Judiciales", "Instituciones Bancarias", "Instituciones Publicas", "Otro"]},
                "especifiqueUso": {"type": "string"},
                "recepcionDocumento": {"type": "string", "enum": ["Presencial", "Electrónico"]},
                "correoRecepcion": {"type": "string"},
                "cedulaSolicitante": {"type": "string"}
            }
        },
        "handler.busquedaRequest": {
            "type": "object",
            "required": ["nombre", "cedulaFacturacion", "direccion", "telefono", "nombresCompletos", "cedula", "estadoCivil", "nombresSolicitante", "cedulaSolicitante", "estadoCivilSolicitante", "declaracionUso", "recepcionDocumento"],
            "properties": {
                "nombre": {"type": "string"},
                "cedulaFacturacion": {"type": "string"},
                "direccion": {"type": "string"},
                "correo": {"type": "string"},
                "telefono": {"type": "string"},
                "nombresCompletos": {"type": "string"},
                "cedula": {"type": "string"},
                "estadoCivil": {"type": "string"},
                "nombresSolicitante": {"type": "string"},
                "cedulaSolicitante": {"type": "string"},
                "estadoCivilSolicitante": {"type": "string"},
                "declaracionUso": {"type": "string"},
                "recepcionDocumento": {"type": "string", "enum": ["Presencial", "Electrónico"]},
                "correoRecepcion": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Certificate Request Form API",
	Description:      "Fills the Gravamen and Búsqueda certificate request templates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
