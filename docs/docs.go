// Package docs expone la spec OpenAPI de la API para http-swagger.
// Mantenida a mano (no regenerar con swag init sin revisar).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "summary": "Listar mascotas del usuario autenticado",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Pet"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Crear mascota",
                "parameters": [{"name": "pet", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePet"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Perfil de mascota",
                "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Pet"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Actualizar mascota (PATCH parcial)",
                "parameters": [
                    {"name": "petID", "in": "path", "required": true, "type": "string"},
                    {"name": "patch", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePet"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "summary": "Eliminar mascota (solo owner, definitivo)",
                "parameters": [{"name": "petID", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Pet": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "owner_user_id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string", "enum": ["dog", "cat", "other"]},
                "breed": {"type": "string"},
                "sex": {"type": "string", "enum": ["male", "female", "unknown"]},
                "birth_date": {"type": "string", "format": "date-time"},
                "microchip": {"type": "string"},
                "notes": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "CreatePet": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "species": {"type": "string"},
                "breed": {"type": "string"},
                "sex": {"type": "string"},
                "birth_date": {"type": "string", "example": "2020-01-31"},
                "microchip": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "UpdatePet": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "species": {"type": "string"},
                "breed": {"type": "string"},
                "sex": {"type": "string"},
                "birth_date": {"type": "string", "x-nullable": true, "example": "2020-01-31"},
                "microchip": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "pet-registry API",
	Description:      "Registro de mascotas: perfiles y borrado con confirmación del server.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
