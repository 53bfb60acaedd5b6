// Package docs registers the swagger document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/v1/reports/generate": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Reports"],
                "summary": "Generate a report",
                "responses": {"200": {"description": "OK"}, "207": {"description": "Partial delivery"}}
            }
        },
        "/api/v1/reports/history": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["Reports"],
                "summary": "List report history",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/internal/v1/reports/scheduled": {
            "post": {
                "tags": ["Reports"],
                "summary": "Queue a scheduled report",
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/api/v1/imports": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Imports"],
                "summary": "Import vehicles, customers or parts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/notifications/send": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Notifications"],
                "summary": "Send notifications",
                "responses": {"200": {"description": "OK"}, "207": {"description": "Partial delivery"}}
            }
        },
        "/api/v1/vehicles/decode-vin": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["Vehicles"],
                "summary": "Decode a VIN",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "OK"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "OK"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Format: \"Bearer {token}\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dealer Report Service API",
	Description:      "Dealer report, import, notification and VIN decode API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
