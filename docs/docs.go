// Package docs registers the swagger document of the gateway.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/v1/calendars": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Calendars"], "summary": "List calendars", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Calendars"], "summary": "Create a calendar",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createCalendarReq"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/calendars/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Calendars"], "summary": "Delete a calendar",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Shared calendar"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/calendars/{id}/events": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "List the events of a calendar",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "force", "in": "query", "type": "boolean"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Create an event",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/createEventReq"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Read-only calendar"}}}
        },
        "/api/v1/calendars/{id}/events/{eventId}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Delete an event",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "eventId", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Read-only calendar"}}}
        },
        "/api/v1/events": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "List visible events",
                "parameters": [{"name": "force", "in": "query", "type": "boolean"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/events.ics": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Export visible events", "produces": ["text/calendar"], "responses": {"200": {"description": "iCalendar document"}}}
        },
        "/api/v1/calendars/{id}/shares": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Calendars"], "summary": "Share a calendar",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Not the owner"}, "404": {"description": "Calendar not found"}}}
        },
        "/api/v1/search": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Search events and calendars",
                "parameters": [{"name": "q", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/layout/day": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Layout"], "summary": "Day layout",
                "parameters": [{"name": "date", "in": "query", "type": "string"}, {"name": "tz", "in": "query", "type": "string"}, {"name": "width", "in": "query", "type": "number"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/layout/week": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Layout"], "summary": "Week layout",
                "parameters": [{"name": "start", "in": "query", "type": "string"}, {"name": "tz", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/visibility/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Filters"], "summary": "Show or hide a calendar",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/visibilityReq"}}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/categories": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Filters"], "summary": "Deselect every category", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/categories/all": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Filters"], "summary": "Select every category", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/categories/{category}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Filters"], "summary": "Toggle a category",
                "parameters": [{"name": "category", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Unknown category"}}}
        },
        "/api/v1/groups": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Groups"], "summary": "List calendar groups", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Groups"], "summary": "Create a calendar group",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/groupReq"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/groups/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Groups"], "summary": "Update a calendar group",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/groupReq"}}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Groups"], "summary": "Delete a calendar group",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/groups/{id}/toggle": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Groups"], "summary": "Toggle a calendar group",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/logout": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Session"], "summary": "End the session", "responses": {"200": {"description": "OK"}}}
        },
        "/webhook/calendar": {
            "post": {"tags": ["Webhook"], "summary": "Change notification from the backing store",
                "parameters": [{"name": "X-Calendar-Signature-256", "in": "header", "type": "string"}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid signature"}, "429": {"description": "Rate limited"}}}
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "createCalendarReq": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "color": {"type": "string"}, "isDefault": {"type": "boolean"}}
        },
        "createEventReq": {
            "type": "object",
            "required": ["title", "start", "end"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"},
                "allDay": {"type": "boolean"},
                "category": {"type": "string", "enum": ["personal", "business", "academic", "health", "social", "travel", "finance"]},
                "meeting": {"type": "object"},
                "reminders": {"type": "array", "items": {"type": "object", "properties": {"time": {"type": "integer"}}}}
            }
        },
        "visibilityReq": {"type": "object", "properties": {"visible": {"type": "boolean"}}},
        "groupReq": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "color": {"type": "string"}, "calendarIds": {"type": "array", "items": {"type": "string"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Shared Calendar API",
	Description:      "Calendar gateway with a cached multi-calendar event stream, overlap layout and visibility filters.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
