// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/auth/register": {"post": {"tags": ["Auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}}}},
        "/auth/change-password": {"patch": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Change the password of the current user", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/auth/upload-profile-picture": {"post": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Upload a profile picture", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/auth/forgot-password": {"post": {"tags": ["Auth"], "summary": "Request a password reset link", "responses": {"200": {"description": "OK"}}}},
        "/auth/reset-password": {"post": {"tags": ["Auth"], "summary": "Reset a password with an emailed token", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/boards": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Boards"], "summary": "Boards owned by the current user", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Boards"], "summary": "Create a board", "responses": {"201": {"description": "Created"}}}
        },
        "/boards/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["Boards"], "summary": "Delete a board with its lists and cards", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/lists": {"post": {"security": [{"BearerAuth": []}], "tags": ["Lists"], "summary": "Append a list to a board", "responses": {"201": {"description": "Created"}}}},
        "/lists/board/{boardId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["Lists"], "summary": "Lists of a board in position order", "responses": {"200": {"description": "OK"}}}},
        "/lists/reorder": {"patch": {"security": [{"BearerAuth": []}], "tags": ["Lists"], "summary": "Reorder the lists of a board", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/lists/{id}": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Lists"], "summary": "Rename or describe a list", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Lists"], "summary": "Delete a list and its cards", "responses": {"200": {"description": "OK"}}}
        },
        "/cards": {"post": {"security": [{"BearerAuth": []}], "tags": ["Cards"], "summary": "Append a card to a list", "responses": {"201": {"description": "Created"}}}},
        "/cards/list/{listId}": {"get": {"security": [{"BearerAuth": []}], "tags": ["Cards"], "summary": "Cards of a list in position order, with comments", "responses": {"200": {"description": "OK"}}}},
        "/cards/my-tasks": {"get": {"security": [{"BearerAuth": []}], "tags": ["Cards"], "summary": "Every card on the current user's boards, soonest due first", "responses": {"200": {"description": "OK"}}}},
        "/cards/reorder": {"patch": {"security": [{"BearerAuth": []}], "tags": ["Cards"], "summary": "Set the cards of a list in order", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/cards/{id}": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Cards"], "summary": "Partially update a card", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Cards"], "summary": "Delete a card", "responses": {"200": {"description": "OK"}}}
        },
        "/cards/{id}/comments": {"post": {"security": [{"BearerAuth": []}], "tags": ["Cards"], "summary": "Comment on a card", "responses": {"201": {"description": "Created"}}}},
        "/cards/{id}/comments/{commentId}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["Cards"], "summary": "Delete a comment", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "API for managing Kanban boards, lists and cards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
