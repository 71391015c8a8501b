// Package docs registers the OpenAPI document served at /swagger.
//
// The document is maintained by hand and mirrors the @Router annotations
// on the books and borrowing handlers. Regenerating it with
// `swag init -g main.go` produces the same paths and definitions.
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
        "/books/": {
            "get": {
                "tags": ["books"],
                "summary": "List books",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/schema.Book"}}},
                    "500": {"description": "store error", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["books"],
                "summary": "Create a book",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "book", "required": true, "schema": {"$ref": "#/definitions/schema.Book"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.Book"}},
                    "400": {"description": "INVALID_ARGUMENT, DUPLICATE_KEY or STORE_ERROR", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}}
                }
            }
        },
        "/books/{book_id}": {
            "put": {
                "tags": ["books"],
                "summary": "Replace a book",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "book_id", "required": true, "type": "integer"},
                    {"in": "body", "name": "book", "required": true, "schema": {"$ref": "#/definitions/schema.Book"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.Book"}},
                    "400": {"description": "INVALID_ARGUMENT, DUPLICATE_KEY or STORE_ERROR", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}},
                    "404": {"description": "NOT_FOUND", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["books"],
                "summary": "Delete a book",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "book_id", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apierr.DetailResponse"}},
                    "400": {"description": "STORE_ERROR", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}},
                    "404": {"description": "NOT_FOUND", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}}
                }
            }
        },
        "/borrowing/": {
            "get": {
                "tags": ["borrowing"],
                "summary": "List borrowing records",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/schema.Borrowing"}}},
                    "500": {"description": "store error", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["borrowing"],
                "summary": "Create a borrowing record",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "borrowing", "required": true, "schema": {"$ref": "#/definitions/schema.Borrowing"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.Borrowing"}},
                    "400": {"description": "INVALID_ARGUMENT, INVALID_REFERENCE or STORE_ERROR", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}}
                }
            }
        },
        "/borrowing/{borrow_id}": {
            "put": {
                "tags": ["borrowing"],
                "summary": "Replace a borrowing record",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "borrow_id", "required": true, "type": "integer"},
                    {"in": "body", "name": "borrowing", "required": true, "schema": {"$ref": "#/definitions/schema.Borrowing"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/schema.Borrowing"}},
                    "400": {"description": "INVALID_ARGUMENT, INVALID_REFERENCE or STORE_ERROR", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}},
                    "404": {"description": "NOT_FOUND", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["borrowing"],
                "summary": "Delete a borrowing record",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "borrow_id", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apierr.DetailResponse"}},
                    "400": {"description": "STORE_ERROR", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}},
                    "404": {"description": "NOT_FOUND", "schema": {"$ref": "#/definitions/apierr.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "schema.Book": {
            "type": "object",
            "required": ["title", "author", "isbn", "available_copies"],
            "properties": {
                "title": {"type": "string", "minLength": 1, "maxLength": 255},
                "author": {"type": "string", "minLength": 1, "maxLength": 100},
                "isbn": {"type": "string", "minLength": 13, "maxLength": 13},
                "publication_year": {"type": "integer", "x-nullable": true},
                "available_copies": {"type": "integer", "minimum": 0}
            }
        },
        "schema.Borrowing": {
            "type": "object",
            "required": ["book_id", "member_id", "staff_id", "borrow_date"],
            "properties": {
                "book_id": {"type": "integer", "minimum": 1},
                "member_id": {"type": "integer", "minimum": 1},
                "staff_id": {"type": "integer", "minimum": 1},
                "borrow_date": {"type": "string", "format": "date"},
                "return_date": {"type": "string", "format": "date", "x-nullable": true}
            }
        },
        "apierr.DetailResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "apierr.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "apierr.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/apierr.ErrorDetail"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Library Management API",
	Description:      "Books and borrowing records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
