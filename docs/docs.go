// Package docs provides the Swagger specification served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@coachdesk.in"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/contacts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "List enquiries",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "enum": ["new", "contacted", "enrolled", "rejected"], "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Submit an enquiry",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/contacts/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Enquiry statistics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/contacts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Get an enquiry",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Update an enquiry",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Delete an enquiry",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/courses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create a course",
                "parameters": [
                    {"type": "string", "name": "courseName", "in": "formData", "required": true},
                    {"type": "number", "name": "price", "in": "formData", "required": true},
                    {"type": "file", "name": "coursePdf", "in": "formData"}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/courses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get a course",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Update a course",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Delete a course",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/events/upcoming": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List upcoming events",
                "parameters": [{"type": "integer", "default": 5, "maximum": 50, "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update an event",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Delete an event",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List students",
                "parameters": [{"type": "string", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Admit a student",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/students/birthdays": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Upcoming birthdays",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/students/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Student login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}}
            }
        },
        "/students/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get own profile",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/students/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get a student",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Update a student",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Delete a student",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/results": {
            "get": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "List results",
                "parameters": [{"type": "integer", "name": "studentId", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Record a result",
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/results/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Get a result",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Update a result",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Delete a result",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "CoachDesk API",
	Description:      "Backend API for the coaching institute admin panel and student portal",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
