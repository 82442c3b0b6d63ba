// Package docs provides the Swagger metadata served at /swagger.
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
        "/user/create": {
            "post": {
                "tags": ["user"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/user/token": {
            "post": {
                "tags": ["user"],
                "summary": "Obtain an auth token for valid credentials",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/user/me": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["user"],
                "summary": "Get the authenticated user's profile",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["user"],
                "summary": "Replace the authenticated user's profile",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "patch": {
                "security": [{"TokenAuth": []}],
                "tags": ["user"],
                "summary": "Partially update the authenticated user's profile",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/recipe/tags": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["tags"],
                "summary": "List the caller's tags",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["tags"],
                "summary": "Create a tag owned by the caller",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/recipe/tags/{id}": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["tags"],
                "summary": "Get one of the caller's tags",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["tags"],
                "summary": "Replace one of the caller's tags",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "security": [{"TokenAuth": []}],
                "tags": ["tags"],
                "summary": "Partially update one of the caller's tags",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["tags"],
                "summary": "Delete one of the caller's tags",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipe/ingredients": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["ingredients"],
                "summary": "List the caller's ingredients",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["ingredients"],
                "summary": "Create an ingredient owned by the caller",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/recipe/ingredients/{id}": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["ingredients"],
                "summary": "Get one of the caller's ingredients",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["ingredients"],
                "summary": "Replace one of the caller's ingredients",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "security": [{"TokenAuth": []}],
                "tags": ["ingredients"],
                "summary": "Partially update one of the caller's ingredients",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["ingredients"],
                "summary": "Delete one of the caller's ingredients",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipe/recipes": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["recipes"],
                "summary": "List the caller's recipes",
                "parameters": [
                    {"type": "string", "name": "tags", "in": "query", "description": "Comma-separated tag ids"},
                    {"type": "string", "name": "ingredients", "in": "query", "description": "Comma-separated ingredient ids"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["recipes"],
                "summary": "Create a recipe owned by the caller",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/recipe/recipes/{id}": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["recipes"],
                "summary": "Get one of the caller's recipes with nested relations",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["recipes"],
                "summary": "Replace one of the caller's recipes",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "security": [{"TokenAuth": []}],
                "tags": ["recipes"],
                "summary": "Partially update one of the caller's recipes",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["recipes"],
                "summary": "Delete one of the caller's recipes",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipe/recipes/{id}/upload-image": {
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["recipes"],
                "summary": "Attach an image to one of the caller's recipes",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "file", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "securityDefinitions": {
        "TokenAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Recipebox API",
	Description:      "Recipe management API with per-user tags, ingredients, recipes and token authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
