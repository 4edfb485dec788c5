// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
		"/v1/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a new user",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.registerRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handler.authResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Login",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.loginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.authResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Logout",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/auth/session": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current session",
				"description": "Returns the user held in the shared session slot, which may differ from the token holder.",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.sessionResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/users": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "List users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/handler.userResponse"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/posts": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "List posts",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"in": "query",
						"name": "q"
					},
					{
						"type": "string",
						"in": "query",
						"name": "category"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.listPostsResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Publish a post",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.publishPostRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Post"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/posts/{id}": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "Get a post",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true,
						"description": "Post ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Post"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"posts"
				],
				"summary": "Delete a post",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true,
						"description": "Post ID"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/posts/{id}/html": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "Render a post body",
				"produces": [
					"text/html"
				],
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true,
						"description": "Post ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"304": {
						"description": "Not Modified"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			}
		},
		"/v1/posts/{id}/comments": {
			"get": {
				"tags": [
					"comments"
				],
				"summary": "List comments on a post",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true,
						"description": "Post ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.Comment"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				}
			},
			"post": {
				"tags": [
					"comments"
				],
				"summary": "Comment on a post",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"in": "path",
						"name": "id",
						"required": true,
						"description": "Post ID"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.addCommentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.Comment"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/categories": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "List categories",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/handler.categoryResponse"
							}
						}
					}
				}
			}
		},
		"/v1/drafts/outline": {
			"post": {
				"tags": [
					"drafts"
				],
				"summary": "Generate an outline",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.topicRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.outlineResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/drafts/content": {
			"post": {
				"tags": [
					"drafts"
				],
				"summary": "Write a draft from an outline",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.draftRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.draftResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/drafts/compose": {
			"post": {
				"tags": [
					"drafts"
				],
				"summary": "Outline and draft a topic",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.topicRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.composeResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/handler.errorResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/drafts/cover-image": {
			"post": {
				"tags": [
					"drafts"
				],
				"summary": "Generate a cover image",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.topicRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handler.coverImageResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"domain.AuthorSocials": {
			"type": "object",
			"properties": {
				"linkedin": {
					"type": "string"
				},
				"twitter": {
					"type": "string"
				},
				"facebook": {
					"type": "string"
				},
				"instagram": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			}
		},
		"domain.Source": {
			"type": "object",
			"properties": {
				"uri": {
					"type": "string"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"domain.Post": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"excerpt": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"authorId": {
					"type": "string"
				},
				"authorSocials": {
					"$ref": "#/definitions/domain.AuthorSocials"
				},
				"date": {
					"type": "string"
				},
				"coverImage": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"readTime": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"seoKeywords": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"sources": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Source"
					}
				}
			}
		},
		"domain.Comment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"postId": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"authorId": {
					"type": "string"
				},
				"text": {
					"type": "string"
				},
				"date": {
					"type": "string"
				}
			}
		},
		"handler.errorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"handler.registerRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"handler.loginRequest": {
			"type": "object",
			"properties": {
				"mode": {
					"type": "string",
					"enum": [
						"login",
						"admin"
					]
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"handler.userResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"handler.authResponse": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/handler.userResponse"
				}
			}
		},
		"handler.sessionResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/handler.userResponse"
				}
			}
		},
		"handler.publishPostRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"author": {
					"type": "string"
				},
				"authorSocials": {
					"$ref": "#/definitions/domain.AuthorSocials"
				},
				"category": {
					"type": "string"
				},
				"coverImage": {
					"type": "string"
				},
				"tags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"sources": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Source"
					}
				}
			}
		},
		"handler.listPostsResponse": {
			"type": "object",
			"properties": {
				"featured": {
					"$ref": "#/definitions/domain.Post"
				},
				"posts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Post"
					}
				}
			}
		},
		"handler.categoryResponse": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"postCount": {
					"type": "integer"
				}
			}
		},
		"handler.addCommentRequest": {
			"type": "object",
			"properties": {
				"text": {
					"type": "string"
				}
			}
		},
		"handler.topicRequest": {
			"type": "object",
			"properties": {
				"topic": {
					"type": "string"
				}
			}
		},
		"handler.draftRequest": {
			"type": "object",
			"properties": {
				"topic": {
					"type": "string"
				},
				"outline": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"handler.outlineResponse": {
			"type": "object",
			"properties": {
				"headings": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"fallback": {
					"type": "boolean"
				}
			}
		},
		"handler.draftResponse": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"keywords": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"sources": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Source"
					}
				},
				"keywordsFallback": {
					"type": "boolean"
				}
			}
		},
		"handler.composeResponse": {
			"type": "object",
			"properties": {
				"outline": {
					"$ref": "#/definitions/handler.outlineResponse"
				},
				"draft": {
					"$ref": "#/definitions/handler.draftResponse"
				}
			}
		},
		"handler.coverImageResponse": {
			"type": "object",
			"properties": {
				"coverImage": {
					"type": "string"
				},
				"generated": {
					"type": "boolean"
				}
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
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"Lumina Blog Studio API",
	Description:	  "Publishing backend with AI-assisted drafting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
