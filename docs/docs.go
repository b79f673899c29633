// Package docs registers the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/habitat-api/main.go
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
        "/health": {
            "get": {
                "description": "Aggregated health of the database, the summary cache and the rating event workers",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Application health",
                "responses": {
                    "200": {"description": "Application is up", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "A component is down", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/locations/cities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "List cities",
                "responses": {
                    "200": {"description": "City names", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/locations/cities/{city}/districts": {
            "get": {
                "description": "Unknown cities return an empty list",
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "List the districts of a city",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "District names", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/locations/cities/{city}/neighborhoods": {
            "get": {
                "description": "Restricted to one district when district is set; unknown names return an empty list",
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "List the neighborhoods of a city",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true},
                    {"type": "string", "description": "District name", "name": "district", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Neighborhood names", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/locations/cities/{city}/resolve": {
            "get": {
                "description": "Classifies the query as the whole city, a district or a neighborhood and returns its neighborhoods",
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Resolve a location query",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true},
                    {"type": "string", "description": "City, district or neighborhood name", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Resolved location", "schema": {"$ref": "#/definitions/model.LocationResolution"}},
                    "404": {"description": "Nothing matches the query", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/locations/cities/{city}/expand": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Expand a location query into neighborhoods",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true},
                    {"type": "string", "description": "City, city-wide option, district or neighborhood name", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Neighborhoods selected by the query", "schema": {"$ref": "#/definitions/model.LocationExpansion"}}
                }
            }
        },
        "/locations/search": {
            "get": {
                "description": "Case and accent insensitive; short queries return an empty list",
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Search neighborhoods by prefix or substring",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "default": 3, "description": "Minimum query length", "name": "minLength", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Neighborhood display names", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/locations/suggest": {
            "get": {
                "description": "Ranked city, district and neighborhood options for a search box",
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Autocomplete suggestions",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query", "required": true},
                    {"type": "string", "description": "Restrict suggestions to one city", "name": "city", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Maximum suggestions", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Suggestions", "schema": {"type": "array", "items": {"$ref": "#/definitions/location.Suggestion"}}}
                }
            }
        },
        "/locations/display-name": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Format a display name",
                "parameters": [
                    {"type": "string", "description": "Neighborhood name", "name": "neighborhood", "in": "query", "required": true},
                    {"type": "string", "description": "District name", "name": "district", "in": "query"},
                    {"type": "string", "description": "City name", "name": "city", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Display label", "schema": {"$ref": "#/definitions/model.DisplayNameResponse"}}
                }
            }
        },
        "/locations/display-name/parse": {
            "get": {
                "produces": ["application/json"],
                "tags": ["locations"],
                "summary": "Parse a display name",
                "parameters": [
                    {"type": "string", "description": "Display label", "name": "label", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Parsed label", "schema": {"$ref": "#/definitions/location.DisplayName"}},
                    "404": {"description": "Not a display name", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ratings": {
            "post": {
                "description": "Stores one rating; every score must be between 1 and 10 and the district, when sent, must own the neighborhood",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "Rate a neighborhood",
                "parameters": [
                    {"description": "Rating", "name": "rating", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateRatingDTO"}}
                ],
                "responses": {
                    "201": {"description": "Stored rating", "schema": {"$ref": "#/definitions/entity.NeighborhoodRating"}},
                    "400": {"description": "Malformed body, missing field or score out of range", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unknown city or neighborhood, or district mismatch", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ratings/summary": {
            "get": {
                "description": "Select the neighborhood with neighborhood and city, or with a display label. Unrated neighborhoods have count 0",
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "Rating summary of a neighborhood",
                "parameters": [
                    {"type": "string", "description": "Neighborhood name", "name": "neighborhood", "in": "query"},
                    {"type": "string", "description": "City name", "name": "city", "in": "query"},
                    {"type": "string", "description": "Display label, e.g. Sants, Sants-Montjuïc, Barcelona", "name": "label", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Summary", "schema": {"$ref": "#/definitions/entity.RatingSummary"}},
                    "400": {"description": "Missing selection or malformed label", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Unknown neighborhood", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ratings/cities/{city}": {
            "get": {
                "description": "Rated neighborhoods ordered by overall average, best first",
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "Ranked rating summaries of a city",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true},
                    {"type": "integer", "default": 0, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated summaries", "schema": {"$ref": "#/definitions/model.Page-entity_RatingSummary"}},
                    "404": {"description": "Unknown city", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ratings/cities/{city}/filter": {
            "get": {
                "description": "Summaries of the rated neighborhoods selected by a city, district or neighborhood query",
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "Rating summaries for a location filter",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true},
                    {"type": "string", "description": "City, city-wide option, district or neighborhood name", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Summaries", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.RatingSummary"}}},
                    "404": {"description": "Unknown city", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal server error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "entity.NeighborhoodRating": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "neighborhood": {"type": "string"},
                "district": {"type": "string"},
                "city": {"type": "string"},
                "security": {"type": "integer"},
                "parking": {"type": "integer"},
                "familyFriendly": {"type": "integer"},
                "publicTransport": {"type": "integer"},
                "greenSpaces": {"type": "integer"},
                "services": {"type": "integer"},
                "comment": {"type": "string"},
                "createdDate": {"type": "string"}
            }
        },
        "entity.RatingSummary": {
            "type": "object",
            "properties": {
                "neighborhood": {"type": "string"},
                "district": {"type": "string"},
                "city": {"type": "string"},
                "displayName": {"type": "string"},
                "count": {"type": "integer"},
                "security": {"type": "number"},
                "parking": {"type": "number"},
                "familyFriendly": {"type": "number"},
                "publicTransport": {"type": "number"},
                "greenSpaces": {"type": "number"},
                "services": {"type": "number"},
                "overall": {"type": "number"},
                "lastRatedDate": {"type": "string"}
            }
        },
        "location.DisplayName": {
            "type": "object",
            "properties": {
                "neighborhood": {"type": "string"},
                "district": {"type": "string"},
                "city": {"type": "string"}
            }
        },
        "location.Suggestion": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "kind": {"type": "string"},
                "city": {"type": "string"},
                "district": {"type": "string"},
                "neighborhood": {"type": "string"}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "model.CreateRatingDTO": {
            "type": "object",
            "properties": {
                "neighborhood": {"type": "string", "example": "Sants"},
                "district": {"type": "string", "example": "Sants-Montjuïc"},
                "city": {"type": "string", "example": "Barcelona"},
                "security": {"type": "integer", "example": 7},
                "parking": {"type": "integer", "example": 4},
                "familyFriendly": {"type": "integer", "example": 8},
                "publicTransport": {"type": "integer", "example": 9},
                "greenSpaces": {"type": "integer", "example": 6},
                "services": {"type": "integer", "example": 8},
                "comment": {"type": "string"}
            }
        },
        "model.DisplayNameResponse": {
            "type": "object",
            "properties": {
                "label": {"type": "string"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "cache": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "queue": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        },
        "model.LocationExpansion": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "city": {"type": "string"},
                "cityWide": {"type": "boolean"},
                "neighborhoods": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.LocationResolution": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "city": {"type": "string"},
                "kind": {"type": "string"},
                "district": {"type": "string"},
                "label": {"type": "string"},
                "neighborhoods": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.Page-entity_RatingSummary": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/entity.RatingSummary"}},
                "number": {"type": "integer"},
                "size": {"type": "integer"},
                "totalElements": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "numberOfElements": {"type": "integer"},
                "first": {"type": "boolean"},
                "last": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Habitat API",
	Description:      "City, district and neighborhood lookups plus neighborhood ratings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
