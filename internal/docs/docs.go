// Package docs serves the interactive API documentation: a Swagger UI shell
// over the embedded OpenAPI document.
package docs

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed openapi.json
var openapiSpec []byte

const swaggerPage = `<!DOCTYPE html>
<html>
<head>
<title>Senvo API - docs</title>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
window.onload = function() {
	SwaggerUIBundle({url: "/docs/openapi.json", dom_id: "#swagger-ui"});
};
</script>
</body>
</html>`

// GET /docs
func UIHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(swaggerPage)
	}
}

// GET /docs/openapi.json
func SpecHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(openapiSpec)
	}
}
