// Package apidocs serves the OpenAPI description of the API.
package apidocs

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-yaml"
)

//go:embed openapi.yaml
var openapiYAML []byte

const basePath = "/api-docs"

// Docs holds the document in both encodings it is served in.
type Docs struct {
	yaml []byte
	json []byte
}

// Load converts the embedded YAML document to JSON once.
func Load() (*Docs, error) {
	js, err := yaml.YAMLToJSON(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("convert openapi document: %w", err)
	}
	return &Docs{yaml: openapiYAML, json: js}, nil
}

// Mount registers the UI page and both document encodings under /api-docs.
func (d *Docs) Mount(r gin.IRouter) {
	g := r.Group(basePath)
	g.GET("", d.ui)
	g.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", d.yaml)
	})
	g.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", d.json)
	})
}

func (d *Docs) ui(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uiPage))
}

const uiPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>WEB 420 RESTful APIs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: "` + basePath + `/openapi.json", dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`
