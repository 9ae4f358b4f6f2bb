package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"raciboard/pkg/raci/models"
	"raciboard/web"
)

// ExportHTML builds a single self-contained dashboard page: the web
// assets are inlined, the model is embedded as a script, and the page is
// flipped to exported mode so it renders without a server.
func ExportHTML(m *models.Model) ([]byte, error) {
	page, err := readAsset("index.html")
	if err != nil {
		return nil, err
	}
	appJS, err := readAsset("app.js")
	if err != nil {
		return nil, err
	}
	css, err := readAsset("styles.css")
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal model: %w", err)
	}
	// </script> inside a JSON string would terminate the data block early.
	safe := strings.ReplaceAll(string(data), "</", `<\/`)

	page = strings.Replace(page,
		`<link rel="stylesheet" href="styles.css">`,
		"<style>"+css+"</style>", 1)
	page = strings.Replace(page,
		`<script src="app.js"></script>`,
		"<script>"+appJS+"</script>", 1)
	page = strings.Replace(page,
		"</head>",
		"<script>window.__RACI_DATA__ = "+safe+";</script>\n</head>", 1)
	page = strings.Replace(page,
		"<body>",
		`<body data-exported="true">`, 1)

	return []byte(page), nil
}

func readAsset(name string) (string, error) {
	data, err := web.FS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read embedded asset %s: %w", name, err)
	}
	return string(data), nil
}
