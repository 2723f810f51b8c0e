package dogs

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

type pageData struct {
	ViewerID   string
	Loading    bool
	Ready      bool
	Message    string
	Main       Dog
	Thumbnails []Dog
}

// RenderPage escribe el HTML del viewer para el estado dado.
// Mientras está en Loading la página se refresca sola.
func RenderPage(w io.Writer, viewerID string, s ViewState) error {
	data := pageData{
		ViewerID:   viewerID,
		Loading:    s.Loading(),
		Ready:      s.Status == StatusReady,
		Message:    s.Message,
		Main:       s.Main,
		Thumbnails: s.Thumbnails,
	}

	// Render a buffer para no mandar HTML a medias si falla el template.
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
