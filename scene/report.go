package scene

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/osuushi/lpvisu/region"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<figure>
<img alt="{{.Title}}" width="{{.Width}}" height="{{.Height}}" src="{{.Image}}">
<figcaption>
<p>max z = {{.Objective}}</p>
<ul class="constraints">
{{- range .Constraints}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- if .Cuts}}
<ul class="cuts">
{{- range .Cuts}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</figcaption>
</figure>
</body>
</html>
`))

type report struct {
	Title         string
	Width, Height int
	Image         template.URL
	Objective     string
	Constraints   []string
	Cuts          []string
}

// HTML writes a self-contained page with the rendered picture inlined as a
// PNG, followed by the constraints and cuts it shows.
func (s *Scene) HTML(w io.Writer) error {
	var png bytes.Buffer
	if err := s.EncodePNG(&png); err != nil {
		return err
	}

	width, height := s.Size()
	data := report{
		Title:       "Feasible region",
		Width:       width,
		Height:      height,
		Image:       template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png.Bytes())),
		Objective:   region.Row(s.c[0], s.c[1], 0).Expression(s.opts.Variables),
		Constraints: describe(s.region.Constraints(), s.opts.Variables),
		Cuts:        describe(s.region.Cuts(), s.opts.Variables),
	}
	return errors.Wrap(reportTemplate.Execute(w, data), "writing report")
}

func describe(rows []region.Constraint, names [2]string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Format(names)
	}
	return out
}
