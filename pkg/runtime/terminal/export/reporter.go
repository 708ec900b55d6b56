package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
)

// Reporter renders an AstrologyReport as plain text for terminal use.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Writer exposes the output sink for commands that print directly.
func (r *Reporter) Writer() io.Writer {
	return r.writer
}

func (r *Reporter) Handle(report *domain.AstrologyReport) error {
	funcMap := template.FuncMap{
		"areas": func() []domain.Domain { return domain.Domains },
		"join":  strings.Join,
		"joinYears": func(years []int) string {
			parts := make([]string, 0, len(years))
			for _, y := range years {
				parts = append(parts, strconv.Itoa(y))
			}
			return strings.Join(parts, ", ")
		},
		"title": func(s any) string {
			str := fmt.Sprint(s)
			if str == "" {
				return str
			}
			return strings.ToUpper(str[:1]) + str[1:]
		},
	}

	tmpl := `
Astrology Report ({{.Duration}}) — {{joinYears .Years}}
Generated {{.GeneratedAt.Format "2006-01-02 15:04 UTC"}}

Life Path {{.Numerology.LifePath}} · Destiny {{.Numerology.Destiny}}
{{.Numerology.Prediction}}

Compatibility for {{title .Compatibility.Sign}}
  In harmony: {{join .Compatibility.Friends ", "}}
  In tension: {{join .Compatibility.Enemies ", "}}
  {{.Compatibility.Summary}}
{{range .Yearly}}
=== {{.Year}} · {{title .Theme.Archetype}} ({{.Theme.Tone}}) ===
{{.Overview}}

Personal Year {{.Numerology.PersonalYear}} — {{.Numerology.Label}} ({{.Numerology.Element}})
{{.Numerology.Prediction}}
{{$year := .}}
{{- range $area := areas}}
[{{title $area}}] ({{with index $year.Forecasts $area}}{{.Strength}}{{end}})
{{with index $year.Forecasts $area}}{{.Narrative}}{{end}}
{{end}}
Advice: {{.Advice}}

Month by month:
{{- range .Months}}
{{- $m := .}}
  {{printf "%-10s" .Name}} [{{.Tone}}]
{{- range $area := areas}}
    {{title $area}}: {{index $m.Forecasts $area}}
{{- end}}
{{- end}}
{{end}}
{{- range .Phases}}
-- {{.Name}} ({{joinYears .Years}}) --
{{.Summary}}
{{end}}
Disclaimer: {{.Disclaimer}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, report)
}
