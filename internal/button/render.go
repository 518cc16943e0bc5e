package button

import (
	"fmt"
	"html/template"
	"io"
)

var markup = template.Must(template.New("button").Parse(
	`<button type="{{.Kind}}" class="{{.Class}}"{{if .Disabled}} disabled{{end}} aria-busy="{{.AriaBusy}}">` +
		`{{if .Spinner}}<svg class="animate-spin -ml-1 mr-2 h-4 w-4" xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24">` +
		`<circle class="opacity-25" cx="12" cy="12" r="10" stroke="currentColor" stroke-width="4"></circle>` +
		`<path class="opacity-75" fill="currentColor" d="M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4zm2 5.291A7.962 7.962 0 014 12H0c0 3.042 1.135 5.824 3 7.938l3-2.647z"></path>` +
		`</svg>{{end}}{{.Label}}</button>`,
))

type markupData struct {
	Descriptor
	Label string
}

// Render writes the descriptor as a single HTML button element. The label is
// escaped; the spinner precedes it while loading.
func Render(w io.Writer, d Descriptor, label string) error {
	if err := markup.Execute(w, markupData{Descriptor: d, Label: label}); err != nil {
		return fmt.Errorf("render button: %w", err)
	}
	return nil
}
