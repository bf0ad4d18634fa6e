package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/alyradwan/portfolio/internal/portfolio"
)

//go:embed card.html
var cardSource string

var cardTemplate = template.Must(template.New("cards").Parse(cardSource))

// Cards renders one card per project. Field values are escaped.
func Cards(projects []portfolio.Project) (template.HTML, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, projects); err != nil {
		return "", fmt.Errorf("render project cards: %w", err)
	}
	return template.HTML(buf.String()), nil
}
