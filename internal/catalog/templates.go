package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"profilecraft/internal/design"
)

//go:embed templates.yaml
var templatesYAML []byte

// Template is a complete, ready to apply design.
type Template struct {
	design.Config `yaml:",inline"`
}

func (t Template) Key() string { return t.ID }

// CategoryGroup lists the templates of one category in declaration order.
type CategoryGroup struct {
	Category  string
	Templates []Template
}

type templateFile struct {
	Templates []Template `yaml:"templates"`
}

// ParseTemplates decodes a template document. Every template must carry an
// id and at least one layer.
func ParseTemplates(data []byte) ([]Template, error) {
	var f templateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for i, t := range f.Templates {
		if t.ID == "" {
			return nil, fmt.Errorf("parse templates: template %d has no id", i)
		}
		if len(t.Layers) == 0 {
			return nil, fmt.Errorf("parse templates: template %q has no layers", t.ID)
		}
	}
	return f.Templates, nil
}

func newTemplates() *Registry[Template] {
	templates, err := ParseTemplates(templatesYAML)
	if err != nil {
		panic(err)
	}
	return NewRegistry(templates...)
}

// TemplateCategories groups templates by category, categories ordered by
// first appearance.
func TemplateCategories(r *Registry[Template]) []CategoryGroup {
	var groups []CategoryGroup
	pos := map[string]int{}
	for _, t := range r.All() {
		i, ok := pos[t.Category]
		if !ok {
			i = len(groups)
			pos[t.Category] = i
			groups = append(groups, CategoryGroup{Category: t.Category})
		}
		groups[i].Templates = append(groups[i].Templates, t)
	}
	return groups
}
