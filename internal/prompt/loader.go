package prompt

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed prompts/*.yaml
var promptFS embed.FS

// builtinPrompts maps prompt names to their definitions
var builtinPrompts = map[string]*Prompt{}

func init() {
	entries, err := promptFS.ReadDir("prompts")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := promptFS.ReadFile(path.Join("prompts", entry.Name()))
		if err != nil {
			continue
		}

		var p Prompt
		if err := yaml.Unmarshal(data, &p); err != nil {
			continue
		}

		if err := p.Compile(); err != nil {
			continue
		}

		builtinPrompts[p.Name] = &p
	}
}

// Load returns a built-in prompt by name
func Load(name string) (*Prompt, error) {
	if p, ok := builtinPrompts[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown prompt: %s", name)
}

// Available returns the names of all built-in prompts
func Available() []string {
	names := make([]string, 0, len(builtinPrompts))
	for name := range builtinPrompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
