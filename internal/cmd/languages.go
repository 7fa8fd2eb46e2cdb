package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pthm/codegauge/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
}

func init() {
	RootCmd.AddCommand(languagesCmd)
}

type languageInfo struct {
	Tag        string   `json:"tag" yaml:"tag"`
	Name       string   `json:"name" yaml:"name"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Default    bool     `json:"default,omitempty" yaml:"default,omitempty"`
}

func runLanguages(cmd *cobra.Command, args []string) error {
	var infos []languageInfo
	for _, l := range language.All() {
		infos = append(infos, languageInfo{
			Tag:        l.String(),
			Name:       l.DisplayName(),
			Extensions: language.Extensions(l),
			Default:    l == language.Default,
		})
	}

	u := GetUI()
	switch format {
	case "json":
		encoder := json.NewEncoder(u.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(infos)
	case "yaml":
		encoder := yaml.NewEncoder(u.Writer)
		encoder.SetIndent(2)
		defer encoder.Close()
		return encoder.Encode(infos)
	}

	for _, info := range infos {
		name := info.Name
		if info.Default {
			name += " (default)"
		}
		fmt.Fprintf(u.Writer, "  %-8s %s %s\n",
			u.Styles.Header.Render(info.Tag),
			u.Styles.Label.Render(name),
			u.Styles.Path.Render(strings.Join(info.Extensions, " ")))
	}
	return nil
}
