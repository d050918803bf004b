package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultPath is the pseudo path reported for the embedded content.
const DefaultPath = "<embedded>/default.yaml"

// Format is a content file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor picks the encoding from a file extension. Anything other than
// .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Default returns the embedded content. It panics if the embedded file is
// invalid, which the package tests rule out.
func Default() *Content {
	c, err := Parse(DefaultPath, defaultYAML, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return c
}

// Load reads, parses and validates the content file at path. An empty path
// loads the embedded default.
func Load(path string) (*Content, error) {
	if path == "" {
		return Parse(DefaultPath, defaultYAML, FormatYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nexuserrors.NewParseError(path, 0, err)
	}
	return Parse(path, data, FormatFor(path))
}

// Parse decodes data in the given format and validates the result. path is
// used only for error messages.
func Parse(path string, data []byte, format Format) (*Content, error) {
	var c Content
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, nexuserrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, nexuserrors.NewParseError(path, extractLine(err), err)
		}
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
