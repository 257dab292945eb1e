package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	seederrors "github.com/alexisbeaulieu97/datatable/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadSeed reads a seed file from disk, validates it and fills in defaults.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, seederrors.NewParseError(path, 0, err)
	}
	return ParseSeed(path, data)
}

// ParseSeed decodes and validates seed YAML. The name is only used in error
// messages. An empty document yields the default seed.
func ParseSeed(name string, data []byte) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, seederrors.NewParseError(name, extractLine(err), err)
	}

	if err := ValidateSeed(&seed); err != nil {
		var vErr *seederrors.ValidationError
		if errors.As(err, &vErr) {
			vErr.Path = name
		}
		return nil, err
	}

	seed.applyDefaults()
	return &seed, nil
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
