package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type configuration struct {
	// Output is the default destination file; the -o flag overrides it.
	Output string `json:"output"`

	// Vocabulary points at a yaml keyword file overriding the built-in
	// drafting vocabulary.
	Vocabulary string `json:"vocabulary"`

	// HonorLeadingHeadings disables the letterhead gate in implicit mode.
	HonorLeadingHeadings bool `json:"honor_leading_headings"`
}

func config(path string) (configuration, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return configuration{}, errors.Wrap(err, "could not open config")
	}
	return configFromBytes(fileBytes)
}

func configFromBytes(fileBytes []byte) (configuration, error) {
	var config configuration
	if err := json.Unmarshal(fileBytes, &config); err != nil {
		return configuration{}, errors.Wrap(err, "could not parse config")
	}
	return config, nil
}
