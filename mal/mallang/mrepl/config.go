package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Config holds the settings of M.REPL. Settings may come from a YAML file;
// flags given on the command line take precedence.
type Config struct {
	Prompt  string `yaml:"prompt"`
	Prelude string `yaml:"prelude"`
	Init    string `yaml:"init"`
	Trace   string `yaml:"trace"`
	History string `yaml:"history"`
}

func defaultConfig() Config {
	return Config{
		Prompt:  "user> ",
		Prelude: "lib.mal",
		Trace:   "Error",
	}
}

// loadConfig overlays cfg with the settings found in a YAML file. Keys
// missing from the file leave cfg unchanged, unknown keys are an error.
func loadConfig(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}
