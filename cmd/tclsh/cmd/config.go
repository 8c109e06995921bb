//
// Copyright 2011-2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// startupConfig holds variables to pre-bind in every interpreter a
// 'run' invocation creates, loaded from an optional YAML file.
//
//	variables:
//	  root: /srv/data
//	  mode: strict
type startupConfig struct {
	Variables map[string]string `yaml:"variables"`
}

// loadStartupConfig reads path as YAML, or returns an empty config if
// path is empty.
func loadStartupConfig(path string) (*startupConfig, error) {
	cfg := &startupConfig{Variables: make(map[string]string)}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Variables == nil {
		cfg.Variables = make(map[string]string)
	}
	return cfg, nil
}

// splitAssignment splits "name=value" into its two parts.
func splitAssignment(s string) (name, value string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

// parseVarFlags turns a list of "name=value" strings, as given
// repeatedly via --var, into a map.
func parseVarFlags(assignments []string) (map[string]string, error) {
	out := make(map[string]string, len(assignments))
	for _, kv := range assignments {
		name, value, ok := splitAssignment(kv)
		if !ok {
			return nil, &badAssignmentError{kv}
		}
		out[name] = value
	}
	return out, nil
}

type badAssignmentError struct{ given string }

func (e *badAssignmentError) Error() string {
	return "--var " + e.given + ": expected name=value"
}
