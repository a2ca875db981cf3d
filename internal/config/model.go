// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "github.com/specialistvlad/stepliteral/internal/stepobject"

// Model is the format-agnostic result of loading step files.
type Model struct {
	Steps []*Step
}

// Step pairs a loaded step object with where it came from.
type Step struct {
	Rule          string
	Object        *stepobject.Step
	FSInformation *FSInfo
}

// FSInfo records the file a definition was read from, so that errors and
// relative paths (such as a configfile) can be resolved against it.
type FSInfo struct {
	FilePath string
}

func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}

// Find returns the step for rule, if loaded.
func (m *Model) Find(rule string) (*Step, bool) {
	for _, s := range m.Steps {
		if s.Rule == rule {
			return s, true
		}
	}
	return nil, false
}
