package workflow

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML header written at the top of generated markdown
// artifacts.
type FrontMatter struct {
	Title     string    `yaml:"title"`
	Phase     Phase     `yaml:"phase"`
	Project   string    `yaml:"project,omitempty"`
	CreatedAt time.Time `yaml:"created_at"`
}

// WriteArtifact writes a markdown artifact with a YAML front matter block
// followed by the body. An existing file at path is left untouched and an
// error returned; regenerating an artifact is an explicit --force decision
// made by the caller.
func WriteArtifact(path string, fm FrontMatter, body string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("artifact %s already exists (use --force to regenerate)", path)
		}
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("failed to marshal front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimLeft(body, "\n"))
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// ConstitutionTemplate is the body of the constitute-phase artifact: the
// project's non-negotiable principles, filled in by the user.
const ConstitutionTemplate = `# Constitution

## Principles

1. <!-- A principle the project never violates -->
2.
3.

## Constraints

- <!-- Hard technical or organizational constraints -->

## Preferences

- <!-- Softer defaults: style, tooling, review rules -->
`

// SpecificationTemplate is the body of the specify-phase artifact.
const SpecificationTemplate = `# Specification

## Overview

<!-- What is being built and why -->

## Requirements

- <!-- One requirement per line -->

## Out of Scope

- <!-- What this deliberately does not do -->
`

// PlanTemplate is a starter plan document in the format the task extractor
// reads: one heading per task with Dependencies and Estimated Time fields.
const PlanTemplate = `# Plan

## TASK-001: Describe the first task
A short description of the work.
**Dependencies**: none
**Estimated Time**: 1 hour

## TASK-002: Describe a follow-up task
**Dependencies**: TASK-001
**Estimated Time**: 30 minutes
`

// ArtifactBody returns the template body for a phase's artifact, or an
// empty string for phases that don't generate one from a template.
func ArtifactBody(p Phase) string {
	switch p {
	case PhaseConstitute:
		return ConstitutionTemplate
	case PhaseSpecify:
		return SpecificationTemplate
	case PhasePlan:
		return PlanTemplate
	}
	return ""
}
