package forge

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/mgoudin/idea-manager/pkg/idea"
)

// prBodyTemplate renders the pull request body from an idea file.
const prBodyTemplate = `## Purpose

{{.Purpose}}
{{- if .Problem}}

## Problem

{{.Problem}}
{{- end}}

## Proposal

{{.Proposal}}
{{- if .Checklist}}

## Acceptance Checklist

{{- range .Checklist}}
- [{{if .Done}}x{{else}} {{end}}] {{.Text}}
{{- end}}
{{- end}}
{{- if .Issue}}

Closes #{{.Issue}}
{{- end}}
`

// issueBodyTemplate renders the tracking issue body from an idea file.
const issueBodyTemplate = `{{.Purpose}}
{{- if .Problem}}

## Problem

{{.Problem}}
{{- end}}

## Proposal

{{.Proposal}}

Tracked by idea file ` + "`{{.File}}`" + `.
`

var (
	prBodyTmpl    = template.Must(template.New("pr-body").Parse(prBodyTemplate))
	issueBodyTmpl = template.Must(template.New("issue-body").Parse(issueBodyTemplate))
)

// BuildPRTitle returns the canonical pull request title for an idea.
func BuildPRTitle(i *idea.Idea) string {
	return fmt.Sprintf("%s: %s", i.ID, i.Title)
}

// BuildPRBody renders the pull request body for an idea.
func BuildPRBody(i *idea.Idea) (string, error) {
	var b strings.Builder
	if err := prBodyTmpl.Execute(&b, i); err != nil {
		return "", fmt.Errorf("failed to render pull request body: %w", err)
	}
	return b.String(), nil
}

// BuildIssueTitle returns the canonical tracking issue title for an idea.
func BuildIssueTitle(i *idea.Idea) string {
	return fmt.Sprintf("%s: %s", i.ID, i.Title)
}

// BuildIssueBody renders the tracking issue body for an idea.
func BuildIssueBody(i *idea.Idea) (string, error) {
	var b strings.Builder
	if err := issueBodyTmpl.Execute(&b, i); err != nil {
		return "", fmt.Errorf("failed to render issue body: %w", err)
	}
	return b.String(), nil
}
