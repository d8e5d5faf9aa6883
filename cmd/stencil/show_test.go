// Package main provides the entry point for the stencil CLI.
package main

import (
	"strings"
	"testing"
)

func TestShowCommand(t *testing.T) {
	root := fixtureTree(t)

	tests := []struct {
		name         string
		args         []string
		wantErr      bool
		wantContains []string
	}{
		{
			name: "human preview",
			args: []string{"show", "bug_report", "--dir", root},
			wantContains: []string{
				"bug_report",
				"Structured bug report writer",
				"writing, qa",
				"symptom, component",
				"Write a bug report about {{ symptom }}",
			},
		},
		{
			name:         "raw prints source verbatim",
			args:         []string{"show", "bug_report", "--raw", "--dir", root},
			wantContains: []string{"prompt_name: bug_report", "style_prompt: |"},
		},
		{
			name: "json output",
			args: []string{"show", "bug_report", "--json", "--dir", root},
			wantContains: []string{
				`"name": "bug_report"`,
				`"category": "writing"`,
				`"placeholders"`,
				`"symptom"`,
				`"source_path"`,
			},
		},
		{
			name:         "not found",
			args:         []string{"show", "shakespeare", "--dir", root},
			wantErr:      true,
			wantContains: []string{"template not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\noutput: %s", want, out)
				}
			}
		})
	}
}

func TestShowCommand_ExtraKeys(t *testing.T) {
	root := fixtureTree(t)
	writeTemplateFile(t, root, "writing/haiku.yaml", `prompt_name: haiku
description: Seasonal haiku author
style_prompt: Write a haiku about {{ season }}.
author: basho
syllables: 17
`)

	out, err := executeCommand(t, "show", "haiku", "--dir", root)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"author: basho", "syllables: 17"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput: %s", want, out)
		}
	}
}

func TestShowCommand_NotFoundJSON(t *testing.T) {
	root := fixtureTree(t)

	out, err := executeCommand(t, "show", "missing", "--json", "--dir", root)
	if err == nil {
		t.Fatal("Execute() error = nil, want error")
	}
	if !strings.Contains(out, `"error"`) || !strings.Contains(out, `"code":1`) {
		t.Errorf("JSON error payload missing:\n%s", out)
	}
}
