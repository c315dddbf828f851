//go:build unit

package prompt

import (
	"bufio"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRealPrompt_PromptForIdeasDir(t *testing.T) {
	tests := []struct {
		name       string
		defaultDir string
		input      string
		expected   string
	}{
		{
			name:       "empty input uses default",
			defaultDir: "ideas",
			input:      "\n",
			expected:   "ideas",
		},
		{
			name:       "whitespace input uses default",
			defaultDir: "ideas",
			input:      "   \n",
			expected:   "ideas",
		},
		{
			name:       "custom path",
			defaultDir: "ideas",
			input:      "docs/ideas\n",
			expected:   "docs/ideas",
		},
		{
			name:       "custom path with whitespace",
			defaultDir: "ideas",
			input:      "  notes/ideas  \n",
			expected:   "notes/ideas",
		},
		{
			name:       "empty default uses hardcoded default",
			defaultDir: "",
			input:      "\n",
			expected:   "ideas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a prompt with a string reader
			p := &realPrompt{
				reader: bufio.NewReader(strings.NewReader(tt.input)),
			}

			result, err := p.PromptForIdeasDir(tt.defaultDir)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRealPrompt_PromptForConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		defaultYes  bool
		input       string
		expected    bool
		expectError bool
	}{
		{
			name:       "yes input",
			message:    "Continue?",
			defaultYes: false,
			input:      "y\n",
			expected:   true,
		},
		{
			name:       "YES input",
			message:    "Continue?",
			defaultYes: false,
			input:      "YES\n",
			expected:   true,
		},
		{
			name:       "no input",
			message:    "Continue?",
			defaultYes: true,
			input:      "n\n",
			expected:   false,
		},
		{
			name:       "empty input with default yes",
			message:    "Continue?",
			defaultYes: true,
			input:      "\n",
			expected:   true,
		},
		{
			name:       "empty input with default no",
			message:    "Continue?",
			defaultYes: false,
			input:      "\n",
			expected:   false,
		},
		{
			name:        "invalid input",
			message:     "Continue?",
			defaultYes:  false,
			input:       "maybe\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a prompt with a string reader
			p := &realPrompt{
				reader: bufio.NewReader(strings.NewReader(tt.input)),
			}

			result, err := p.PromptForConfirmation(tt.message, tt.defaultYes)
			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfirmationInput)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestRealPrompt_PromptForProject(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedOwner  string
		expectedNumber int
		expectError    bool
	}{
		{
			name:           "owner and number",
			input:          "acme\n7\n",
			expectedOwner:  "acme",
			expectedNumber: 7,
		},
		{
			name:          "empty owner skips board sync",
			input:         "\n",
			expectedOwner: "",
		},
		{
			name:        "non-numeric project number",
			input:       "acme\nseven\n",
			expectError: true,
		},
		{
			name:        "zero project number",
			input:       "acme\n0\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &realPrompt{
				reader: bufio.NewReader(strings.NewReader(tt.input)),
			}

			owner, number, err := p.PromptForProject()
			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidProjectNumber)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOwner, owner)
				assert.Equal(t, tt.expectedNumber, number)
			}
		})
	}
}

func TestFormatChoice(t *testing.T) {
	tests := []struct {
		name     string
		choice   IdeaChoice
		expected string
	}{
		{
			name:     "id only",
			choice:   IdeaChoice{ID: "U-001"},
			expected: "U-001",
		},
		{
			name:     "id and title",
			choice:   IdeaChoice{ID: "U-001", Title: "Button primitive"},
			expected: "U-001: Button primitive",
		},
		{
			name:     "id, title and status",
			choice:   IdeaChoice{ID: "B-012", Title: "Focus trap leak", Status: "In Review"},
			expected: "B-012: Focus trap leak [In Review]",
		},
		{
			name:     "id and status without title",
			choice:   IdeaChoice{ID: "ARCH-003", Status: "Draft"},
			expected: "ARCH-003 [Draft]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatChoice(tt.choice))
		})
	}
}

func TestSelectModel_UpdateFilteredChoices(t *testing.T) {
	choices := []IdeaChoice{
		{ID: "U-001", Title: "Button primitive"},
		{ID: "C-002", Title: "Form composition"},
		{ID: "B-003", Title: "Button focus bug"},
		{ID: "ARCH-004", Title: "Token pipeline"},
	}

	tests := []struct {
		name            string
		filter          string
		expectedIDs     []string
		expectedIndices []int
	}{
		{
			name:            "empty filter shows all",
			filter:          "",
			expectedIDs:     []string{"U-001", "C-002", "B-003", "ARCH-004"},
			expectedIndices: []int{0, 1, 2, 3},
		},
		{
			name:            "filter by title word",
			filter:          "button",
			expectedIDs:     []string{"U-001", "B-003"},
			expectedIndices: []int{0, 2},
		},
		{
			name:            "filter by id",
			filter:          "arch",
			expectedIDs:     []string{"ARCH-004"},
			expectedIndices: []int{3},
		},
		{
			name:            "case insensitive filter",
			filter:          "BUTTON",
			expectedIDs:     []string{"U-001", "B-003"},
			expectedIndices: []int{0, 2},
		},
		{
			name:            "no matches",
			filter:          "nonexistent",
			expectedIDs:     []string{},
			expectedIndices: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := initialSelectModel(choices)
			model.filter = tt.filter
			model.updateFilteredChoices()

			assert.Equal(t, len(tt.expectedIDs), len(model.filteredChoices))
			assert.Equal(t, len(tt.expectedIndices), len(model.filteredIndices))

			for i, expectedID := range tt.expectedIDs {
				assert.Equal(t, expectedID, model.filteredChoices[i].ID)
				assert.Equal(t, tt.expectedIndices[i], model.filteredIndices[i])
			}
		})
	}
}

func TestPromptSelectIdea_EmptyChoices(t *testing.T) {
	p := &realPrompt{reader: bufio.NewReader(strings.NewReader(""))}

	_, err := p.PromptSelectIdea(nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestSelectModel_TeaModelRoundTrip(t *testing.T) {
	choices := []IdeaChoice{
		{ID: "U-001", Title: "Button primitive"},
		{ID: "C-002", Title: "Form composition"},
	}

	model := initialSelectModel(choices)
	assert.Equal(t, len(choices), len(model.choices))
	assert.Equal(t, len(choices), len(model.filteredChoices))

	// The type assertion in promptSelectIdeaBubbleTea relies on the final
	// model coming back as selectModel after key input has been handled.
	var teaModel tea.Model = model
	teaModel, _ = teaModel.Update(tea.KeyMsg{Type: tea.KeyDown})
	teaModel, cmd := teaModel.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)

	castModel, ok := teaModel.(selectModel)
	assert.True(t, ok)
	assert.Equal(t, model.choices, castModel.choices)
	if assert.NotNil(t, castModel.selected) {
		assert.Equal(t, "C-002", castModel.selected.ID)
	}
}

func TestSelectModel_QuitWithoutSelection(t *testing.T) {
	model := initialSelectModel([]IdeaChoice{{ID: "U-001", Title: "Button primitive"}})

	var teaModel tea.Model = model
	teaModel, cmd := teaModel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)

	castModel, ok := teaModel.(selectModel)
	assert.True(t, ok)
	assert.True(t, castModel.quitting)
	assert.Nil(t, castModel.selected)
}
