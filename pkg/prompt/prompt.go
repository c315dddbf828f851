package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.4.0 -source=prompt.go -destination=mockprompt.gen.go -package=prompt

// IdeaChoice represents a selectable idea.
type IdeaChoice struct {
	ID     string
	Title  string
	Status string
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForIdeasDir prompts the user for the ideas directory.
	PromptForIdeasDir(defaultIdeasDir string) (string, error)

	// PromptForStatusFile prompts the user for the status file location.
	PromptForStatusFile(defaultStatusFile string) (string, error)

	// PromptForProject prompts the user for the project board owner and number.
	PromptForProject() (owner string, number int, err error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectIdea prompts the user to select an idea from a list.
	PromptSelectIdea(choices []IdeaChoice) (IdeaChoice, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForIdeasDir prompts the user for the ideas directory.
func (p *realPrompt) PromptForIdeasDir(defaultIdeasDir string) (string, error) {
	if defaultIdeasDir == "" {
		defaultIdeasDir = "ideas"
	}
	fmt.Printf("Choose the location of the ideas directory "+
		"(ex: ideas, docs/ideas): [default: %s]: ", defaultIdeasDir)

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultIdeasDir, nil
	}
	return input, nil
}

// PromptForStatusFile prompts the user for the status file location.
func (p *realPrompt) PromptForStatusFile(defaultStatusFile string) (string, error) {
	if defaultStatusFile == "" {
		defaultStatusFile = "~/.im/status.yaml"
	}
	fmt.Printf("Choose the location of the status file "+
		"(ex: ~/.im/status.yaml, ./im-status.yaml): [default: %s]: ", defaultStatusFile)

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultStatusFile, nil
	}
	return input, nil
}

// PromptForProject prompts the user for the project board owner and number.
func (p *realPrompt) PromptForProject() (string, int, error) {
	fmt.Print("GitHub project owner (user or organization, empty to skip board sync): ")
	owner, err := p.readLine()
	if err != nil {
		return "", 0, err
	}
	if owner == "" {
		return "", 0, nil
	}

	fmt.Print("GitHub project number: ")
	input, err := p.readLine()
	if err != nil {
		return "", 0, err
	}

	var number int
	if _, err := fmt.Sscanf(input, "%d", &number); err != nil || number <= 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidProjectNumber, input)
	}

	return owner, number, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectIdea prompts the user to select an idea from a list.
func (p *realPrompt) PromptSelectIdea(choices []IdeaChoice) (IdeaChoice, error) {
	if len(choices) == 0 {
		return IdeaChoice{}, ErrNoChoices
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectIdeaBubbleTea(choices)
}

// readLine reads a single trimmed line from stdin.
func (p *realPrompt) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
