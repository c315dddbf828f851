package projects

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
)

// Runner executes gh CLI invocations.
type Runner interface {
	// Run executes `gh <args...>` and returns stdout.
	Run(args ...string) ([]byte, error)
}

type ghRunner struct{}

// newGhRunner creates a Runner backed by the gh binary.
func newGhRunner() Runner {
	return &ghRunner{}
}

// Run executes `gh <args...>` and returns stdout.
func (r *ghRunner) Run(args ...string) ([]byte, error) {
	cmd := exec.Command("gh", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("gh %s failed: %w (stderr: %s)", args[0], err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("gh %s failed: %w", args[0], err)
	}
	return output, nil
}

// graphql runs a GraphQL query through `gh api graphql` and decodes the data
// envelope into out. String variables are passed with -f, integers with -F.
func (p *realProjects) graphql(query string, strVars map[string]string, intVars map[string]int, out interface{}) error {
	args := []string{"api", "graphql", "-f", "query=" + query}
	for _, key := range sortedKeys(strVars) {
		args = append(args, "-f", fmt.Sprintf("%s=%s", key, strVars[key]))
	}
	for _, key := range sortedIntKeys(intVars) {
		args = append(args, "-F", fmt.Sprintf("%s=%d", key, intVars[key]))
	}

	output, err := p.runner.Run(args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGraphQL, err)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(output, &envelope); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrGraphQL, err)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("%w: failed to decode data: %w", ErrGraphQL, err)
		}
	}
	return nil
}

// sortedKeys keeps gh invocations deterministic for logging and tests.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedIntKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
