package ideamanager

import (
	"fmt"

	"github.com/mgoudin/idea-manager/pkg/prompt"
)

// resolveID returns the given ID, or prompts the user to pick an idea when
// the ID is empty.
func (im *realIdeaManager) resolveID(id string) (string, error) {
	if id != "" {
		return id, nil
	}

	infos, err := im.listIdeas()
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "", fmt.Errorf("%w: no ideas found", ErrIdeaNotFound)
	}

	choices := make([]prompt.IdeaChoice, 0, len(infos))
	for _, info := range infos {
		choices = append(choices, prompt.IdeaChoice{
			ID:     info.ID,
			Title:  info.Title,
			Status: string(info.Status),
		})
	}

	choice, err := im.deps.Prompt.PromptSelectIdea(choices)
	if err != nil {
		return "", err
	}
	return choice.ID, nil
}
