package projects

import "fmt"

// upsertItemMutation adds an issue to the board. The mutation is idempotent
// server-side: adding an already-present issue returns the existing item.
const upsertItemMutation = `mutation($project: ID!, $content: ID!) {
  addProjectV2ItemById(input: {projectId: $project, contentId: $content}) {
    item { id }
  }
}`

// UpsertItem adds an issue to the project and returns the item ID.
func (p *realProjects) UpsertItem(projectID, issueNodeID string) (string, error) {
	var result struct {
		AddProjectV2ItemByID struct {
			Item struct {
				ID string `json:"id"`
			} `json:"item"`
		} `json:"addProjectV2ItemById"`
	}
	err := p.graphql(upsertItemMutation, map[string]string{
		"project": projectID,
		"content": issueNodeID,
	}, nil, &result)
	if err != nil {
		return "", err
	}

	itemID := result.AddProjectV2ItemByID.Item.ID
	if itemID == "" {
		return "", fmt.Errorf("%w: upsert returned no item", ErrGraphQL)
	}
	return itemID, nil
}
