package projects

const setSingleSelectMutation = `mutation($project: ID!, $item: ID!, $field: ID!, $option: String!) {
  updateProjectV2ItemFieldValue(input: {
    projectId: $project,
    itemId: $item,
    fieldId: $field,
    value: { singleSelectOptionId: $option }
  }) {
    projectV2Item { id }
  }
}`

const setTextMutation = `mutation($project: ID!, $item: ID!, $field: ID!, $text: String!) {
  updateProjectV2ItemFieldValue(input: {
    projectId: $project,
    itemId: $item,
    fieldId: $field,
    value: { text: $text }
  }) {
    projectV2Item { id }
  }
}`

// SetSingleSelect sets a single-select field of an item.
func (p *realProjects) SetSingleSelect(projectID, itemID, fieldID, optionID string) error {
	return p.graphql(setSingleSelectMutation, map[string]string{
		"project": projectID,
		"item":    itemID,
		"field":   fieldID,
		"option":  optionID,
	}, nil, nil)
}

// SetText sets a text field of an item.
func (p *realProjects) SetText(projectID, itemID, fieldID, text string) error {
	return p.graphql(setTextMutation, map[string]string{
		"project": projectID,
		"item":    itemID,
		"field":   fieldID,
		"text":    text,
	}, nil, nil)
}
