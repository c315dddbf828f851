package projects

// fieldsQuery resolves the ProjectV2 field union: plain fields expose id and
// name, single-select fields additionally expose their options.
const fieldsQuery = `query($project: ID!) {
  node(id: $project) {
    ... on ProjectV2 {
      fields(first: 50) {
        nodes {
          ... on ProjectV2Field { id name }
          ... on ProjectV2SingleSelectField {
            id
            name
            options { id name }
          }
        }
      }
    }
  }
}`

// ResolveFields resolves field and option IDs for a project. Results are
// memoized per project for the lifetime of the process.
func (p *realProjects) ResolveFields(projectID string) (*Fields, error) {
	p.mu.Lock()
	if cached, ok := p.fieldCache[projectID]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	var result struct {
		Node struct {
			Fields struct {
				Nodes []struct {
					ID      string `json:"id"`
					Name    string `json:"name"`
					Options []struct {
						ID   string `json:"id"`
						Name string `json:"name"`
					} `json:"options"`
				} `json:"nodes"`
			} `json:"fields"`
		} `json:"node"`
	}
	if err := p.graphql(fieldsQuery, map[string]string{"project": projectID}, nil, &result); err != nil {
		return nil, err
	}

	fields := &Fields{
		IDs:     make(map[string]string),
		Options: make(map[string]map[string]string),
	}
	for _, node := range result.Node.Fields.Nodes {
		if node.ID == "" {
			continue
		}
		fields.IDs[node.Name] = node.ID
		if len(node.Options) > 0 {
			options := make(map[string]string, len(node.Options))
			for _, option := range node.Options {
				options[option.Name] = option.ID
			}
			fields.Options[node.Name] = options
		}
	}

	p.mu.Lock()
	p.fieldCache[projectID] = fields
	p.mu.Unlock()

	return fields, nil
}
