package projects

import (
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// itemsQuery pages through board items, resolving the linked issue number and
// the current Status option name for each.
const itemsQuery = `query($project: ID!, $cursor: String) {
  node(id: $project) {
    ... on ProjectV2 {
      items(first: 100, after: $cursor) {
        pageInfo { hasNextPage endCursor }
        nodes {
          id
          content { ... on Issue { number } }
          fieldValueByName(name: "Status") {
            ... on ProjectV2ItemFieldSingleSelectValue { name }
          }
        }
      }
    }
  }
}`

const (
	waitInitialInterval = 500 * time.Millisecond
	waitMaxRetries      = 5
)

type itemsPage struct {
	Node struct {
		Items struct {
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
			Nodes []struct {
				ID      string `json:"id"`
				Content struct {
					Number int `json:"number"`
				} `json:"content"`
				FieldValueByName struct {
					Name string `json:"name"`
				} `json:"fieldValueByName"`
			} `json:"nodes"`
		} `json:"items"`
	} `json:"node"`
}

// ListItems lists all issue-linked items of a project.
func (p *realProjects) ListItems(projectID string) ([]Item, error) {
	var items []Item
	cursor := ""

	for {
		strVars := map[string]string{"project": projectID}
		if cursor != "" {
			strVars["cursor"] = cursor
		}

		var page itemsPage
		if err := p.graphql(itemsQuery, strVars, nil, &page); err != nil {
			return nil, err
		}

		for _, node := range page.Node.Items.Nodes {
			if node.Content.Number == 0 {
				// Draft items and pull requests are not tracked.
				continue
			}
			items = append(items, Item{
				ID:          node.ID,
				IssueNumber: node.Content.Number,
				Status:      node.FieldValueByName.Name,
			})
		}

		if !page.Node.Items.PageInfo.HasNextPage {
			return items, nil
		}
		cursor = page.Node.Items.PageInfo.EndCursor
	}
}

// ItemForIssue finds the board item linked to an issue number.
func (p *realProjects) ItemForIssue(projectID string, issueNumber int) (*Item, error) {
	items, err := p.ListItems(projectID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].IssueNumber == issueNumber {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: #%d", ErrItemNotFound, issueNumber)
}

// WaitForItem polls for the board item of an issue with exponential backoff.
// The board is eventually consistent: an item added through UpsertItem may
// not be visible to queries immediately.
func (p *realProjects) WaitForItem(projectID string, issueNumber int) (*Item, error) {
	var item *Item

	operation := func() error {
		found, err := p.ItemForIssue(projectID, issueNumber)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				p.logger.Logf("Item for issue #%d not visible yet, retrying...", issueNumber)
				return err
			}
			return backoff.Permanent(err)
		}
		item = found
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = waitInitialInterval
	if err := backoff.Retry(operation, backoff.WithMaxRetries(policy, waitMaxRetries)); err != nil {
		return nil, err
	}
	return item, nil
}
