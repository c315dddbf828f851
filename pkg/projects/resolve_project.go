package projects

import (
	"fmt"
	"strings"
)

const resolveOrgProjectQuery = `query($owner: String!, $number: Int!) {
  organization(login: $owner) {
    projectV2(number: $number) { id }
  }
}`

const resolveUserProjectQuery = `query($owner: String!, $number: Int!) {
  user(login: $owner) {
    projectV2(number: $number) { id }
  }
}`

// ResolveProject resolves a project number to its node ID. Owners can be
// organizations or users; the organization lookup is tried first.
func (p *realProjects) ResolveProject(owner string, number int) (string, error) {
	strVars := map[string]string{"owner": owner}
	intVars := map[string]int{"number": number}

	var orgResult struct {
		Organization struct {
			ProjectV2 struct {
				ID string `json:"id"`
			} `json:"projectV2"`
		} `json:"organization"`
	}
	err := p.graphql(resolveOrgProjectQuery, strVars, intVars, &orgResult)
	if err == nil && orgResult.Organization.ProjectV2.ID != "" {
		return orgResult.Organization.ProjectV2.ID, nil
	}
	if err != nil && !isResolveMiss(err) {
		return "", err
	}

	var userResult struct {
		User struct {
			ProjectV2 struct {
				ID string `json:"id"`
			} `json:"projectV2"`
		} `json:"user"`
	}
	err = p.graphql(resolveUserProjectQuery, strVars, intVars, &userResult)
	if err == nil && userResult.User.ProjectV2.ID != "" {
		return userResult.User.ProjectV2.ID, nil
	}
	if err != nil && !isResolveMiss(err) {
		return "", err
	}

	return "", fmt.Errorf("%w: %s/%d", ErrProjectNotFound, owner, number)
}

// isResolveMiss reports whether the error is gh surfacing a NOT_FOUND for the
// wrong owner type, which is expected during the org/user union probe.
func isResolveMiss(err error) bool {
	return strings.Contains(err.Error(), "Could not resolve") ||
		strings.Contains(err.Error(), "NOT_FOUND")
}
