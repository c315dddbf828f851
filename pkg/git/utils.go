package git

import "strings"

// extractRepoNameFromURL extracts "host/user/repo" from a Git remote URL,
// handling both SSH (git@host:user/repo.git) and HTTPS formats.
func extractRepoNameFromURL(url string) string {
	url = strings.TrimSuffix(url, ".git")

	if strings.Contains(url, "@") && strings.Contains(url, ":") && !strings.HasPrefix(url, "http") {
		parts := strings.SplitN(url, ":", 2)
		hostParts := strings.Split(parts[0], "@")
		if len(hostParts) == 2 {
			return hostParts[1] + "/" + parts[1]
		}
		return ""
	}

	if strings.HasPrefix(url, "http") {
		parts := strings.SplitN(url, "//", 2)
		if len(parts) != 2 {
			return ""
		}
		return parts[1]
	}

	return ""
}
