package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mgoudin/idea-manager/pkg/idea"
	"github.com/mgoudin/idea-manager/pkg/ideamanager"
)

var (
	listStatus string
	listType   string
	listLane   string
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)

	// statusStyles colors the lifecycle column.
	statusStyles = map[idea.Status]lipgloss.Style{
		idea.StatusDraft:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		idea.StatusTicketed: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		idea.StatusBranched: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		idea.StatusPROpen:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		idea.StatusInReview: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		idea.StatusMerged:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		idea.StatusArchived: lipgloss.NewStyle().Faint(true),
	}
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List ideas",
		Long: `List ideas from the ideas directory, optionally filtered.

Examples:
  im list
  im list --status "PR Open"
  im list --type B --lane A`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			im, err := buildIdeaManager(true)
			if err != nil {
				return err
			}

			infos, err := im.ListIdeas(ideamanager.ListIdeasOpts{
				Status: listStatus,
				Type:   listType,
				Lane:   listLane,
			})
			if err != nil {
				return fmt.Errorf("failed to list ideas: %w", err)
			}

			if len(infos) == 0 {
				fmt.Println("No ideas found.")
				return nil
			}

			displayIdeas(infos)
			return nil
		},
	}

	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by lifecycle status")
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by idea type (U, C, ARCH, PB, B)")
	listCmd.Flags().StringVar(&listLane, "lane", "", "Filter by lane")

	return listCmd
}

// displayIdeas renders the listing as a status-colored table.
func displayIdeas(infos []ideamanager.IdeaInfo) {
	idWidth, statusWidth := len("ID"), len("STATUS")
	for _, info := range infos {
		idWidth = max(idWidth, len(info.ID))
		statusWidth = max(statusWidth, len(string(info.Status)))
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf(
		"%-*s  %-*s  %-5s  %s", idWidth, "ID", statusWidth, "STATUS", "LANE", "TITLE")))

	for _, info := range infos {
		statusStyle, ok := statusStyles[info.Status]
		if !ok {
			statusStyle = lipgloss.NewStyle()
		}

		padding := strings.Repeat(" ", statusWidth-len(string(info.Status)))
		fmt.Printf("%-*s  %s%s  %-5s  %s%s\n",
			idWidth, info.ID,
			statusStyle.Render(string(info.Status)), padding,
			info.Lane,
			info.Title,
			renderDetails(info),
		)
	}
}

// renderDetails appends issue/PR/checklist context to a listing row.
func renderDetails(info ideamanager.IdeaInfo) string {
	var parts []string
	if info.Issue != 0 {
		parts = append(parts, fmt.Sprintf("#%d", info.Issue))
	}
	if info.PR != 0 {
		parts = append(parts, fmt.Sprintf("PR #%d", info.PR))
	}
	if info.ChecklistTotal > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", info.ChecklistDone, info.ChecklistTotal))
	}
	if len(parts) == 0 {
		return ""
	}
	return dimStyle.Render("  (" + strings.Join(parts, ", ") + ")")
}
