package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mwehrli/flowsankey/pkg/flow"
	"github.com/mwehrli/flowsankey/pkg/pipeline"
)

// inspectCommand creates the inspect command for examining a flow document
// without rendering it.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		themePath   string
		keepLeaves  bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Inspect a flow document and its derived diagram structure",
		Long: `Inspect a flow document: node and link counts, which leaf nodes the
renderer would hide, and the per-node flow summaries that appear as hover
text in the rendered diagram.

With --interactive, browse the visible nodes and their summaries in a
terminal UI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Input: args[0], KeepLeaves: keepLeaves}
			if themePath != "" {
				if err := applyTheme(&opts, themePath); err != nil {
					return err
				}
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runInspect(opts, interactive)
		},
	}

	cmd.Flags().StringVar(&themePath, "theme", "", "TOML theme file (locale and labels for summaries)")
	cmd.Flags().BoolVar(&keepLeaves, "keep-leaves", false, "keep leaf nodes instead of pruning them")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse node summaries in a terminal UI")

	return cmd
}

func (c *CLI) runInspect(opts pipeline.Options, interactive bool) error {
	g, err := flow.ReadFile(opts.Input)
	if err != nil {
		return err
	}

	a := pipeline.Analyze(g, opts)
	for _, s := range a.Skipped {
		c.Logger.Warn(s.Warning())
	}

	if interactive {
		if a.Reduction.NodeCount() == 0 {
			printWarning("all nodes are leaves; nothing to browse")
			return nil
		}
		m := NewNodeListModel(a)
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}

	fmt.Println(StyleTitle.Render("Document"))
	printKeyValue("Nodes", fmt.Sprintf("%d", g.NodeCount()))
	printKeyValue("Links", fmt.Sprintf("%d", g.LinkCount()))
	if len(a.Skipped) > 0 {
		printKeyValue("Skipped", fmt.Sprintf("%d", len(a.Skipped)))
	}

	fmt.Println()
	fmt.Println(StyleTitle.Render("Diagram"))
	printKeyValue("Visible", fmt.Sprintf("%d", a.Reduction.NodeCount()))
	printKeyValue("Hidden", fmt.Sprintf("%d", a.Classification.HiddenCount()))
	printKeyValue("Flows", fmt.Sprintf("%d", a.Reduction.LinkCount()))

	if a.Reduction.NodeCount() == 0 {
		fmt.Println()
		printWarning("all nodes are leaves; the diagram is empty")
		return nil
	}

	fmt.Println()
	fmt.Println(StyleTitle.Render("Nodes"))
	for i, n := range a.Reduction.Nodes {
		fmt.Printf("  %s %s\n",
			StyleValue.Render(n.Name),
			StyleDim.Render(fmt.Sprintf("(total %.2f)", a.Annotation.Totals[i])))
	}

	return nil
}
