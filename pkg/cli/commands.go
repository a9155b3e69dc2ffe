package cli

import (
	"github.com/spf13/cobra"

	"suite/pkg/commands"
)

func addCmd(s *session) *cobra.Command {
	var due, priority, category string

	cmd := &cobra.Command{
		Use:     "add <text>",
		Short:   "Add a new task",
		Example: `  suite add "Pay rent" --due 2024-05-03 --priority high --category home
  suite add "Read a book"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleAddTask(s.board, cmd.OutOrStdout(), args[0], due, priority, category)
		},
	}
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "priority: high, medium or low")
	cmd.Flags().StringVar(&category, "category", "", "category label")
	return cmd
}

func listCmd(s *session) *cobra.Command {
	var search, filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks by priority, due date and age",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleListCommand(s.board, cmd.OutOrStdout(), search, filter)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only tasks whose text contains this")
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "all, completed or pending")
	return cmd
}

func doneCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task between done and pending",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleToggleTask(s.board, cmd.OutOrStdout(), args[0])
		},
	}
}

func editCmd(s *session) *cobra.Command {
	var text, due, priority, category string

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Change the text, due date, priority or category of a task",
		Example: `  suite edit 1714550400000 --text "Pay rent and bills" --due ""`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fields commands.EditFields
			flags := cmd.Flags()
			if flags.Changed("text") {
				fields.Text = &text
			}
			if flags.Changed("due") {
				fields.Due = &due
			}
			if flags.Changed("priority") {
				fields.Priority = &priority
			}
			if flags.Changed("category") {
				fields.Category = &category
			}
			return commands.HandleEditTask(s.board, cmd.OutOrStdout(), args[0], fields)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "new text")
	cmd.Flags().StringVar(&due, "due", "", "new due date (YYYY-MM-DD, empty clears it)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "new priority")
	cmd.Flags().StringVar(&category, "category", "", "new category (empty clears it)")
	return cmd
}

func deleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleDeleteTask(s.board, cmd.OutOrStdout(), args[0])
		},
	}
}

func clearCmd(s *session) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleClearCommand(s.board, cmd.InOrStdin(), cmd.OutOrStdout(), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

func statsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress, streak and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleStatsCommand(s.board, cmd.OutOrStdout())
		},
	}
}

func badgesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "badges",
		Aliases: []string{"achievements"},
		Short:   "Show earned and locked achievements",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleBadgesCommand(s.board, cmd.OutOrStdout())
		},
	}
}

func exportCmd(s *session) *cobra.Command {
	var exportType string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export tasks to json, yaml or txt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleExportCommand(s.env.Fs, s.board, cmd.OutOrStdout(), args[0], exportType)
		},
	}
	cmd.Flags().StringVarP(&exportType, "type", "t", "json", "export format: json, yaml or txt")
	return cmd
}

func importCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a json, yaml or txt export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.HandleImportCommand(s.env.Fs, s.board, cmd.OutOrStdout(), args[0])
		},
	}
}
