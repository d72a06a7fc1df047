package cli

import (
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"ontrack/internal/core/domain"
)

// NewRootCmd builds the ontrack command tree on top of h. The menu command
// reads its answers from in.
func NewRootCmd(h *Handler, in io.Reader) *cobra.Command {
	var lang string

	rootCmd := &cobra.Command{
		Use:           "ontrack",
		Short:         "OnTrack - track units, tasks and portfolio readiness",
		Long:          "OnTrack keeps units, their tasks, task chat threads and target grades in memory and checks whether a unit portfolio can be submitted.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			h.SetLanguage(lang)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.RunMenu(in)
		},
	}
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "output language (en, fr)")

	rootCmd.AddCommand(
		unitsCmd(h),
		tasksCmd(h),
		messagesCmd(h),
		postCmd(h),
		gradeCmd(h),
		statusCmd(h),
		submitCmd(h),
		menuCmd(h, in),
	)
	return rootCmd
}

func unitsCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List all units with their target grade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.ListUnits()
		},
	}
}

func tasksCmd(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of a unit aimed at a target grade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unitID, _ := cmd.Flags().GetString("unit")
			grade, _ := cmd.Flags().GetString("grade")
			return h.TasksByGrade(unitID, grade)
		},
	}
	cmd.Flags().String("unit", "", "unit id")
	cmd.Flags().String("grade", "", "target grade (P, C, D, HD)")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("grade")
	return cmd
}

func messagesCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "messages [task-id]",
		Short: "Show the chat thread of a task, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Messages(args[0])
		},
	}
}

func postCmd(h *Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post [task-id]",
		Short: "Post a chat message on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, _ := cmd.Flags().GetString("sender")
			content, _ := cmd.Flags().GetString("content")
			return h.PostMessage(args[0], sender, content)
		},
	}
	cmd.Flags().String("sender", "Student", "sender label")
	cmd.Flags().String("content", "", "message text")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func gradeCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "grade [unit-id] [grade]",
		Short: "Choose the target grade of a unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.ChooseGrade(args[0], args[1])
		},
	}
}

func statusCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "status [task-id] [status]",
		Short: "Change the status of a task",
		Long:  "Change the status of a task. Accepted statuses: " + statusList() + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return h.fail(err)
			}
			return h.ChangeStatus(args[0], status)
		},
	}
}

func submitCmd(h *Handler) *cobra.Command {
	return &cobra.Command{
		Use:   "submit [unit-id]",
		Short: "Check whether every task of a unit is ready for feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.SubmitPortfolio(args[0])
		},
	}
}

func menuCmd(h *Handler, in io.Reader) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.RunMenu(in)
		},
	}
}

func statusList() string {
	names := lo.Map(domain.Statuses(), func(status domain.Status, _ int) string {
		return status.String()
	})
	return strings.Join(names, ", ")
}
