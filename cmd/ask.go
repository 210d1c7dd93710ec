package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pedagogue-ai/pedagogue/internal/orchestrator"
)

var askCmd = &cobra.Command{
	Use:   "ask <text>",
	Short: "Generate a lesson plan from a free-text request",
	Long: `Describes the lesson in natural language, for example:

  pedagogue ask "Склади урок з математики для 5 класу про дроби"

When the message omits the grade, subject or topic, the command asks
for the missing pieces instead of guessing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		teacher, _ := cmd.Flags().GetString("teacher")
		sessionID, _ := cmd.Flags().GetString("session")
		format, _ := cmd.Flags().GetString("export")
		outDir, _ := cmd.Flags().GetString("out")

		env, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer env.persist(cmd.Context())

		text := strings.Join(args, " ")
		p, err := env.orch.HandleTeacherRequest(cmd.Context(), text, teacher, sessionID)
		if err != nil {
			var cerr *orchestrator.ClarificationError
			if errors.As(err, &cerr) {
				fmt.Println(cerr.Question())
				return nil
			}
			return err
		}

		fmt.Println(renderPlanSummary(p))

		if format != "" {
			path, err := exportPlan(p, format, outDir, env.cfg.ExportDir)
			if err != nil {
				return err
			}
			fmt.Println(dimStyle.Render("Збережено: " + path))
		}

		return nil
	},
}

func init() {
	askCmd.Flags().String("teacher", "", "Teacher ID for personalization")
	askCmd.Flags().String("session", "", "Session ID to continue")
	askCmd.Flags().String("export", "", "Export format: txt or md")
	askCmd.Flags().String("out", "", "Export directory (default PEDAGOGUE_EXPORT_DIR)")
}
