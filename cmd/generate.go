package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pedagogue-ai/pedagogue/internal/export"
	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a lesson plan from explicit parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		duration, _ := cmd.Flags().GetInt("duration")
		teacher, _ := cmd.Flags().GetString("teacher")
		sessionID, _ := cmd.Flags().GetString("session")
		format, _ := cmd.Flags().GetString("export")
		outDir, _ := cmd.Flags().GetString("out")

		env, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer env.persist(cmd.Context())

		p, err := env.orch.GenerateLessonPlan(cmd.Context(), plan.Request{
			Grade:           grade,
			Subject:         subject,
			Topic:           topic,
			DurationMinutes: duration,
			TeacherID:       teacher,
			SessionID:       sessionID,
		})
		if err != nil {
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

// exportPlan writes the plan in the requested format and returns the path.
func exportPlan(p *plan.LessonPlan, format, outDir, defaultDir string) (string, error) {
	dir := outDir
	if dir == "" {
		dir = defaultDir
	}

	switch format {
	case "txt":
		path := filepath.Join(dir, export.DefaultFilename(p, "txt"))
		return path, export.ToTXT(p, path)
	case "md":
		path := filepath.Join(dir, export.DefaultFilename(p, "md"))
		return path, export.ToMarkdown(p, path)
	default:
		return "", fmt.Errorf("unknown export format %q (use txt or md)", format)
	}
}

func init() {
	generateCmd.Flags().IntP("grade", "g", 0, "Grade, 1-11")
	generateCmd.Flags().StringP("subject", "s", "", "School subject")
	generateCmd.Flags().StringP("topic", "t", "", "Lesson topic")
	generateCmd.Flags().IntP("duration", "d", plan.DefaultDurationMinutes, "Lesson duration in minutes")
	generateCmd.Flags().String("teacher", "", "Teacher ID for personalization")
	generateCmd.Flags().String("session", "", "Session ID to continue")
	generateCmd.Flags().String("export", "", "Export format: txt or md")
	generateCmd.Flags().String("out", "", "Export directory (default PEDAGOGUE_EXPORT_DIR)")
}
