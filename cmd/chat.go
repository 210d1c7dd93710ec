package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pedagogue-ai/pedagogue/internal/orchestrator"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive conversation for planning lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		teacher, _ := cmd.Flags().GetString("teacher")

		env, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer env.persist(cmd.Context())

		fmt.Println(titleStyle.Render("Педагог — планування уроків"))
		fmt.Println(dimStyle.Render("Опишіть урок, який хочете підготувати. Вихід: exit або вихід."))
		fmt.Println()

		// One session spans the whole conversation so follow-up
		// requests keep their context.
		sessionID := uuid.NewString()
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			switch strings.ToLower(line) {
			case "exit", "quit", "вихід":
				return scanner.Err()
			}

			p, err := env.orch.HandleTeacherRequest(cmd.Context(), line, teacher, sessionID)
			if err != nil {
				var cerr *orchestrator.ClarificationError
				if errors.As(err, &cerr) {
					fmt.Println(cerr.Question())
					continue
				}
				fmt.Println(failStyle.Render("Помилка: " + err.Error()))
				continue
			}

			fmt.Println(renderPlanSummary(p))
			fmt.Println()
		}
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().String("teacher", "", "Teacher ID for personalization")
}
