package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pedagogue-ai/pedagogue/internal/config"
	"github.com/pedagogue-ai/pedagogue/internal/search"
	"github.com/pedagogue-ai/pedagogue/internal/standards"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Inspect and fetch curriculum standards documents",
}

var standardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available standards files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		svc := standards.NewService(cfg.StandardsDir, nil)
		files, err := svc.ListAvailable()
		if err != nil {
			return fmt.Errorf("list standards: %w", err)
		}

		if len(files) == 0 {
			fmt.Printf("No standards documents in %s.\n", cfg.StandardsDir)
			fmt.Println(dimStyle.Render("Назвіть файли за шаблоном: математика_5_клас.txt"))
			return nil
		}

		fmt.Printf("Standards documents in %s:\n", cfg.StandardsDir)
		for _, f := range files {
			fmt.Println("  " + f)
		}
		return nil
	},
}

var standardsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the matched standards for a grade and subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		subject, _ := cmd.Flags().GetString("subject")
		if grade == 0 || subject == "" {
			return fmt.Errorf("both --grade and --subject are required")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		res := standards.NewService(cfg.StandardsDir, nil).Get(grade, subject)
		if !res.Success {
			fmt.Println(failStyle.Render("Не знайдено: " + res.Err))
			if len(res.AvailableFiles) > 0 {
				fmt.Println("Наявні файли:")
				for _, f := range res.AvailableFiles {
					fmt.Println("  " + f)
				}
			}
			if res.Hint != "" {
				fmt.Println(dimStyle.Render(res.Hint))
			}
			return nil
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("%s, %d клас", subject, grade)))
		fmt.Println(dimStyle.Render("Файл: " + res.File))
		fmt.Println()

		printBlock := func(title string, lines []string) {
			if len(lines) == 0 {
				return
			}
			fmt.Println(title)
			for _, l := range lines {
				fmt.Println("  - " + l)
			}
			fmt.Println()
		}

		printBlock("Компетентності:", res.Competencies)
		printBlock("Очікувані результати навчання:", res.LearningOutcomes)

		if len(res.Competencies) == 0 && len(res.LearningOutcomes) == 0 {
			fmt.Println(strings.TrimSpace(res.TextPreview))
		}
		return nil
	},
}

var standardsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the public curriculum listing for documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		download, _ := cmd.Flags().GetString("download")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client := search.NewClient(cfg.SearchURL, search.NewCache(cfg.CacheDir, search.DefaultTTL))

		if download != "" {
			body, err := client.FetchDocument(cmd.Context(), download)
			if err != nil {
				return fmt.Errorf("fetch document: %w", err)
			}
			name := filepath.Base(download)
			path := filepath.Join(cfg.StandardsDir, name)
			if err := os.MkdirAll(cfg.StandardsDir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return err
			}
			fmt.Println("Збережено: " + path)
			return nil
		}

		query := ""
		if len(args) > 0 {
			query = strings.Join(args, " ")
		}
		links, err := client.FindDocuments(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("search curriculum listing: %w", err)
		}
		if len(links) == 0 {
			fmt.Println("Документів не знайдено.")
			return nil
		}
		for _, l := range links {
			title := l.Title
			if title == "" {
				title = filepath.Base(l.URL)
			}
			fmt.Println(titleStyle.Render(title))
			fmt.Println(dimStyle.Render("  " + l.URL))
		}
		return nil
	},
}

func init() {
	standardsGetCmd.Flags().IntP("grade", "g", 0, "Grade, 1-11")
	standardsGetCmd.Flags().StringP("subject", "s", "", "School subject")

	standardsSearchCmd.Flags().String("download", "", "Fetch one document URL into the standards directory")

	standardsCmd.AddCommand(standardsListCmd)
	standardsCmd.AddCommand(standardsGetCmd)
	standardsCmd.AddCommand(standardsSearchCmd)
}
