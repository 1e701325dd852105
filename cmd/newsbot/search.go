// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/newsbot/internal/news"
	"github.com/pdiddy/newsbot/internal/present"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword...>",
	Short: "Run a single news search and exit",
	Long: `Search joins its arguments into one keyword, fetches the matching
articles once, and prints them. Unlike the interactive loop, a failed request
is reported as an error and a non-zero exit status.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output articles as JSON")
	searchCmd.Flags().Bool("yaml", false, "output articles as YAML")
	searchCmd.MarkFlagsMutuallyExclusive("json", "yaml")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := newsConfig()
	if err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	f := news.NewFetcher(cfg, cmd.ErrOrStderr())

	articles, err := f.Search(cmd.Context(), query, cfg.MaxResults)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	switch {
	case jsonOutput:
		return present.JSON(out, articles)
	case yamlOutput:
		return present.YAML(out, articles)
	}
	present.Articles(out, articles, cfg.MaxSentences)
	return nil
}
