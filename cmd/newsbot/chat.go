// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/newsbot/internal/chat"
	"github.com/pdiddy/newsbot/internal/news"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive news loop (default)",
	Long: `Chat reads a keyword per line, prints the latest matching articles with a
short summary, and repeats. Type exit, quit, 종료, or 끝 to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := newsConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	loop := &chat.Loop{
		In:           cmd.InOrStdin(),
		Out:          out,
		Searcher:     news.NewFetcher(cfg, out),
		MaxResults:   cfg.MaxResults,
		MaxSentences: cfg.MaxSentences,
	}
	return loop.Run(cmd.Context())
}
