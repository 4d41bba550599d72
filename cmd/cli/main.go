package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eaglesemanation/wsexport/internal/adapter/graphql"
	"github.com/eaglesemanation/wsexport/internal/domain"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/idgen"
	"github.com/eaglesemanation/wsexport/internal/infrastructure/session"
	"github.com/eaglesemanation/wsexport/internal/usecase"
)

var (
	endpoint string
	profile  string
	timeout  time.Duration
	verbose  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wsexport",
		Short: "Wealthsimple transaction history exporter",
		Long:  `Exports Wealthsimple transaction history as a CSV document.`,
	}

	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "https://my.wealthsimple.com/graphql", "GraphQL API endpoint")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "invest", "Trade profile header value")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(timeframesCmd())

	return rootCmd
}

func exportCmd() *cobra.Command {
	var (
		cookie     string
		token      string
		identityID string
		accountIDs []string
		timeframe  string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run an export and write the CSV document",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, identity, err := resolveSession(cookie, token, identityID)
			if err != nil {
				return err
			}

			tf, err := domain.ParseTimeframe(timeframe)
			if err != nil {
				return err
			}

			logger := newLogger()
			client := graphql.NewClient(endpoint, profile, timeout, nil, logger)
			sources := graphql.NewSources(client, tok)
			uc := usecase.NewExportUseCase(sources, sources, sources, sources, idgen.NewULIDGenerator(), nil, logger)

			result, err := uc.Export(cmd.Context(), usecase.ExportInput{
				IdentityID: identity,
				AccountIDs: accountIDs,
				Timeframe:  tf,
			})
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(result.Document)
				return err
			}
			path := output
			if path == "" {
				path = result.Filename
			}
			if err := os.WriteFile(path, result.Document, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", result.RowCount, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&cookie, "cookie", "", "Raw _oauth2_access_v2 cookie value")
	cmd.Flags().StringVar(&token, "token", "", "OAuth access token (requires --identity)")
	cmd.Flags().StringVar(&identityID, "identity", "", "Identity canonical id (requires --token)")
	cmd.Flags().StringSliceVar(&accountIDs, "accounts", nil, "Account ids to export (default: all)")
	cmd.Flags().StringVar(&timeframe, "timeframe", "last-30-days", "Export timeframe")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: derived filename, - for stdout)")

	return cmd
}

func timeframesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeframes",
		Short: "List supported export timeframes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, key := range domain.TimeframeKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
		},
	}
}

// resolveSession picks credentials from either the raw session cookie or the
// token and identity flags.
func resolveSession(cookie, token, identityID string) (string, string, error) {
	if cookie != "" {
		s, err := session.ParseCookieValue(cookie)
		if err != nil {
			return "", "", err
		}
		return s.AccessToken, s.IdentityID, nil
	}
	if token == "" || identityID == "" {
		return "", "", fmt.Errorf("provide --cookie, or both --token and --identity")
	}
	return token, identityID, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
