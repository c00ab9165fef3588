// Command studygo queries the StudyGo API from the command line and prints
// the normalized records as JSON.
//
// Configuration comes from flags or STUDYGO_* environment variables; a .env
// file in the working directory is loaded first when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/joho/godotenv"
	studygo "github.com/polarlearn/go-studygo"
	"github.com/polarlearn/go-studygo/pkg/types"
	"github.com/polarlearn/go-studygo/pkg/validation"
	"github.com/spf13/cobra"
)

type options struct {
	baseURL string
	locale  string
	strict  bool
	debug   bool
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "studygo",
		Short:         "Query the StudyGo API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", os.Getenv("STUDYGO_BASE_URL"), "API base URL (env STUDYGO_BASE_URL)")
	flags.StringVar(&opts.locale, "locale", envOr("STUDYGO_LOCALE", studygo.DefaultLocaleCode), "locale sent with requests (env STUDYGO_LOCALE)")
	flags.BoolVar(&opts.strict, "strict", envBool("STUDYGO_STRICT"), "fail on error statuses and missing fields (env STUDYGO_STRICT)")
	flags.BoolVar(&opts.debug, "debug", envBool("STUDYGO_DEBUG"), "log requests to stderr (env STUDYGO_DEBUG)")

	root.AddCommand(
		newTokenCommand(opts),
		newUserCommand(opts),
		newForumCommand(opts),
		newPostCommand(opts),
		newListCommand(opts),
	)

	return root
}

// logger writes structured logs to w, the command's stderr, so stdout stays
// valid JSON.
func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *options) client(logger *slog.Logger) (*studygo.Client, error) {
	return studygo.NewClient(&studygo.Config{
		BaseURL:    o.baseURL,
		LocaleCode: o.locale,
		Strict:     o.strict,
		Logger:     logger,
	})
}

func newTokenCommand(opts *options) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Exchange email and password for a session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" || password == "" {
				return errors.New("--email and --password (or STUDYGO_EMAIL and STUDYGO_PASSWORD) are required")
			}

			logger := opts.logger(cmd.ErrOrStderr())
			client, err := opts.client(logger)
			if err != nil {
				return err
			}

			token, err := client.GetToken(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := validation.ValidateTokenData(token); err != nil {
				logger.Warn("token looks unusable", "error", err)
			}

			return writeJSON(cmd.OutOrStdout(), token)
		},
	}

	cmd.Flags().StringVar(&email, "email", os.Getenv("STUDYGO_EMAIL"), "account email (env STUDYGO_EMAIL)")
	cmd.Flags().StringVar(&password, "password", os.Getenv("STUDYGO_PASSWORD"), "account password (env STUDYGO_PASSWORD)")

	return cmd
}

func newUserCommand(opts *options) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show the profile of the token's owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if token == "" {
				return errors.New("--token (or STUDYGO_TOKEN) is required")
			}

			client, err := opts.client(opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			profile, err := client.GetUserData(cmd.Context(), token)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), profile)
		},
	}

	cmd.Flags().StringVar(&token, "token", os.Getenv("STUDYGO_TOKEN"), "session token (env STUDYGO_TOKEN)")

	return cmd
}

func newForumCommand(opts *options) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "forum",
		Short: "List forum questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.client(opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			posts, err := client.GetForumPage(cmd.Context(), &types.ForumPageRequest{Offset: offset})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), posts)
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "listing offset; 0 is the first page")

	return cmd
}

func newPostCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "post <id>",
		Short: "Show a single forum question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client(opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			post, err := client.GetForumPost(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), post)
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <id>",
		Short: "Show a vocabulary list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid list id %q: %w", args[0], err)
			}

			client, err := opts.client(opts.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			list, err := client.GetListByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), describeLanguages(list))

			return writeJSON(cmd.OutOrStdout(), list)
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
