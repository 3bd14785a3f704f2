package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

var triggerPaths = map[string]string{
	"rotate":    "/api/rotate-chores",
	"mark-late": "/api/mark-late",
}

func triggerCmd() *cobra.Command {
	var (
		baseURL string
		secret  string
		week    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:       "trigger rotate|mark-late",
		Short:     "Call a scheduler endpoint",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"rotate", "mark-late"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("AUTH_CRON_SECRET")
			}
			if secret == "" {
				return errors.New("--secret or AUTH_CRON_SECRET is required")
			}

			url := strings.TrimRight(baseURL, "/") + triggerPaths[args[0]]
			if week != "" && args[0] == "mark-late" {
				url += "?week_start_date=" + week
			}
			return callTrigger(cmd.OutOrStdout(), url, secret, timeout)
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Service base URL")
	cmd.Flags().StringVar(&secret, "secret", "", "Bearer secret (default $AUTH_CRON_SECRET)")
	cmd.Flags().StringVar(&week, "week", "", "Cycle start date for mark-late (yyyy-mm-dd)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	return cmd
}

func callTrigger(out io.Writer, url, secret string, timeout time.Duration) error {
	agent := fiber.Post(url)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+secret)
	agent.Timeout(timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("post %s: %w", url, errors.Join(errs...))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(body)
	}
	_, _ = fmt.Fprintln(out, pretty.String())

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return fmt.Errorf("%s answered %d", url, code)
	}
	return nil
}
