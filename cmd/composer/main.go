// Command composer is the operator-facing client for the relay endpoint. It
// collects raw input, runs the client-side validation and submits the
// normalized payload.
package main

import (
	"fmt"
	"os"

	"n8n-relay-api/src/application/usecases/composer"
	"n8n-relay-api/src/domain/outbound"
	logger "n8n-relay-api/src/infrastructure/logger"

	"github.com/spf13/cobra"
)

var (
	endpoint     string
	workflowTag  string
	recipients   string
	message      string
	mediaURL     string
	workflowVars string
	sendAt       string
	checkOnly    bool
)

var rootCmd = &cobra.Command{
	Use:   "composer",
	Short: "Compose and submit an outbound-message request to the relay endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		loggerInstance, err := logger.NewDevelopmentLogger()
		if err != nil {
			return fmt.Errorf("error initializing logger: %w", err)
		}

		c := composer.NewComposer(endpoint, loggerInstance)
		c.SetDraft(outbound.FormDraft{
			WorkflowTag:  workflowTag,
			Recipients:   recipients,
			Message:      message,
			MediaURL:     mediaURL,
			WorkflowVars: workflowVars,
			SendAt:       sendAt,
		})

		if checkOnly {
			if !c.CanSubmit() {
				_, issues := outbound.ParseForm(c.Draft())
				for _, issue := range issues {
					fmt.Fprintln(os.Stderr, "- "+issue)
				}
				return fmt.Errorf("draft is not submittable")
			}
			fmt.Println("Draft is valid")
			return nil
		}

		outcome := c.Submit()
		fmt.Println(outcome.Message)
		for _, issue := range outcome.Issues {
			fmt.Fprintln(os.Stderr, "- "+issue)
		}
		if outcome.State != composer.StateSuccess {
			return fmt.Errorf("submission failed")
		}
		if len(outcome.N8NResponse) > 0 {
			fmt.Println(string(outcome.N8NResponse))
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080/api/trigger", "Relay endpoint URL")
	rootCmd.Flags().StringVar(&workflowTag, "tag", "", "Workflow tag routing hint")
	rootCmd.Flags().StringVar(&recipients, "recipients", "", "Recipients, separated by commas or newlines")
	rootCmd.Flags().StringVar(&message, "message", "", "Message body template")
	rootCmd.Flags().StringVar(&mediaURL, "media-url", "", "Optional media URL")
	rootCmd.Flags().StringVar(&workflowVars, "vars", "", "Optional workflow variables as a JSON object")
	rootCmd.Flags().StringVar(&sendAt, "send-at", "", "Optional send-at date/time, passed through to the workflow")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "Validate the draft without submitting")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
