package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jenkins-cicd/hello-server/internal/hellosdk"
	"github.com/jenkins-cicd/hello-server/internal/server"
)

func init() {
	rootCmd.AddCommand(newProbeCmd())
}

func newProbeCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:       "probe [health|ready]",
		Short:     "Check a running hello-server, for container health checks",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{hellosdk.EndpointHealth, hellosdk.EndpointReady},
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := hellosdk.EndpointHealth
			if len(args) == 1 {
				endpoint = args[0]
			}

			target := baseURL
			if target == "" {
				target = defaultProbeURL()
			}

			client, err := hellosdk.New(target, timeout)
			if err != nil {
				return err
			}

			if err := client.Check(cmd.Context(), endpoint); err != nil {
				return fmt.Errorf("probe %s: %w", endpoint, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s ok\n", endpoint)
			return err
		},
	}

	cmd.Flags().StringVarP(&baseURL, "url", "u", "", "Server base URL (default http://127.0.0.1:$PORT)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", hellosdk.DefaultTimeout, "Request timeout")

	return cmd
}

func defaultProbeURL() string {
	port := server.DefaultPort
	if appConfig != nil {
		port = appConfig.Server.HTTP.Port
	}
	return fmt.Sprintf("http://127.0.0.1:%d", port)
}
