// Command wdprobe is a thin debugging aid for the WebDynpro client
// core, not an application: it navigates to an app, runs the bootstrap
// handshake, and dumps element/table state as JSON. Real applications
// are expected to be built on internal/app and internal/command
// directly rather than shelling out to this CLI (spec.md §6: "CLI /
// env vars / config files. Not part of the core.").
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uskr/wdclient/internal/app"
	"github.com/uskr/wdclient/internal/client"
	"github.com/uskr/wdclient/internal/command"
	"github.com/uskr/wdclient/internal/config"
	"github.com/uskr/wdclient/internal/logx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var appName string

	root := &cobra.Command{
		Use:   "wdprobe",
		Short: "Debugging probe for WebDynpro Lightspeed applications",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&appName, "app", "", "application name to navigate to")
	root.MarkPersistentFlagRequired("app")

	root.AddCommand(newNavigateCmd(&configPath, &appName))
	root.AddCommand(newReadCmd(&configPath, &appName))

	return root
}

func buildClient(ctx context.Context, configPath, appName string) (*client.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log := logx.FromEnv()
	return app.Build(ctx, cfg.BaseURL, appName, app.Options{UserAgent: cfg.UserAgent, Log: log})
}

func newNavigateCmd(configPath, appName *string) *cobra.Command {
	return &cobra.Command{
		Use:   "navigate",
		Short: "Navigate to the app and run the bootstrap handshake, printing the resulting document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := buildClient(cmd.Context(), *configPath, *appName)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cl.Body().RawHTML())
			return nil
		},
	}
}

// newReadCmd dispatches one read command (ComboBox, InputField, or
// SapTable) against a freshly-built client and prints its result as
// JSON. It is deliberately read-only: wdprobe is a debugging
// convenience, never a vehicle for driving write commands against a
// production enrollment system.
func newReadCmd(configPath, appName *string) *cobra.Command {
	var kind, id string
	var paged bool
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Dispatch a read command (combobox|inputfield|table) and print its result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := buildClient(cmd.Context(), *configPath, *appName)
			if err != nil {
				return err
			}

			var c command.Command
			switch kind {
			case "combobox":
				c = command.ComboBoxLSData(id)
			case "inputfield":
				c = command.InputFieldValue(id)
			case "table":
				if paged {
					c = command.SapTablePagedBody(id)
				} else {
					c = command.SapTableBody(id)
				}
			default:
				return fmt.Errorf("unknown --kind %q (want combobox, inputfield, or table)", kind)
			}

			result, err := c.Dispatch(cmd.Context(), cl)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "combobox, inputfield, or table")
	cmd.Flags().StringVar(&id, "id", "", "element id")
	cmd.Flags().BoolVar(&paged, "paged", false, "for --kind table: accumulate every page")
	cmd.MarkFlagRequired("kind")
	cmd.MarkFlagRequired("id")
	return cmd
}
