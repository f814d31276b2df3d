package fixtures

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by NewCommand.
// For example KILOSORT_FIXTURES_BASE_URL overrides --base-url.
const EnvPrefix = "KILOSORT_FIXTURES"

// NewCommand creates a Cobra command tree for fixture management.
// The returned command can be executed directly or added to a parent CLI.
//
// Commands provided:
//   - fixtures fetch <dir>
//   - fixtures list
//   - fixtures status <dir>
//
// Global flags: --json, --quiet, --verbose, --base-url
func NewCommand(cfg Config, opts ...FetcherOption) *cobra.Command {
	var (
		jsonOutput bool
		quiet      bool
		verbose    bool
	)

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("base-url", cfg.BaseURL)

	// Fetcher will be created in PersistentPreRunE
	var f Fetcher

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Manage kilosort test fixtures",
		Long:  "Download the kilosort test recording fixtures into a local directory.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			c := cfg
			c.BaseURL = v.GetString("base-url")

			fopts := append([]FetcherOption(nil), opts...)
			fopts = append(fopts, WithOutput(cmd.OutOrStdout()))
			if quiet || jsonOutput {
				fopts = append(fopts, WithOutput(io.Discard))
			}

			var err error
			f, err = NewFetcher(c, fopts...)
			if err != nil {
				return fmt.Errorf("failed to initialize fetcher: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().String("base-url", cfg.BaseURL, "Base URL the fixtures are downloaded from")
	bindFlags(v, cmd.PersistentFlags())

	cmd.AddCommand(fetchCmd(&f, &jsonOutput, &verbose))
	cmd.AddCommand(listCmd(&f, &jsonOutput))
	cmd.AddCommand(statusCmd(&f, &jsonOutput))

	return cmd
}

func fetchCmd(f *Fetcher, jsonOutput, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <dir>",
		Short: "Download the fixtures into a directory",
		Long:  "Create <dir> if needed and download every fixture into it, overwriting existing files.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := (*f).Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if *jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			if *verbose {
				for _, file := range result.Files {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", file.Path, humanize.Bytes(uint64(file.Size)))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", humanize.Bytes(uint64(result.TotalSize())))
			}
			return nil
		},
	}
}

func listCmd(f *Fetcher, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fixtures and their source URLs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return outputURLs(cmd.OutOrStdout(), (*f).URLs(), *jsonOutput)
		},
	}
}

func statusCmd(f *Fetcher, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "status <dir>",
		Short: "Show which fixtures are present in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := (*f).Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return outputStatus(cmd.OutOrStdout(), statuses, *jsonOutput)
		},
	}
}

// bindFlags binds every flag in flags to the viper key of the same name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// BindPFlag only fails for a nil flag.
		_ = v.BindPFlag(f.Name, f)
	})
}

// Output helpers

func outputURLs(w io.Writer, urls []string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(urls)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tURL")
	for _, u := range urls {
		fmt.Fprintf(tw, "%s\t%s\n", u[strings.LastIndex(u, "/")+1:], u)
	}
	return tw.Flush()
}

func outputStatus(w io.Writer, statuses []FileStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tPRESENT\tSIZE")
	for _, s := range statuses {
		size := "-"
		if s.Present {
			size = humanize.Bytes(uint64(s.Size))
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\n", s.Name, s.Present, size)
	}
	return tw.Flush()
}
