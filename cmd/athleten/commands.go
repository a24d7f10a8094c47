package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/naveenspark/athleten/pkg/client"
	"github.com/naveenspark/athleten/pkg/domain"
)

func (c *cli) searchCmd() *cobra.Command {
	var file, name string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search athletes and print the preview names",
		Long: `Search athletes from the command line.

The form is read from a YAML file with the same fields as the interactive
search (name, nation, boat_class, competition_category_id, run, ranks,
birth_year_from, birth_year_to). --name overrides the file's name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := readForm(file)
			if err != nil {
				return err
			}
			if name != "" {
				form.Name = name
			}
			_, st, err := c.newSession(c.expiredNotice())
			if err != nil {
				return err
			}
			if err := st.PostSearchAthlete(cmd.Context(), form); err != nil {
				return fmt.Errorf("search: %w", err)
			}
			printNames(c.out, st.PreviewAthleteResults())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML search form")
	cmd.Flags().StringVar(&name, "name", "", "athlete name")
	return cmd
}

// maxParallelSubmits bounds concurrent form posts in submit.
const maxParallelSubmits = 4

func (c *cli) submitCmd() *cobra.Command {
	var files []string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Send search forms to the form endpoint",
		Long: `Send one or more search forms to the configured form endpoint.

Delivery is fire-and-forget: a failed post does not fail the command.
Rejected requests are still logged to stderr by the API client.
Unreadable form files are reported as errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, st, err := c.newSession(c.expiredNotice())
			if err != nil {
				return err
			}
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxParallelSubmits)
			for _, file := range files {
				g.Go(func() error {
					form, err := readForm(file)
					if err != nil {
						return err
					}
					st.PostFormData(ctx, form)
					return nil
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "YAML search form, repeatable (required)")
	cmd.MarkFlagRequired("file") //nolint:errcheck // flag is defined above
	return cmd
}

func (c *cli) optionsCmd() *cobra.Command {
	var nationsOnly bool
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Print the search filter options as YAML",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			opts := domain.DefaultFilterOptions()
			if nationsOnly {
				for _, code := range opts.NationCodes() {
					name, _ := opts.NationName(code)
					fmt.Fprintf(c.out, "%s\t%s\n", code, name)
				}
				return nil
			}
			enc := yaml.NewEncoder(c.out)
			enc.SetIndent(2)
			if err := enc.Encode(opts); err != nil {
				return fmt.Errorf("encode options: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&nationsOnly, "nations", false, "print only nation codes and names")
	return cmd
}

func (c *cli) athleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "athlete <id>",
		Short: "Print a full athlete record as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid athlete id %q", args[0])
			}
			api, _, err := c.newSession(c.expiredNotice())
			if err != nil {
				return err
			}
			a, err := api.GetAthlete(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("athlete: %w", err)
			}
			enc := yaml.NewEncoder(c.out)
			enc.SetIndent(2)
			if err := enc.Encode(a); err != nil {
				return fmt.Errorf("encode athlete: %w", err)
			}
			return enc.Close()
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintln(c.out, "athleten "+version)
		},
	}
}

// expiredNotice tells the user to log in again when a request comes back 401.
func (c *cli) expiredNotice() client.Navigator {
	return client.NavigatorFunc(func(string) {
		fmt.Fprintln(os.Stderr, "Session expired. Run: athleten login")
	})
}

// readForm decodes a YAML search form. An empty path yields an empty form.
func readForm(path string) (domain.SearchForm, error) {
	var form domain.SearchForm
	if path == "" {
		return form, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return form, fmt.Errorf("open form: %w", err)
	}
	defer f.Close() //nolint:errcheck

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&form); err != nil && !errors.Is(err, io.EOF) {
		return form, fmt.Errorf("parse form %s: %w", path, err)
	}
	return form, nil
}
