package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"habitat-api/internal/domain/usecase/location"
)

type cli struct {
	useCase  location.UseCase
	jsonMode bool
}

func newRootCmd() *cobra.Command {
	c := &cli{useCase: location.NewLocationUseCase(location.Config{})}

	root := &cobra.Command{
		Use:          "location-cli",
		Short:        "Query the city, district and neighborhood hierarchy",
		Long:         "Lookups over the bundled location hierarchy. Unknown names print nothing.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&c.jsonMode, "json", false, "print JSON instead of plain lines")

	root.AddCommand(
		c.citiesCmd(),
		c.districtsCmd(),
		c.neighborhoodsCmd(),
		c.resolveCmd(),
		c.expandCmd(),
		c.searchCmd(),
		c.suggestCmd(),
		c.formatCmd(),
		c.parseCmd(),
	)
	return root
}

func (c *cli) citiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printLines(cmd.OutOrStdout(), c.useCase.ListCities())
		},
	}
}

func (c *cli) districtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "districts CITY",
		Short: "List the districts of a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printLines(cmd.OutOrStdout(), c.useCase.ListDistricts(args[0]))
		},
	}
}

func (c *cli) neighborhoodsCmd() *cobra.Command {
	var district string
	cmd := &cobra.Command{
		Use:   "neighborhoods CITY",
		Short: "List the neighborhoods of a city or of one of its districts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printLines(cmd.OutOrStdout(), c.useCase.ListNeighborhoods(args[0], district))
		},
	}
	cmd.Flags().StringVar(&district, "district", "", "restrict to one district")
	return cmd
}

func (c *cli) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve CITY QUERY",
		Short: "Classify a query and list the neighborhoods it selects",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolution, ok := c.useCase.Resolve(args[1], args[0])
			if !ok {
				return nil
			}
			out := cmd.OutOrStdout()
			if c.jsonMode {
				return writeJSON(out, resolution)
			}
			if _, err := fmt.Fprintf(out, "%s\t%s\n", resolution.Kind, resolution.District); err != nil {
				return err
			}
			return c.printLines(out, resolution.Neighborhoods)
		},
	}
}

func (c *cli) expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand CITY QUERY",
		Short: "List the neighborhoods a listing filter selects",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expansion := c.useCase.Expand(args[1], args[0])
			if c.jsonMode {
				return writeJSON(cmd.OutOrStdout(), expansion)
			}
			return c.printLines(cmd.OutOrStdout(), expansion.Neighborhoods)
		},
	}
}

func (c *cli) searchCmd() *cobra.Command {
	var minLength int
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find neighborhoods by prefix or substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printLines(cmd.OutOrStdout(), c.useCase.Search(args[0], minLength))
		},
	}
	cmd.Flags().IntVar(&minLength, "min-length", 0, "shortest query answered (default 3)")
	return cmd
}

func (c *cli) suggestCmd() *cobra.Command {
	var (
		city  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "suggest QUERY",
		Short: "Autocomplete options for a search box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions := c.useCase.Suggest(args[0], city, limit)
			if c.jsonMode {
				return writeJSON(cmd.OutOrStdout(), suggestions)
			}
			for _, s := range suggestions {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Kind, s.Label); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "restrict to one city")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum suggestions (default 10)")
	return cmd
}

func (c *cli) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format NEIGHBORHOOD DISTRICT CITY",
		Short: "Build a display name; pass an empty DISTRICT for the short form",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := c.useCase.FormatDisplayName(args[0], args[1], args[2])
			if c.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"label": label})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), label)
			return err
		},
	}
}

func (c *cli) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse LABEL",
		Short: "Split a display name into its parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ok := c.useCase.ParseDisplayName(args[0])
			if !ok {
				return nil
			}
			if c.jsonMode {
				return writeJSON(cmd.OutOrStdout(), name)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n%s\n", name.Neighborhood, name.District, name.City)
			return err
		},
	}
}

func (c *cli) printLines(out io.Writer, lines []string) error {
	if c.jsonMode {
		if lines == nil {
			lines = []string{}
		}
		return writeJSON(out, lines)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
