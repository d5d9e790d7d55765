package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/catalog"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/grouping"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

var (
	verbose   bool
	team      string
	latitude  float64
	longitude float64
	models    []string
	points    int
)

var rootCmd = &cobra.Command{
	Use:   "geoatmoplot",
	Short: "Find the weather model grid points closest to a coordinate",
	Long: `Select the nearest grid points per weather model around a query
coordinate, group the points shared between models, and export the result
as an interactive HTML map or a KML file.`,
	SilenceUsage: true,
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the available team profiles",
	RunE:  runTeams,
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List a team's models and grid resolutions",
	RunE:  runModels,
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Print the nearest grid points grouped across models",
	RunE:  runGroups,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	modelsCmd.Flags().StringVarP(&team, "team", "t", "", "Team identifier (SIROCCO, NEBBO; empty for the legacy catalog)")

	addQueryFlags(groupsCmd)

	rootCmd.AddCommand(teamsCmd, modelsCmd, groupsCmd, mapCmd, kmlCmd)
}

// addQueryFlags wires the flags shared by every command that runs the engine
func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&team, "team", "t", "", "Team identifier (SIROCCO, NEBBO; empty for the legacy catalog)")
	cmd.Flags().Float64Var(&latitude, "latitude", 0, "Query latitude in decimal degrees")
	cmd.Flags().Float64Var(&longitude, "longitude", 0, "Query longitude in decimal degrees")
	cmd.Flags().StringSliceVarP(&models, "models", "m", nil, "Model names (default ECMWF, GFS_0.5)")
	cmd.Flags().IntVarP(&points, "points", "n", 4, "Nearest points per model")
	_ = cmd.MarkFlagRequired("latitude")
	_ = cmd.MarkFlagRequired("longitude")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runTeams(cmd *cobra.Command, args []string) error {
	for _, t := range catalog.NewCatalogService().Teams() {
		fmt.Println(string(t))
	}
	return nil
}

func runModels(cmd *cobra.Command, args []string) error {
	cat := catalog.NewCatalogService()
	t := catalog.Team(strings.ToUpper(team))

	names, err := cat.ModelsFor(t)
	if err != nil {
		return err
	}
	profiles, err := cat.ProfilesFor(t)
	if err != nil {
		return err
	}
	for _, name := range names {
		profile, ok := profiles.GetForModel(name)
		if !ok {
			continue
		}
		fmt.Printf("%-12s step=%-5.2f lat=(%g, %g) lon=(%g, %g)\n",
			name, profile.Step, profile.LatMin, profile.LatMax, profile.LonMin, profile.LonMax)
	}
	return nil
}

func runGroups(cmd *cobra.Command, args []string) error {
	result, _, err := computeGroups(cmd)
	if err != nil {
		return err
	}
	for _, g := range result.Groups {
		fmt.Printf("%s  %s\n", g.Point.Label(), strings.Join(g.Models, ", "))
	}
	return nil
}

// computeGroups runs the engine with the shared query flags. The
// deprecated --ecmwf/--gfs flags route through the legacy two-model entry
// point when --models is absent.
func computeGroups(cmd *cobra.Command) (*grouping.Result, types.Coords, error) {
	svc := grouping.NewService(newLogger())
	query := types.NewCoords(latitude, longitude)

	if len(models) == 0 && (cmd.Flags().Changed("ecmwf") || cmd.Flags().Changed("gfs")) {
		result, err := svc.ComputeLegacy(query, useECMWF, useGFS, points)
		return result, query, err
	}

	selected := models
	if len(selected) == 0 {
		selected = catalog.DefaultModels
	}
	result, err := svc.Compute(grouping.Request{
		Team:    catalog.Team(strings.ToUpper(team)),
		Query:   query,
		Models:  selected,
		NPoints: points,
	})
	return result, query, err
}
