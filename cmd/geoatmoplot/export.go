package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/export"
)

var (
	asset    string
	outDir   string
	label    string
	force    bool
	useECMWF bool
	useGFS   bool
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Export the grouped points as an interactive HTML map",
	RunE:  runMap,
}

var kmlCmd = &cobra.Command{
	Use:   "kml",
	Short: "Export the grouped points as KML placemarks",
	RunE:  runKML,
}

func init() {
	for _, cmd := range []*cobra.Command{mapCmd, kmlCmd} {
		addQueryFlags(cmd)
		cmd.Flags().StringVarP(&asset, "asset", "a", "", "Output file name, extension appended when missing")
		cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory")
		cmd.Flags().StringVar(&label, "label", "", "Query marker label (POINT for maps, OBJECTIVE for KML)")
		cmd.Flags().BoolVar(&force, "force", false, "Replace an existing output file without asking")
		cmd.Flags().BoolVar(&useECMWF, "ecmwf", false, "Select the ECMWF model")
		cmd.Flags().BoolVar(&useGFS, "gfs", false, "Select the GFS_0.5 model")
		_ = cmd.Flags().MarkDeprecated("ecmwf", "use --models ECMWF instead")
		_ = cmd.Flags().MarkDeprecated("gfs", "use --models GFS_0.5 instead")
		_ = cmd.MarkFlagRequired("asset")
	}
}

func runMap(cmd *cobra.Command, args []string) error {
	return runExport(cmd, export.Service.ExportHTML)
}

func runKML(cmd *cobra.Command, args []string) error {
	return runExport(cmd, export.Service.ExportKML)
}

func runExport(cmd *cobra.Command, write func(export.Service, export.Request) (string, error)) error {
	result, query, err := computeGroups(cmd)
	if err != nil {
		return err
	}

	svc := export.NewService(newLogger())
	path, err := write(svc, export.Request{
		Asset:      asset,
		Dir:        outDir,
		Query:      query,
		Groups:     result.Groups,
		QueryLabel: label,
		Confirm:    confirmOverwrite,
	})
	if err != nil {
		if errors.Is(err, export.ErrOverwriteDeclined) {
			fmt.Println("Existing file kept.")
			return nil
		}
		return err
	}

	fmt.Printf("Wrote %s (%d points)\n", path, len(result.Groups))
	return nil
}

// confirmOverwrite asks on stdin unless --force was given
func confirmOverwrite(path string) bool {
	if force {
		return true
	}
	fmt.Printf("%s already exists. Overwrite? [y/N]: ", path)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
