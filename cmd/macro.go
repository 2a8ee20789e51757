/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aerokits/cfdpp/InputParameters"
	"github.com/aerokits/cfdpp/parser"
	"github.com/aerokits/cfdpp/tecplot"
)

// macroCmd represents the macro command
var macroCmd = &cobra.Command{
	Use:   "macro [case directory]",
	Short: "Generate a Tecplot macro for a processed case",
	Long: `Generate a Tecplot macro for a processed case

Builds an .mcr file that loads the converted CGNS solution, derives the
pressure coefficient from the case's extracted reference conditions, and
exports surface contours and spanwise Cp distributions.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, _ := cmd.Flags().GetString("inputFile")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if len(inputFile) == 0 {
			fmt.Println("error: must supply a batch file (-I, --inputFile) with Tecplot options")
			os.Exit(1)
		}
		data, err := ioutil.ReadFile(inputFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ep := &InputParameters.ExtractionParameters{}
		if err = ep.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = RunMacro(args[0], ep, verbose); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(macroCmd)
	macroCmd.Flags().StringP("inputFile", "I", "", "YAML batch file with Tecplot options")
}

func RunMacro(caseName string, ep *InputParameters.ExtractionParameters, verbose bool) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	p, err := parser.New(caseName, parser.WithLogger(logger))
	if err != nil {
		return err
	}
	res, err := p.Process()
	if err != nil {
		return err
	}

	tp := ep.Tecplot
	if len(tp.SolutionFile) == 0 {
		tp.SolutionFile = "solution.cgns"
	}
	surfZones := tp.SurfZones
	if len(surfZones) == 0 {
		// Fall back to the wing boundaries tagged in the run log.
		upper, lower, found, err := p.WingBoundaries()
		if err != nil {
			return err
		}
		if found {
			surfZones = []int{upper, lower}
		}
	}

	m := tecplot.NewMacro(filepath.Dir(tp.MacroFile))
	m.LoadCGNS(filepath.Join(caseName, tp.SolutionFile))
	m.PressureCoefficient(res.Ref.Pressure, res.Ref.Density, res.Ref.Vmag, tp.PressureVar)
	levels := tecplot.CpLevels(tp.CpMin, tp.CpMax, tp.NumLevels)
	for _, view := range tp.Views {
		output := filepath.Join(caseName, fmt.Sprintf("Contour_cp_%s.jpg", sanitizeView(view)))
		m.Contour(tp.NumZones, surfZones, tp.ContourVar, levels, tecplot.View(view), output)
	}
	for _, section := range tp.Sections {
		output := filepath.Join(caseName, fmt.Sprintf("CpDistribution_%v.dat", section))
		m.VarDistribution(section, tp.ZoneIndex, tp.DistVar, tp.SlicePlane, output)
	}

	macroFile := tp.MacroFile
	if len(macroFile) == 0 {
		macroFile = filepath.Join(caseName, filepath.Base(caseName)+".mcr")
	}
	return m.WriteFile(macroFile)
}

func sanitizeView(view string) string {
	return strings.ReplaceAll(view, " ", "_")
}
