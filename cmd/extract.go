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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/aerokits/cfdpp/InputParameters"
	"github.com/aerokits/cfdpp/parser"
	"github.com/aerokits/cfdpp/report"
)

type ModelExtract struct {
	Cases      []string
	InputFile  string
	ReportFile string
	Strict     bool
	Profile    bool
	Verbose    bool
}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [case directories]",
	Short: "Extract aerodynamic coefficients from CFD++ case directories",
	Long: `Extract aerodynamic coefficients from CFD++ case directories

Reads the run log, force/moment report and geometry reference files of each
case, computes lift/drag/moment coefficients, and optionally appends a row
per case to a CSV results table.`,
	Run: func(cmd *cobra.Command, args []string) {
		me := &ModelExtract{Cases: args}
		me.InputFile, _ = cmd.Flags().GetString("inputFile")
		me.ReportFile, _ = cmd.Flags().GetString("reportFile")
		me.Strict, _ = cmd.Flags().GetBool("strict")
		me.Profile, _ = cmd.Flags().GetBool("profile")
		me.Verbose, _ = cmd.Flags().GetBool("verbose")
		processExtractInput(me)
		RunExtract(me)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("inputFile", "I", "", "YAML batch file listing cases and output options")
	extractCmd.Flags().StringP("reportFile", "R", "", "CSV results table to append one row per case")
	extractCmd.Flags().BoolP("strict", "s", false, "fail on recognized-but-absent keys instead of zeroing them")
	extractCmd.Flags().BoolP("profile", "p", false, "write a CPU profile for the extraction run")
}

func processExtractInput(me *ModelExtract) {
	if len(me.InputFile) != 0 {
		data, err := ioutil.ReadFile(me.InputFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		ep := &InputParameters.ExtractionParameters{}
		if err = ep.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		me.Cases = append(me.Cases, ep.Cases...)
		me.Strict = me.Strict || ep.StrictMode
		if len(me.ReportFile) == 0 {
			me.ReportFile = ep.ReportFile
		}
	}
	if len(me.Cases) == 0 {
		err := fmt.Errorf("must supply case directories as arguments or a batch file (-I, --inputFile)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Wing-body sweep"
Cases:
  - sample
StrictMode: false
ReportFile: results.csv
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
}

func RunExtract(me *ModelExtract) {
	if me.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	logger := newLogger(me.Verbose)
	defer logger.Sync()

	mode := parser.ModeLenient
	if me.Strict {
		mode = parser.ModeStrict
	}

	var writer *report.Writer
	if len(me.ReportFile) != 0 {
		writer = report.NewWriter(me.ReportFile)
	}

	for _, caseName := range me.Cases {
		p, err := parser.New(caseName, parser.WithMode(mode), parser.WithLogger(logger))
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		res, err := p.Process()
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		printResult(res)
		if writer != nil {
			if err = writer.Append(report.FromResult(res)); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
	}
}

func printResult(res *parser.Result) {
	c := res.Coefficients()
	fmt.Printf("                 Case Name: %s\n", res.CaseName)
	fmt.Printf("            Cl-driver case: %v\n", res.CLDriven)
	fmt.Printf("    Total number of bounds: %d\n", res.Bounds.Count)
	fmt.Printf("             No-slip walls: %v\n", res.Bounds.NoSlipWalls)
	fmt.Printf("           Angle of attack: %v\n", res.Geom.Alpha)
	fmt.Printf("               Mach number: %v\n", res.Ref.Mach)
	fmt.Printf("          Lift Coefficient: %v %v %v\n", c.Lift.Total, c.Lift.Inviscid, c.Lift.Viscous)
	fmt.Printf("          Drag Coefficient: %v %v %v\n", c.Drag.Total, c.Drag.Inviscid, c.Drag.Viscous)
	fmt.Printf("        Moment Coefficient: %v\n", c.Moment)
	fmt.Printf("                       L/D: %v\n", c.LiftDrag)
	fmt.Printf("                     Force: %v\n", res.Loads.ForceTotal)
	fmt.Printf("                    Moment: %v\n", res.Loads.Moment)
	fmt.Printf("Center of Pressure (x-dir): %v\n", c.CenterOfPressure)
}
