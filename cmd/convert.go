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
	"os"

	"github.com/spf13/cobra"

	"github.com/aerokits/cfdpp/convert"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [case directories]",
	Short: "Convert CFD++ binary solutions to CGNS",
	Long: `Convert CFD++ binary solutions to CGNS

Runs the external converttoCGNS binary inside each case directory against
pltosout.bin, producing a CGNS file Tecplot can load.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cgnsFile, _ := cmd.Flags().GetString("cgnsFile")
		for _, caseName := range args {
			fmt.Printf("Creating cgns file for %s...\n", caseName)
			if err := convert.CreateCGNS(caseName, cgnsFile); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			fmt.Println("CGNS file is created!")
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("cgnsFile", "o", "solution.cgns", "name of the CGNS file to create")
}
