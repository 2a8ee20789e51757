package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML batch-extraction input file
type ExtractionParameters struct {
	Title      string            `yaml:"Title"`
	Cases      []string          `yaml:"Cases"`
	StrictMode bool              `yaml:"StrictMode"` // fail on recognized-but-absent keys instead of zeroing
	ReportFile string            `yaml:"ReportFile"` // CSV table to append one row per case
	Tecplot    TecplotParameters `yaml:"Tecplot"`
}

// TecplotParameters drive the generated visualization macro.
type TecplotParameters struct {
	MacroFile    string    `yaml:"MacroFile"`
	SolutionFile string    `yaml:"SolutionFile"` // CGNS file inside the case dir
	PressureVar  int       `yaml:"PressureVar"`  // dataset index of static pressure
	ContourVar   int       `yaml:"ContourVar"`   // dataset index to contour (usually Cp)
	CpMin        float64   `yaml:"CpMin"`
	CpMax        float64   `yaml:"CpMax"`
	NumLevels    int       `yaml:"NumLevels"`
	NumZones     int       `yaml:"NumZones"`
	SurfZones    []int     `yaml:"SurfZones"`
	Views        []string  `yaml:"Views"`
	Sections     []float64 `yaml:"Sections"`
	SlicePlane   string    `yaml:"SlicePlane"`
	ZoneIndex    int       `yaml:"ZoneIndex"` // zone created by slice extraction
	DistVar      int       `yaml:"DistVar"`   // variable written per section
}

func (ep *ExtractionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ep)
}

func (ep *ExtractionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ep.Title)
	fmt.Printf("%v\t\t= Cases\n", ep.Cases)
	fmt.Printf("[%v]\t\t\t= StrictMode\n", ep.StrictMode)
	fmt.Printf("[%s]\t\t= ReportFile\n", ep.ReportFile)
	fmt.Printf("[%s]\t\t= Tecplot MacroFile\n", ep.Tecplot.MacroFile)
	fmt.Printf("[%s]\t\t= Tecplot SolutionFile\n", ep.Tecplot.SolutionFile)
	fmt.Printf("Cp levels: [%v, %v] x %d\n", ep.Tecplot.CpMin, ep.Tecplot.CpMax, ep.Tecplot.NumLevels)
	fmt.Printf("Views: %v\n", ep.Tecplot.Views)
	fmt.Printf("Sections: %v on %s\n", ep.Tecplot.Sections, ep.Tecplot.SlicePlane)
}
