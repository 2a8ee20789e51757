// Package tecplot generates Tecplot 360 macro (.mcr) files that load a
// converted CGNS solution, derive the pressure coefficient from freestream
// reference values, and export surface contours and spanwise distributions.
package tecplot

import (
	"fmt"
	"os"
	"strings"
)

// View names a canonical camera orientation for contour export.
type View string

const (
	ViewXPlus  View = "+X view"
	ViewXMinus View = "-X view"
	ViewYPlus  View = "+Y view"
	ViewYMinus View = "-Y view"
	ViewZPlus  View = "+Z view"
	ViewZMinus View = "-Z view"
)

// viewAngles maps a view to the Tecplot (psi, theta, alpha) camera angles.
var viewAngles = map[View][3]float64{
	ViewXPlus:  {90.0, -90.0, 0.0},
	ViewXMinus: {0.0, 90.0, 0.0},
	ViewYPlus:  {90.0, 180.0, 0.0},
	ViewYMinus: {90.0, 0.0, 0.0},
	ViewZPlus:  {0.0, 0.0, 0.0},
	ViewZMinus: {180.0, -180.0, 0.0},
}

// Angles returns the camera angles for the view, defaulting to +Z when the
// view is not recognized.
func (v View) Angles() (psi, theta, alpha float64) {
	a, ok := viewAngles[v]
	if !ok {
		return 0, 0, 0
	}
	return a[0], a[1], a[2]
}

// CpLevels builds n+1 evenly spaced contour levels spanning [min, max].
func CpLevels(min, max float64, n int) []float64 {
	levels := make([]float64, n+1)
	delta := (max - min) / float64(n)
	for i := range levels {
		levels[i] = min + float64(i)*delta
	}
	return levels
}

// Macro assembles .mcr command blocks. Generated files carry a do-not-edit
// banner since they are rebuilt from extraction results on every run.
type Macro struct {
	lines []string
}

// NewMacro starts a macro with the version header and the MFBD variable.
func NewMacro(tecplotPath string) *Macro {
	m := &Macro{}
	m.add("#!MC 1410")
	m.add("$!VarSet |MFBD| = '" + tecplotPath + "'")
	m.banner("This tecplot mcr file is produced automatically.", "DON'T do any modification.")
	return m
}

// LoadCGNS appends the dataset-read block for a converted solution file.
func (m *Macro) LoadCGNS(cgnsFile string) {
	m.banner("Load Solution File")
	m.add(`$!READDATASET  '"STANDARDSYNTAX" "1.0" "FILELIST_CGNSFILES" "1" "` + cgnsFile +
		`" "LoadBCs" "Yes" "AssignStrandIDs" "Yes" "LoaderVersion" "V3" "CgnsLibraryVersion" "3.1.4"'`)
	m.add("  DATASETREADER = 'CGNS Loader'")
	m.add("  READDATAOPTION = NEW")
	m.add("  RESETSTYLE = YES")
	m.add("  ASSIGNSTRANDIDS = NO")
	m.add("  INITIALPLOTTYPE = CARTESIAN3D")
	m.add("  INITIALPLOTFIRSTZONEONLY = NO")
	m.add("  ADDZONESTOEXISTINGSTRANDS = NO")
	m.add("$!RemoveVar |MFBD|")
}

// PressureCoefficient appends an ALTERDATA equation deriving Cp from the
// freestream reference pressure, density and velocity magnitude. pressureVar
// is the dataset index of the static-pressure variable.
func (m *Macro) PressureCoefficient(refPres, refDens, refVmag float64, pressureVar int) {
	m.banner("Setup Pressure Coefficient")
	m.add("$!ALTERDATA")
	m.add(fmt.Sprintf("  EQUATION = '{Cp}=(V%d-%v)/(0.5*%v*%v*%v)'",
		pressureVar, refPres, refDens, refVmag, refVmag))
}

// Contour appends a contour-export block: surface zones only, the given
// contour variable and levels, camera set to view, exported as JPEG.
func (m *Macro) Contour(numZones int, surfZones []int, varIndex int, levels []float64, view View, outputFile string) {
	m.banner("Output Pressure Contour")
	m.add("$!FIELDLAYERS SHOWSHADE = NO")
	m.add("$!FIELDLAYERS USELIGHTINGEFFECT = NO")
	for i := 1; i <= numZones; i++ {
		m.add(fmt.Sprintf("$!ACTIVEFIELDMAPS -= [%d]", i))
	}
	for _, z := range surfZones {
		m.add(fmt.Sprintf("$!ACTIVEFIELDMAPS += [%d]", z))
	}
	m.add("$!GLOBALRGB REDCHANNELVAR = 9")
	m.add("$!GLOBALRGB GREENCHANNELVAR = 4")
	m.add("$!GLOBALRGB BLUECHANNELVAR = 4")
	m.add("$!SETCONTOURVAR")
	m.add(fmt.Sprintf("  VAR = %d", varIndex))
	m.add("  CONTOURGROUP = 1")
	m.add("  LEVELINITMODE = RESETTONICE")
	m.add("$!FIELDLAYERS SHOWCONTOUR = YES")
	m.add("$!CONTOURLEVELS NEW")
	m.add("  CONTOURGROUP = 1")
	m.add("  RAWDATA")
	m.add(fmt.Sprintf("%d", len(levels)))
	for _, level := range levels {
		m.add(fmt.Sprintf("%v", level))
	}
	if len(surfZones) > 0 {
		m.add(fmt.Sprintf("$!FIELDMAP [%d-%d]  CONTOUR{CONTOURTYPE = BOTHLINESANDFLOOD}",
			surfZones[0], surfZones[len(surfZones)-1]))
	}

	psi, theta, alpha := view.Angles()
	m.add("## fit data to the view")
	m.add(fmt.Sprintf("$!THREEDVIEW PSIANGLE = %v", psi))
	m.add(fmt.Sprintf("$!THREEDVIEW THETAANGLE = %v", theta))
	m.add(fmt.Sprintf("$!THREEDVIEW ALPHAANGLE = %v", alpha))
	m.add("$!VIEW FITSURFACES")
	m.add("## export frame")
	m.add("$!EXPORTSETUP EXPORTFORMAT = JPEG")
	m.add("$!EXPORTSETUP IMAGEWIDTH = 1045")
	m.add("$!EXPORTSETUP QUALITY = 100")
	m.add("$!EXPORTSETUP JPEGENCODING = PROGRESSIVE")
	m.add("$!EXPORTSETUP EXPORTFNAME = '" + outputFile + "'")
	m.add("$!EXPORT")
	m.add("  EXPORTREGION = CURRENTFRAME")
}

// VarDistribution appends a slice-extraction block writing the distribution
// of one variable along a spanwise section to a point-format dataset.
func (m *Macro) VarDistribution(section float64, zoneIndex, varIndex int, slicePlane, outputFile string) {
	m.banner(fmt.Sprintf("Variable Distribution at section %v", section))
	m.add("## add slice")
	m.add("$!SLICEATTRIBUTES 1  EDGELAYER{SHOW = YES}")
	m.add("$!SLICEATTRIBUTES 1  SLICESOURCE = SURFACEZONES")
	m.add("$!SLICELAYERS SHOW = YES")
	m.add("$!SLICEATTRIBUTES 1  SLICESURFACE =" + slicePlane)
	m.add(fmt.Sprintf("$!SLICEATTRIBUTES 1  PRIMARYPOSITION{Y = %v}", section))
	m.add("## extract slice data")
	m.add("$!CREATESLICEZONES")
	m.add("## write slice data")
	m.add(`$!WRITEDATASET  "` + outputFile + `"`)
	m.add("  INCLUDETEXT = NO")
	m.add("  INCLUDEGEOM = NO")
	m.add("  INCLUDEDATASHARELINKAGE = YES")
	m.add(fmt.Sprintf("  ZONELIST =  [%d]", zoneIndex))
	m.add(fmt.Sprintf("  VARPOSITIONLIST =  [1,%d]", varIndex))
	m.add("  BINARY = NO")
	m.add("  USEPOINTFORMAT = YES")
	m.add("  PRECISION = 9")
	m.add("  TECPLOTVERSIONTOWRITE = TECPLOTCURRENT")
	m.add(fmt.Sprintf("$!DELETEZONES  [%d]", zoneIndex))
}

// Quit appends the Tec360 shutdown block.
func (m *Macro) Quit() {
	m.banner("Quit Tec360")
	m.add("$!QUIT")
}

// Lines returns the accumulated macro lines.
func (m *Macro) Lines() []string {
	return m.lines
}

// String renders the macro as newline-terminated text.
func (m *Macro) String() string {
	return strings.Join(m.lines, "\n") + "\n"
}

// WriteFile writes the macro to path.
func (m *Macro) WriteFile(path string) error {
	return os.WriteFile(path, []byte(m.String()), 0644)
}

func (m *Macro) add(line string) {
	m.lines = append(m.lines, line)
}

func (m *Macro) banner(text ...string) {
	const rule = "####################################################"
	m.add(rule)
	for _, t := range text {
		m.add("## " + t)
	}
	m.add(rule)
}
