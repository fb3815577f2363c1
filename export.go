package apollo

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ExportPath writes the recorded path of a completed simulation as CSV.
// The header is commented out with '#' and includes the start of the run as a Julian date.
func ExportPath(w io.Writer, sim *Simulator) error {
	points, err := sim.DataPoints()
	if err != nil {
		return err
	}
	start, _ := sim.StartedAt()
	duration, _ := sim.Duration()
	if _, err = fmt.Fprintf(w, `# Creation date (UTC): %s
# Records are <step> <time> <x> <y> <z>
#   Time in seconds since launch
#   Position in meters, Y is vertical
#   Simulation start (UTC): %s (JD %.8f)
#   Simulation duration: %s
`, time.Now().UTC(), start.UTC(), julian.TimeToJD(start.UTC()), duration); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"step", "t", "x", "y", "z"}); err != nil {
		return err
	}
	formatF := func(f float64) string {
		return strconv.FormatFloat(f, 'f', 6, 64)
	}
	for i, p := range points {
		record := []string{strconv.Itoa(i + 1), formatF(float64(i+1) * sim.dt), formatF(p.X), formatF(p.Y), formatF(p.Z)}
		if err = cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportPathFile writes the recorded path to `<dir>/path-<name>.csv`, or to a time stamped file name
// if stamped is set. It returns the name of the created file.
func ExportPathFile(dir, name string, stamped bool, sim *Simulator) (string, error) {
	if stamped {
		t := time.Now()
		name = fmt.Sprintf("path-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", name, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		name = fmt.Sprintf("path-%s.csv", name)
	}
	filename := filepath.Join(dir, name)
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	err = ExportPath(f, sim)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(filename)
		return "", err
	}
	return filename, nil
}
