// Post-run HTML report rendered from the result files
package report

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"manet-sim/internal/sim"
)

// Data is everything the report template consumes.
type Data struct {
	ResultsDir string

	Nodes       int
	SpineNodes  []int
	FrameCount  int
	FirstSample float64
	LastSample  float64

	MeanSpeed   float64
	StdDevSpeed float64

	LinkAvailability float64
	NodeAvailability []NodeAvailability

	PacketsSent     int
	PacketsReceived int
	DeliveryRatio   float64
}

// NodeAvailability is one node's link uptime over the measured phase.
type NodeAvailability struct {
	Node     int
	Spine    bool
	Linked   int
	Samples  int
	Fraction float64
}

// Build reads the result files under dir and aggregates them.
func Build(dir string) (*Data, error) {
	frames, err := sim.LoadMovementFile(filepath.Join(dir, sim.MovementFile))
	if err != nil {
		return nil, err
	}

	d := &Data{
		ResultsDir:  dir,
		FrameCount:  len(frames),
		FirstSample: frames[0].Time,
		LastSample:  frames[len(frames)-1].Time,
	}

	spineSet := map[int]bool{}
	var speeds []float64
	for _, f := range frames {
		for _, n := range f.Nodes {
			speeds = append(speeds, n.Speed)
			if n.Spine && !spineSet[n.Node] {
				spineSet[n.Node] = true
				d.SpineNodes = append(d.SpineNodes, n.Node)
			}
		}
	}
	d.Nodes = len(frames[0].Nodes)
	d.MeanSpeed = stat.Mean(speeds, nil)
	d.StdDevSpeed = stat.StdDev(speeds, nil)

	if err := d.readConnectivity(filepath.Join(dir, sim.ConnectivityFile), spineSet); err != nil {
		return nil, err
	}
	if err := d.readPackets(filepath.Join(dir, sim.PacketsFile)); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Data) readConnectivity(path string, spine map[int]bool) error {
	records, err := readCSVFile(path)
	if err != nil {
		return err
	}

	perNode := map[int]*NodeAvailability{}
	linked, total := 0, 0
	for i, rec := range records {
		if len(rec) != 5 {
			return fmt.Errorf("connectivity line %d: expected 5 fields, got %d", i+2, len(rec))
		}
		node, err := strconv.Atoi(rec[2])
		if err != nil {
			return fmt.Errorf("connectivity line %d: node: %w", i+2, err)
		}
		na := perNode[node]
		if na == nil {
			na = &NodeAvailability{Node: node, Spine: spine[node]}
			perNode[node] = na
		}
		na.Samples++
		total++
		if rec[3] == "1" {
			na.Linked++
			linked++
		}
	}
	if total > 0 {
		d.LinkAvailability = float64(linked) / float64(total)
	}
	for node := 0; node < d.Nodes; node++ {
		na := perNode[node]
		if na == nil {
			continue
		}
		if na.Samples > 0 {
			na.Fraction = float64(na.Linked) / float64(na.Samples)
		}
		d.NodeAvailability = append(d.NodeAvailability, *na)
	}
	return nil
}

func (d *Data) readPackets(path string) error {
	records, err := readCSVFile(path)
	if err != nil {
		return err
	}
	for i, rec := range records {
		if len(rec) != 6 {
			return fmt.Errorf("packets line %d: expected 6 fields, got %d", i+2, len(rec))
		}
		if rec[5] == "1" {
			d.PacketsReceived++
		} else {
			d.PacketsSent++
		}
	}
	if d.PacketsSent > 0 {
		d.DeliveryRatio = float64(d.PacketsReceived) / float64(d.PacketsSent)
	}
	return nil
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", filepath.Base(path))
	}
	return records[1:], nil
}

// Render builds the report for dir and writes it as HTML to outPath.
func Render(dir, outPath string) error {
	data, err := Build(dir)
	if err != nil {
		return err
	}
	funcMap := template.FuncMap{
		"mulp": func(v float64) float64 { return v * 100 },
		"barw": func(v float64) float64 { return v * 150 },
	}
	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := t.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
