// Package report summarizes a run of the knapsack solver.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/crillab/knapilp/ilp"
	"github.com/crillab/knapilp/knapsack"
)

// SysInfo saves the basic system information.
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// System collects information about the host.
// Fields that cannot be collected are left empty.
func System() SysInfo {
	var info SysInfo
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}
	return info
}

// A Report describes an instance, the selection found for it and how it was found.
type Report struct {
	Name     string          `json:"name"`
	Capacity int             `json:"capacity"`
	NbItems  int             `json:"nb_items"`
	Selected []knapsack.Item `json:"selected"`
	Weight   int             `json:"weight"`
	Profit   int             `json:"profit"`
	LPBound  *float64        `json:"lp_bound,omitempty"` // Value of the LP relaxation, if it could be computed
	Optimal  bool            `json:"optimal"`
	Time     string          `json:"time"`
	System   SysInfo         `json:"system"`
}

// New returns the report of res, found for inst in the given duration.
func New(name string, inst *knapsack.Instance, res *knapsack.Result, elapsed time.Duration) *Report {
	r := &Report{
		Name:     name,
		Capacity: inst.Capacity,
		NbItems:  len(inst.Items),
		Selected: res.Items,
		Weight:   res.Weight,
		Profit:   res.Profit,
		Time:     elapsed.String(),
	}
	if r.Selected == nil {
		r.Selected = []knapsack.Item{}
	}
	if res.Solution != nil {
		r.Optimal = res.Solution.Status == ilp.Optimal
	}
	return r
}

// SetLPBound records the value of the LP relaxation.
func (r *Report) SetLPBound(bound float64) {
	r.LPBound = &bound
}

// Comment writes the report as DIMACS-like comment lines.
func (r *Report) Comment(w io.Writer) {
	fmt.Fprintf(w, "c ======================================================================================\n")
	fmt.Fprintf(w, "c | Number of items     : %9d                                                    |\n", r.NbItems)
	fmt.Fprintf(w, "c | Capacity            : %9d                                                    |\n", r.Capacity)
	fmt.Fprintf(w, "c ======================================================================================\n")
	if r.LPBound != nil {
		fmt.Fprintf(w, "c lp bound: %g\n", *r.LPBound)
	}
	fmt.Fprintf(w, "c selected %d items\nc total weight: %d\nc total profit: %d\n", len(r.Selected), r.Weight, r.Profit)
	fmt.Fprintf(w, "c solving time: %s\n", r.Time)
	if r.System.Platform != "" || r.System.CPU != "" {
		fmt.Fprintf(w, "c system: %s, %s, %s\n", r.System.Platform, r.System.CPU, r.System.RAM)
	}
	if r.Optimal {
		fmt.Fprintf(w, "s OPTIMUM FOUND\n")
	} else {
		fmt.Fprintf(w, "s UNKNOWN\n")
	}
}

// WriteJSON writes the report as indented JSON to the file at path.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "\t")
	if err != nil {
		return errors.Wrap(err, "could not encode report")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}
	return nil
}
