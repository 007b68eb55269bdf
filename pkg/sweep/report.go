package sweep

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/logrusorgru/aurora/v4"
)

// Report is the final outcome of one sweep: the alive addresses in ascending
// numeric order plus their count. Built once after all probes complete and
// never mutated afterwards.
type Report struct {
	Target  string
	Network string
	Hosts   []Address
}

// NewReport builds a report from the unordered alive set.
func NewReport(target string, alive []Address) *Report {
	hosts := make([]Address, len(alive))
	copy(hosts, alive)
	slices.Sort(hosts)
	return &Report{Target: target, Hosts: hosts}
}

// Count returns the number of alive hosts.
func (r *Report) Count() int { return len(r.Hosts) }

// Render writes the report to w. Rendering is the only side-effecting step;
// the same report always produces the same bytes for the same aurora
// configuration.
func (r *Report) Render(w io.Writer, au *aurora.Aurora) {
	if au == nil {
		au = aurora.New(aurora.WithColors(false))
	}

	if r.Network != "" {
		fmt.Fprintf(w, "Network: %s\n", au.Cyan(r.Network))
	}
	fmt.Fprintf(w, "%s hosts up on %s\n", au.BrightGreen(strconv.Itoa(len(r.Hosts))), au.Bold(r.Target))
	for _, host := range r.Hosts {
		fmt.Fprintf(w, "  - %s\n", au.Green(host.String()))
	}
}
