package sweep

import (
	"bytes"
	"strings"
	"testing"
)

func addrs(t *testing.T, values ...string) []Address {
	t.Helper()
	out := make([]Address, 0, len(values))
	for _, v := range values {
		addr, err := ParseAddress(v)
		if err != nil {
			t.Fatalf("ParseAddress(%s) error = %v", v, err)
		}
		out = append(out, addr)
	}
	return out
}

func TestNewReportSortsNumerically(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "Lexicographic trap",
			input: []string{"10.0.0.10", "10.0.0.2", "10.0.0.9"},
			want:  []string{"10.0.0.2", "10.0.0.9", "10.0.0.10"},
		},
		{
			name:  "Across octets",
			input: []string{"192.168.2.1", "192.168.1.254", "192.168.1.3"},
			want:  []string{"192.168.1.3", "192.168.1.254", "192.168.2.1"},
		},
		{
			name:  "Empty",
			input: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewReport("192.168.1.0/24", addrs(t, tt.input...))
			if report.Count() != len(tt.want) {
				t.Fatalf("Count() = %d, want %d", report.Count(), len(tt.want))
			}
			for i, host := range report.Hosts {
				if host.String() != tt.want[i] {
					t.Errorf("Hosts[%d] = %s, want %s", i, host, tt.want[i])
				}
			}
		})
	}
}

func TestNewReportDoesNotMutateInput(t *testing.T) {
	input := addrs(t, "10.0.0.10", "10.0.0.2")
	_ = NewReport("10.0.0.0/24", input)
	if input[0].String() != "10.0.0.10" {
		t.Error("NewReport mutated its input slice")
	}
}

func TestRender(t *testing.T) {
	report := NewReport("192.168.1.0/24", addrs(t, "192.168.1.50", "192.168.1.1"))

	var buf bytes.Buffer
	report.Render(&buf, nil)
	out := buf.String()

	if !strings.Contains(out, "2 hosts up on 192.168.1.0/24") {
		t.Errorf("missing count header in output:\n%s", out)
	}
	first := strings.Index(out, "192.168.1.1\n")
	second := strings.Index(out, "192.168.1.50")
	if first == -1 || second == -1 || first > second {
		t.Errorf("hosts missing or out of order in output:\n%s", out)
	}
	if !strings.Contains(out, "  - 192.168.1.1") {
		t.Errorf("expected bulleted address lines, got:\n%s", out)
	}
}

func TestRenderNetworkLabel(t *testing.T) {
	report := NewReport("192.168.1.0/24", nil)
	report.Network = "office-lan"

	var buf bytes.Buffer
	report.Render(&buf, nil)

	if !strings.Contains(buf.String(), "Network: office-lan") {
		t.Errorf("missing network label:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "0 hosts up") {
		t.Errorf("zero-host report should still print a count:\n%s", buf.String())
	}
}

func TestRenderDeterministic(t *testing.T) {
	report := NewReport("10.0.0.0/24", addrs(t, "10.0.0.3", "10.0.0.1", "10.0.0.2"))

	var a, b bytes.Buffer
	report.Render(&a, nil)
	report.Render(&b, nil)
	if a.String() != b.String() {
		t.Error("identical reports rendered differently")
	}
}
