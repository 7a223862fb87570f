package tui

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable("Tool", "Status")
	table.SetTitle("Environment")
	table.AddRow("git", "found")
	table.AddRow("curl", "missing")

	out := table.Render()

	for _, want := range []string{"Environment", "Tool", "Status", "git", "curl", "missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}

	if table.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", table.RowCount())
	}
}

func TestTableHideHeader(t *testing.T) {
	table := NewTable("Col")
	table.HideHeader()
	table.AddRow("value")

	out := table.Render()

	if strings.Contains(out, "Col") {
		t.Errorf("Render() should not contain header when hidden, got %q", out)
	}
	if !strings.Contains(out, "value") {
		t.Errorf("Render() output missing row value")
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	table := NewTable()
	if out := table.Render(); out != "" {
		t.Errorf("Render() with no headers = %q, want empty", out)
	}
}
