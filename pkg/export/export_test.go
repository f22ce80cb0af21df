package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/newtron-network/ios2xlsx/pkg/ifreport"
)

var sampleRows = []ifreport.MergedRow{
	{
		Interface:          "GigabitEthernet1/0/1",
		Description:        "Uplink to core",
		Status:             "connected",
		VLANs:              "10,20,30",
		PortChannel:        "Port-channel1",
		Neighbour:          "core-sw1",
		NeighbourInterface: "TenGigabitEthernet1/0/5",
	},
	{
		Interface: "Vlan10",
		IPAddress: "192.168.10.1 255.255.255.0",
	},
}

func cell(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleRows); err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(0); name != SheetName {
		t.Errorf("sheet name = %q, want %q", name, SheetName)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2)", len(rows))
	}

	for i, col := range ifreport.Columns {
		if got := cell(rows, 0, i); got != col {
			t.Errorf("header[%d] = %q, want %q", i, got, col)
		}
	}
	for i, want := range sampleRows[0].Values() {
		if got := cell(rows, 1, i); got != want {
			t.Errorf("row 1 col %d = %q, want %q", i, got, want)
		}
	}
	if got := cell(rows, 2, 0); got != "Vlan10" {
		t.Errorf("row 2 interface = %q", got)
	}
	if got := cell(rows, 2, 2); got != "" {
		t.Errorf("row 2 status = %q, want blank", got)
	}
	if got := cell(rows, 2, 4); got != "192.168.10.1 255.255.255.0" {
		t.Errorf("row 2 ip = %q", got)
	}
}

func TestWriteXLSX_NoRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, nil); err != nil {
		t.Fatalf("WriteXLSX() error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error: %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows(SheetName)
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestSaveXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", FileName)
	if err := SaveXLSX(path, sampleRows); err != nil {
		t.Fatalf("SaveXLSX() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("spreadsheet is empty")
	}
}

func TestConstants(t *testing.T) {
	if FileName != "switch_interfaces.xlsx" {
		t.Errorf("FileName = %q", FileName)
	}
	if MIMEType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("MIMEType = %q", MIMEType)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleRows); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var got []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("got %d objects, want 2", len(got))
	}
	if got[0]["Neighbour Interface"] != "TenGigabitEthernet1/0/5" {
		t.Errorf("Neighbour Interface = %q", got[0]["Neighbour Interface"])
	}
	if v, ok := got[1]["Status"]; !ok || v != "" {
		t.Errorf("Status should be present and empty, got %q (present=%v)", v, ok)
	}

	buf.Reset()
	WriteJSON(&buf, nil)
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("WriteJSON(nil) = %q, want []", buf.String())
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleRows); err != nil {
		t.Fatalf("WriteTable() error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Interface") {
		t.Errorf("table should start with header, got:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	fields := strings.Fields(lines[3])
	if fields[0] != "Vlan10" || fields[2] != "-" {
		t.Errorf("unexpected Vlan10 row: %q", lines[3])
	}
}
