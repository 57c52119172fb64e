package saptable

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/uskr/wdclient/internal/element"
)

const tableHTML = `<html><body>
<div id="T1" ct="ST" lsdata="{0:2,1:2}"
     lsevents="{rowSelect:{ucf:{Action:'SubmitAsync'},custom:{}},verticalScroll:{ucf:{Action:'SubmitAsync'},custom:{}}}">
  <table><tbody id="T1-contentTBody">
    <tr rt="2" id="hdr">
      <td id="h0" subct="HC"><span id="h0t" ct="CAP" lsdata="{0:'Name'}"></span></td>
      <td id="h1" subct="HC"><span id="h1t" ct="CAP" lsdata="{0:'Active'}"></span></td>
    </tr>
    <tr rt="1" id="row0">
      <td id="r0c0" subct="STC"><span id="r0c0t" ct="TV" lsdata="{0:'Alice'}"></span></td>
      <td id="r0c1" subct="STC"><span id="r0c1t" ct="CHB" lsdata="{1:true}"></span></td>
    </tr>
  </table></tbody>
</div>
</body></html>`

func newTable(t *testing.T) *Table {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	node := doc.Find(`#T1`).First()
	return &Table{Base: element.NewBase("T1", element.KindSapTable, node)}
}

func TestTableBodyParsesHeaderAndDataRows(t *testing.T) {
	tbl := newTable(t)
	rows, err := tbl.Body()
	if err != nil {
		t.Fatalf("Body() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Type != RowHeader {
		t.Fatalf("expected first row to be Header, got %v", rows[0].Type)
	}

	m, err := ToMap(rows[0], rows[1])
	if err != nil {
		t.Fatalf("ToMap error: %v", err)
	}
	if m["Name"] != "Alice" {
		t.Fatalf("Name = %q", m["Name"])
	}
	if m["Active"] != "true" {
		t.Fatalf("Active = %q", m["Active"])
	}
}

func TestTableRowSelectFiresDeclaredEvent(t *testing.T) {
	tbl := newTable(t)
	ev, err := tbl.RowSelect("row0", AccessStandard)
	if err != nil {
		t.Fatalf("RowSelect error: %v", err)
	}
	if ev.Control != "SapTable" || ev.EventName != "rowSelect" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.ParamValue("AccessType") != "STANDARD" {
		t.Fatalf("AccessType = %q", ev.ParamValue("AccessType"))
	}
}

func TestTableDataDecodesRowCount(t *testing.T) {
	tbl := newTable(t)
	data, err := tbl.TableData()
	if err != nil {
		t.Fatalf("TableData error: %v", err)
	}
	if data.RowCount != 2 {
		t.Fatalf("RowCount = %d", data.RowCount)
	}
}
