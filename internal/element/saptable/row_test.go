package saptable

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func tbodyFromHTML(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	sel := doc.Find("#T1-contentTBody")
	if sel.Length() == 0 {
		t.Fatal("no contentTBody found")
	}
	return sel.First()
}

func TestParseRowsStopsAtEmptyRowMarker(t *testing.T) {
	html := `<table><tbody id="T1-contentTBody">
	  <tr rt="2" id="r0"><td id="c0" subct="HC"><span id="c0t" ct="CAP" lsdata="{0:'Name'}"></span></td></tr>
	  <tr rt="1" id="r1"><td id="c1" subct="STC"><span id="c1t" ct="TV" lsdata="{0:'Alice'}"></span></td></tr>
	  <tr rr="0" id="rend"></tr>
	  <tr rt="1" id="r2"><td id="c2" subct="STC"><span id="c2t" ct="TV" lsdata="{0:'Bob'}"></span></td></tr>
	</tbody></table>`

	rows, err := ParseRows(tbodyFromHTML(t, html))
	if err != nil {
		t.Fatalf("ParseRows error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows before the rr=0 marker, got %d", len(rows))
	}
	if rows[0].Type != RowHeader || rows[1].Type != RowStandard {
		t.Fatalf("unexpected row types: %v, %v", rows[0].Type, rows[1].Type)
	}
}

func TestParseRowsRejectsMultipleHeaderRows(t *testing.T) {
	html := `<table><tbody id="T1-contentTBody">
	  <tr rt="2" id="r0"><td id="c0" subct="HC"></td></tr>
	  <tr rt="2" id="r1"><td id="c1" subct="HC"></td></tr>
	</tbody></table>`

	if _, err := ParseRows(tbodyFromHTML(t, html)); err == nil {
		t.Fatal("expected error for a second Header row")
	}
}

func TestParseRowsExpandsRowspanAcrossRows(t *testing.T) {
	html := `<table><tbody id="T1-contentTBody">
	  <tr rt="1" id="r0">
	    <td id="c0" subct="STC" rowspan="2"><span id="c0t" ct="TV" lsdata="{0:'spanned'}"></span></td>
	    <td id="c1" subct="STC"><span id="c1t" ct="TV" lsdata="{0:'r0c1'}"></span></td>
	  </tr>
	  <tr rt="1" id="r1">
	    <td id="c2" subct="STC"><span id="c2t" ct="TV" lsdata="{0:'r1c1'}"></span></td>
	  </tr>
	</tbody></table>`

	rows, err := ParseRows(tbodyFromHTML(t, html))
	if err != nil {
		t.Fatalf("ParseRows error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[1].Cells) != 2 {
		t.Fatalf("expected row 1 to have 2 cells (1 spanned + 1 own), got %d", len(rows[1].Cells))
	}
	text, err := CellText(rows[1].Cells[0])
	if err != nil {
		t.Fatalf("CellText error: %v", err)
	}
	if text != "spanned" {
		t.Fatalf("expected row 1's first cell to inherit the rowspan cell's content, got %q", text)
	}
}

func TestParseRowsExpandsColspan(t *testing.T) {
	html := `<table><tbody id="T1-contentTBody">
	  <tr rt="1" id="r0">
	    <td id="c0" subct="STC" colspan="3"><span id="c0t" ct="TV" lsdata="{0:'wide'}"></span></td>
	  </tr>
	</tbody></table>`

	rows, err := ParseRows(tbodyFromHTML(t, html))
	if err != nil {
		t.Fatalf("ParseRows error: %v", err)
	}
	if len(rows[0].Cells) != 3 {
		t.Fatalf("expected colspan=3 to duplicate the cell 3 times, got %d", len(rows[0].Cells))
	}
}

func TestParseRowsExpandsCombinedRowspanAndColspan(t *testing.T) {
	html := `<table><tbody id="T1-contentTBody">
	  <tr rt="1" id="r0">
	    <td id="c0" subct="STC" rowspan="2" colspan="2"><span id="c0t" ct="TV" lsdata="{0:'block'}"></span></td>
	    <td id="c1" subct="STC"><span id="c1t" ct="TV" lsdata="{0:'r0c2'}"></span></td>
	  </tr>
	  <tr rt="1" id="r1">
	    <td id="c2" subct="STC"><span id="c2t" ct="TV" lsdata="{0:'r1c2'}"></span></td>
	  </tr>
	</tbody></table>`

	rows, err := ParseRows(tbodyFromHTML(t, html))
	if err != nil {
		t.Fatalf("ParseRows error: %v", err)
	}
	if len(rows[0].Cells) != 3 {
		t.Fatalf("expected row 0 to have 3 cells (2 from colspan + 1 own), got %d", len(rows[0].Cells))
	}
	if len(rows[1].Cells) != 3 {
		t.Fatalf("expected row 1 to have 3 cells (2 inherited from rowspan+colspan + 1 own), got %d", len(rows[1].Cells))
	}
	for i, col := range []int{0, 1} {
		text, err := CellText(rows[1].Cells[col])
		if err != nil {
			t.Fatalf("CellText error: %v", err)
		}
		if text != "block" {
			t.Fatalf("expected row 1 col %d to inherit the spanning cell's content, got %q (case %d)", col, text, i)
		}
	}
	text, err := CellText(rows[1].Cells[2])
	if err != nil {
		t.Fatalf("CellText error: %v", err)
	}
	if text != "r1c2" {
		t.Fatalf("expected row 1's own cell content, got %q", text)
	}
}
