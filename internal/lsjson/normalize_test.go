package lsjson

import "testing"

func TestNormalizeQuotesBareKeys(t *testing.T) {
	got := Normalize(`{key:'value'}`)
	want := `{"key":"value"}`
	if got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeNestedNumericKeys(t *testing.T) {
	got := Normalize(`{0:'\x20',23:'text'}`)
	want := `{"0":"\` + `u0020","23":"text"}`
	if got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestDecodeLSDataRoundTrip(t *testing.T) {
	fields, err := DecodeLSData(`{0:'OK',23:true}`)
	if err != nil {
		t.Fatalf("DecodeLSData error: %v", err)
	}
	if got := fields.String("0"); got != "OK" {
		t.Errorf("field 0 = %q, want OK", got)
	}
	if got := fields.Bool("23"); !got {
		t.Errorf("field 23 = %v, want true", got)
	}
	if fields.Has("99") {
		t.Errorf("field 99 should be absent")
	}
}

func TestDecodeLSDataMalformedReturnsError(t *testing.T) {
	_, err := DecodeLSData(`{not json at all`)
	if err == nil {
		t.Fatal("expected error decoding malformed lsdata")
	}
}

func TestDecodeLSEventsDefaultsOnMissingUCF(t *testing.T) {
	specs, err := DecodeLSEvents(`{Press:{custom:{Foo:'Bar'}}}`)
	if err != nil {
		t.Fatalf("DecodeLSEvents error: %v", err)
	}
	press, ok := specs["Press"]
	if !ok {
		t.Fatal("expected Press event spec")
	}
	if press.UCF.Action != "SubmitAsync" {
		t.Errorf("default action = %q, want SubmitAsync", press.UCF.Action)
	}
	if press.Custom["Foo"] != "Bar" {
		t.Errorf("custom param Foo = %q, want Bar", press.Custom["Foo"])
	}
}
