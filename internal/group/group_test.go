package group

import "testing"

func TestSplit(t *testing.T) {
	g, ok := Split("ADCO 020830022493 8")
	if !ok {
		t.Fatal("Split: no match")
	}
	if g.Code != "ADCO" {
		t.Fatalf("code mismatch: %s", g.Code)
	}
	if g.Sep != ' ' {
		t.Fatalf("separator mismatch: %q", g.Sep)
	}
	if g.Data != "020830022493" {
		t.Fatalf("data mismatch: %s", g.Data)
	}
	if g.Control != '8' {
		t.Fatalf("control mismatch: %q", g.Control)
	}
}

func TestSplitTabSeparator(t *testing.T) {
	g, ok := Split("PAPP\t05355\t3")
	if !ok {
		t.Fatal("Split: no match")
	}
	if g.Sep != '\t' {
		t.Fatalf("separator mismatch: %q", g.Sep)
	}
	if g.Data != "05355" {
		t.Fatalf("data mismatch: %s", g.Data)
	}
}

func TestSplitRejects(t *testing.T) {
	records := []string{
		"",
		"XXX",
		"XXX AAA",
		"IINST4 3 S",
		"ADCO 020830022493",
		"PTEC HPJR",
		"ADCO  8",
		"adco 020830022493 8",
	}
	for _, record := range records {
		if _, ok := Split(record); ok {
			t.Fatalf("Split accepted %q", record)
		}
	}
}

func TestChecksum(t *testing.T) {
	cases := []struct {
		record string
		want   byte
	}{
		{"ADCO 020830022493 8", '8'},
		{"ISOUSC 30 9", '9'},
		{"BBRHCJB 023823656 @", '@'},
		{"PAPP 05355 3", '3'},
	}
	for _, tc := range cases {
		g, ok := Split(tc.record)
		if !ok {
			t.Fatalf("Split rejected %q", tc.record)
		}
		if got := g.Checksum(); got != tc.want {
			t.Fatalf("checksum of %q: computed %q, want %q", tc.record, got, tc.want)
		}
	}
}
