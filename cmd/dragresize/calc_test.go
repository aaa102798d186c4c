package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/dragresize/internal/document"
	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/Gaurav-Gosain/dragresize/internal/resize"
)

func TestRunCalc(t *testing.T) {
	calc := resize.NewCalculator()

	tests := []struct {
		name    string
		opts    calcOptions
		want    string
		wantErr bool
	}{
		{
			name: "corner keeps ratio",
			opts: calcOptions{size: "240x160", handle: "br", delta: "80,0"},
			want: "br 240×160 -> 320×213 offset 0,0\n",
		},
		{
			name: "shift frees ratio",
			opts: calcOptions{size: "240x160", handle: "br", delta: "80,0", shift: true},
			want: "br 240×160 -> 320×160 offset 0,0\n",
		},
		{
			name: "left handle offsets",
			opts: calcOptions{size: "100x100", handle: "lm", delta: "-20,0"},
			want: "lm 100×100 -> 120×100 offset -20,0\n",
		},
		{
			name: "snap",
			opts: calcOptions{size: "100x100", handle: "rm", delta: "6,0", others: []string{"104x100"}},
			want: "rm 100×100 -> 104×100 offset 0,0 (snapped)\n",
		},
		{
			name: "jitter keeps previous",
			opts: calcOptions{size: "100x100", handle: "rm", delta: "500,0", shift: true, previous: "120x100"},
			want: "rm 100×100 -> 120×100 offset 0,0\n",
		},
		{name: "bad size", opts: calcOptions{size: "100", handle: "br", delta: "0,0"}, wantErr: true},
		{name: "bad handle", opts: calcOptions{size: "100x100", handle: "mm", delta: "0,0"}, wantErr: true},
		{name: "bad delta", opts: calcOptions{size: "100x100", handle: "br", delta: "3"}, wantErr: true},
		{name: "bad other", opts: calcOptions{size: "100x100", handle: "br", delta: "0,0", others: []string{"0x4"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runCalc(&buf, calc, tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("runCalc: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRunCalcJSON(t *testing.T) {
	var buf bytes.Buffer
	opts := calcOptions{size: "100x100", handle: "tl", delta: "-10,-10", shift: true, json: true}
	if err := runCalc(&buf, resize.NewCalculator(), opts); err != nil {
		t.Fatal(err)
	}

	var got calcResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	want := geom.Box{Left: -10, Top: -10, Width: 110, Height: 110}
	if got.Handle != resize.TopLeft || got.Box != want || got.Snapped {
		t.Errorf("result = %+v", got)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    float64
		wantErr bool
	}{
		{"240x160", 240, 160, false},
		{" 12.5X8 ", 12.5, 8, false},
		{"240", 0, 0, true},
		{"ax1", 0, 0, true},
		{"1xb", 0, 0, true},
		{"-1x5", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("got %gx%g", w, h)
			}
		})
	}
}

func TestSampleLayoutParses(t *testing.T) {
	data, err := sampleLayout()
	if err != nil {
		t.Fatal(err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		t.Fatalf("sample does not parse: %v\n%s", err, data)
	}
	if len(doc.ImageList()) != len(document.Sample().ImageList()) {
		t.Error("sample lost images")
	}
	if !strings.Contains(string(data), "harbour.jpg") {
		t.Error("sample content missing")
	}
}
