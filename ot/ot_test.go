package ot

import (
	"encoding/binary"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.font")
	defer teardown()
	//
	tag := Tag(0x636d6170)
	if tag.String() != "cmap" {
		t.Errorf("expected tag 0x636d6170 to be 'cmap', is %s", tag.String())
	}
	tag = MakeTag([]byte("cmap"))
	if tag.String() != "cmap" {
		t.Errorf("expected tag MakeTag(cmap) to be 'cmap', is %s", tag.String())
	}
	tag = T("cmap")
	if tag.String() != "cmap" {
		t.Errorf("expected tag T(cmap) to be 'cmap', is %s", tag.String())
	}
	if T("ab").String() != "ab  " {
		t.Errorf("expected short tag to be padded with spaces, is %q", T("ab").String())
	}
	if T("fin2").LastByte() != '2' || T("fina").LastByte() != 'a' {
		t.Errorf("expected last byte of 'fin2' to be '2'")
	}
}

// synthFont creates a minimal font binary with a GSUB table listing the
// given feature tags. All feature records share one empty Feature table.
func synthFont(features ...string) []byte {
	n := len(features)
	gsub := make([]byte, 10+2+6*n+4)
	binary.BigEndian.PutUint16(gsub[0:], 1)  // major
	binary.BigEndian.PutUint16(gsub[6:], 10) // FeatureList offset
	binary.BigEndian.PutUint16(gsub[10:], uint16(n))
	for i, f := range features {
		copy(gsub[12+6*i:], []byte(f))
		binary.BigEndian.PutUint16(gsub[12+6*i+4:], uint16(2+6*n))
	}
	font := make([]byte, 12+16)
	binary.BigEndian.PutUint32(font[0:], 0x00010000)
	binary.BigEndian.PutUint16(font[4:], 1)
	copy(font[12:], []byte("GSUB"))
	binary.BigEndian.PutUint32(font[12+8:], uint32(len(font)))
	binary.BigEndian.PutUint32(font[12+12:], uint32(len(gsub)))
	return append(font, gsub...)
}

func TestReadLayoutFeatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.font")
	defer teardown()
	//
	lf, err := ReadLayoutFeatures(synthFont("fina", "init", "fina", "stch"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lf.GSub) != 3 {
		t.Fatalf("expected 3 distinct GSUB features, have %v", lf.GSub)
	}
	if !lf.HasGSub(T("stch")) || !lf.Has(T("init")) {
		t.Errorf("expected 'stch' and 'init' to be present")
	}
	if lf.Has(T("medi")) || lf.HasGPos(T("fina")) {
		t.Errorf("expected 'medi' to be absent and GPOS to be empty")
	}
}

func TestReadLayoutFeaturesErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.font")
	defer teardown()
	//
	if _, err := ReadLayoutFeatures([]byte{0, 1}); err == nil {
		t.Errorf("expected error for truncated header")
	}
	font := synthFont("fina")
	binary.BigEndian.PutUint32(font[0:], 0xdeadbeef)
	if _, err := ReadLayoutFeatures(font); err == nil {
		t.Errorf("expected error for unknown font type")
	}
	font = synthFont("fina", "medi")
	font = font[:len(font)-4]
	if _, err := ReadLayoutFeatures(font); err == nil {
		t.Errorf("expected error for table exceeding font size")
	}
	features := make([]string, MaxFeatureCount+1)
	for i := range features {
		features[i] = "liga"
	}
	if _, err := ReadLayoutFeatures(synthFont(features...)); err == nil {
		t.Errorf("expected error for too many features")
	}
}
