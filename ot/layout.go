package ot

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
)

// Maximum reasonable counts for OpenType table structures.
const (
	MaxTableCount   = 200 // Table records: typically < 30
	MaxFeatureCount = 500 // Features: typically < 200
)

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

// LayoutFeatures holds the feature tags a font lists in its GSUB and GPOS
// FeatureList tables. Tags appear once each, in the order of their first
// occurence in the font.
type LayoutFeatures struct {
	GSub []Tag
	GPos []Tag
}

// Has reports whether tag is present in either layout table.
func (lf LayoutFeatures) Has(tag Tag) bool {
	return lf.HasGSub(tag) || lf.HasGPos(tag)
}

// HasGSub reports whether tag is listed in the GSUB FeatureList.
func (lf LayoutFeatures) HasGSub(tag Tag) bool {
	return contains(lf.GSub, tag)
}

// HasGPos reports whether tag is listed in the GPOS FeatureList.
func (lf LayoutFeatures) HasGPos(tag Tag) bool {
	return contains(lf.GPos, tag)
}

func contains(tags []Tag, tag Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ReadLayoutFeatures reads the table directory of an OpenType font and
// collects the feature tags of its GSUB and GPOS tables. A font without
// layout tables yields an empty result, not an error.
//
// Font collections are not supported.
func ReadLayoutFeatures(font []byte) (LayoutFeatures, error) {
	lf := LayoutFeatures{}
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	if len(font) < 12 {
		return lf, errFontFormat("font header too small")
	}
	ld, err := opentype.NewLoader(bytes.NewReader(font))
	if err != nil {
		return lf, errFontFormat(err.Error())
	}
	if n := len(ld.Tables()); n > MaxTableCount {
		return lf, errFontFormat(fmt.Sprintf("table count too large: %d", n))
	}
	if lf.GSub, err = readFeatureTags(ld, T("GSUB")); err != nil {
		return lf, err
	}
	if lf.GPos, err = readFeatureTags(ld, T("GPOS")); err != nil {
		return lf, err
	}
	tracer().Debugf("font has %d GSUB and %d GPOS features", len(lf.GSub), len(lf.GPos))
	return lf, nil
}

// readFeatureTags lists the tags of the FeatureList of a layout table.
// Tags repeated for different scripts are collected once.
func readFeatureTags(ld *opentype.Loader, tableTag Tag) ([]Tag, error) {
	tag := opentype.Tag(tableTag)
	if !ld.HasTable(tag) {
		return nil, nil
	}
	raw, err := ld.RawTable(tag)
	if err != nil {
		return nil, errFontFormat(fmt.Sprintf("table %s: %v", tableTag, err))
	}
	layout, _, err := tables.ParseLayout(raw)
	if err != nil {
		return nil, errFontFormat(fmt.Sprintf("table %s: %v", tableTag, err))
	}
	records := layout.FeatureList.Records
	if len(records) > MaxFeatureCount {
		return nil, errFontFormat(fmt.Sprintf("%s: feature count %d exceeds maximum %d",
			tableTag, len(records), MaxFeatureCount))
	}
	tags := make([]Tag, 0, len(records))
	for _, rec := range records {
		if t := Tag(rec.Tag); !contains(tags, t) {
			tags = append(tags, t)
		}
	}
	return tags, nil
}
