package otquery

import (
	"testing"

	"github.com/npillmayer/arabshape/ot"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type FontTestEnviron struct {
	suite.Suite
	font *SFNTFont
}

// listen for 'go test' command --> run test methods
func TestFontFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabshape.font")
	defer teardown()
	suite.Run(t, new(FontTestEnviron))
}

// run once, before test suite methods
func (env *FontTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("arabshape.font").SetTraceLevel(tracing.LevelError)
	f, err := ParseFont(goregular.TTF)
	env.Require().NoError(err, "cannot parse Go Regular")
	env.font = f
	tracing.Select("arabshape.font").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *FontTestEnviron) TestNames() {
	env.Contains(env.font.Fontname, "Go")
	family, sub := env.font.FamilyName()
	env.Contains(family, "Go")
	env.NotEmpty(sub)
}

func (env *FontTestEnviron) TestMetrics() {
	m, err := env.font.Metrics()
	env.Require().NoError(err)
	env.Equal(2048, int(m.UnitsPerEm))
	env.Greater(int(m.Ascent), 0)
	env.Less(int(m.Descent), 0)
	env.Greater(m.NumGlyphs, 100)
}

func (env *FontTestEnviron) TestGlyphIndex() {
	env.NotEqual(ot.NOTDEF, env.font.GlyphIndex('A'))
	env.NotEqual(env.font.GlyphIndex('A'), env.font.GlyphIndex('B'))
	env.Equal(ot.NOTDEF, env.font.GlyphIndex(0x0628), "Go fonts have no Arabic")
}

func (env *FontTestEnviron) TestAdvances() {
	a := env.font.GlyphIndex('A')
	adv := env.font.GlyphHAdvance(a)
	env.Greater(adv, int32(0))
	gm, err := env.font.GlyphMetrics(a)
	env.Require().NoError(err)
	env.Equal(adv, int32(gm.Advance), "advance differs between queries")
	env.False(gm.BBox.IsEmpty())
	env.Equal(gm.Advance, gm.LSB+gm.BBox.Dx()+gm.RSB)
	//
	space, err := env.font.GlyphMetrics(env.font.GlyphIndex(' '))
	env.Require().NoError(err)
	env.True(space.BBox.IsEmpty(), "space has no contours")
	env.Zero(space.LSB)
}

func (env *FontTestEnviron) TestFeatures() {
	env.False(env.font.Has(ot.T("init")), "Go fonts have no Arabic forms")
	for _, tag := range env.font.Features().GSub {
		env.True(env.font.Has(tag))
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := ParseFont([]byte("not a font")); err == nil {
		t.Errorf("expected error for garbage input")
	}
}
