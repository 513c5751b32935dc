package main

import (
	"fmt"

	"github.com/npillmayer/arabshape/otshape"
	"github.com/npillmayer/arabshape/otshape/otarabic"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

func printJoining(text []rune, actions []otarabic.Action) {
	data := [][]string{
		{"Pos", "Code-point", "Name", "Form"},
	}
	for i, r := range text {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("U+%04X", r),
			runenames.Name(r),
			actionStyle(actions[i]).Sprint(actions[i].String()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printMarks(buf *otshape.Buffer) {
	data := [][]string{
		{"Pos", "Code-point", "Name", "Class", "Cluster"},
	}
	for i, info := range buf.Info {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("U+%04X", info.Codepoint),
			runenames.Name(info.Codepoint),
			fmt.Sprintf("%d", info.ModifiedCCC),
			fmt.Sprintf("%d", info.Cluster),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printGlyphs(buf *otshape.Buffer) {
	data := [][]string{
		{"Pos", "Code-point", "Glyph", "Form", "Mask", "Advance", "Offset", "Unsafe"},
	}
	for i, info := range buf.Info {
		a := otarabic.ActionOf(info)
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("U+%04X", info.Codepoint),
			fmt.Sprintf("%d", info.Glyph),
			actionStyle(a).Sprint(a.String()),
			fmt.Sprintf("%#x", uint32(info.Mask)),
			fmt.Sprintf("%d", buf.Pos[i].XAdvance),
			fmt.Sprintf("%d", buf.Pos[i].XOffset),
			fmt.Sprintf("%v", info.Flags&otshape.GlyphUnsafeToBreak != 0),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
