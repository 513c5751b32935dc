package otshape

import (
	"fmt"

	"github.com/npillmayer/arabshape/ucd"
)

// MaxContextLength is the number of code-points kept as pre- and post-context.
const MaxContextLength = 5

// DefaultMaxLen is the growth limit for buffers created with a zero MaxLen.
const DefaultMaxLen = 1 << 20

// BufferOptions configures buffer growth.
type BufferOptions struct {
	MaxLen int // maximum number of glyph positions; 0 selects DefaultMaxLen
}

// Buffer is the mutable shaping state of one run of text.
//
// Slice alignment rule: len(Info) == len(Pos) at all times.
// Buffers are owned by a single shaping call and are not safe for
// concurrent use.
type Buffer struct {
	Info         []GlyphInfo
	Pos          []GlyphPosition
	ScratchFlags ScratchFlags
	maxLen       int
	context      [2][]rune // pre-context (near-to-far), post-context (near-to-far)
}

// NewBuffer creates an empty buffer.
func NewBuffer(opts BufferOptions) *Buffer {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	return &Buffer{maxLen: maxLen}
}

// MaxLen returns the growth limit of the buffer.
func (b *Buffer) MaxLen() int {
	return b.maxLen
}

// Len returns the number of glyph positions.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Info)
}

// AddRunes appends one glyph position per rune. Clusters are numbered
// consecutively, starting at cluster0. Unicode properties are filled in
// from package ucd.
func (b *Buffer) AddRunes(runes []rune, cluster0 uint32) error {
	if err := b.Ensure(len(b.Info) + len(runes)); err != nil {
		return err
	}
	for i, r := range runes {
		info := GlyphInfo{
			Codepoint:       r,
			GeneralCategory: ucd.LookupGeneralCategory(r),
			Cluster:         cluster0 + uint32(i),
			ModifiedCCC:     ucd.ModifiedCombiningClass(r),
		}
		if ucd.IsDefaultIgnorable(r) {
			info.Props |= PropDefaultIgnorable
			b.ScratchFlags |= ScratchHasDefaultIgnorables
		}
		if r >= 0x80 {
			b.ScratchFlags |= ScratchHasNonASCII
		}
		b.Info = append(b.Info, info)
		b.Pos = append(b.Pos, GlyphPosition{})
	}
	return nil
}

// SetContext sets the text surrounding the buffer's content. Both pre and
// post are given in logical order. Only the MaxContextLength code-points
// nearest to the buffer are kept.
func (b *Buffer) SetContext(pre, post []rune) {
	b.context[0] = b.context[0][:0]
	for i := len(pre) - 1; i >= 0 && len(b.context[0]) < MaxContextLength; i-- {
		b.context[0] = append(b.context[0], pre[i])
	}
	b.context[1] = b.context[1][:0]
	for i := 0; i < len(post) && len(b.context[1]) < MaxContextLength; i++ {
		b.context[1] = append(b.context[1], post[i])
	}
}

// PreContext returns the code-points before the buffer, nearest first.
// Clients must not modify the slice.
func (b *Buffer) PreContext() []rune {
	return b.context[0]
}

// PostContext returns the code-points after the buffer, nearest first.
// Clients must not modify the slice.
func (b *Buffer) PostContext() []rune {
	return b.context[1]
}

// Ensure makes room for n glyph positions without changing the length of the
// buffer. If n exceeds the buffer's maximum length, an error wrapping
// ErrBufferOverflow is returned and the buffer remains unchanged.
func (b *Buffer) Ensure(n int) error {
	if n > b.maxLen {
		return fmt.Errorf("cannot grow buffer to %d positions (max %d): %w", n, b.maxLen, ErrBufferOverflow)
	}
	if n <= cap(b.Info) && n <= cap(b.Pos) {
		return nil
	}
	size := max(n, 2*cap(b.Info), 32)
	size = min(size, b.maxLen)
	info := make([]GlyphInfo, len(b.Info), size)
	copy(info, b.Info)
	pos := make([]GlyphPosition, len(b.Pos), size)
	copy(pos, b.Pos)
	b.Info, b.Pos = info, pos
	tracer().Debugf("buffer capacity grown to %d", size)
	return nil
}

// SetLen sets the length of the buffer. n must not exceed the capacity
// established by Ensure. Positions beyond the old length have undefined
// content.
func (b *Buffer) SetLen(n int) {
	assert(n >= 0 && n <= cap(b.Info) && n <= cap(b.Pos), "buffer length exceeds capacity")
	b.Info = b.Info[:n]
	b.Pos = b.Pos[:n]
}

// ResetMasks sets the mask of every glyph to m.
func (b *Buffer) ResetMasks(m Mask) {
	for i := range b.Info {
		b.Info[i].Mask = m
	}
}

// Codepoints returns the code-points of the buffer's glyph positions.
func (b *Buffer) Codepoints() []rune {
	cps := make([]rune, len(b.Info))
	for i, info := range b.Info {
		cps[i] = info.Codepoint
	}
	return cps
}

func (b *Buffer) minCluster(start, end int) uint32 {
	cluster := b.Info[start].Cluster
	for i := start + 1; i < end; i++ {
		cluster = min(cluster, b.Info[i].Cluster)
	}
	return cluster
}

// UnsafeToBreak flags the glyphs of [start, end) whose cluster differs from
// the smallest cluster in the range.
func (b *Buffer) UnsafeToBreak(start, end int) {
	assert(start <= end, "unsafe-to-break range start > end")
	end = min(end, len(b.Info))
	if end-start < 2 {
		return
	}
	cluster := b.minCluster(start, end)
	for i := start; i < end; i++ {
		if b.Info[i].Cluster != cluster {
			b.Info[i].Flags |= GlyphUnsafeToBreak
		}
	}
}

// MergeClusters unifies the clusters of [start, end), extending the range
// to neighbours sharing a cluster with its boundary glyphs.
func (b *Buffer) MergeClusters(start, end int) {
	assert(start <= end, "merge range start > end")
	end = min(end, len(b.Info))
	if end-start < 2 {
		return
	}
	cluster := b.minCluster(start, end)
	for end < len(b.Info) && b.Info[end-1].Cluster == b.Info[end].Cluster {
		end++
	}
	for start > 0 && b.Info[start-1].Cluster == b.Info[start].Cluster {
		start--
	}
	for i := start; i < end; i++ {
		if b.Info[i].Cluster != cluster {
			b.Info[i].Cluster = cluster
		}
	}
}

// CheckInvariants reports a violated structural invariant of the buffer.
func (b *Buffer) CheckInvariants() error {
	if len(b.Info) != len(b.Pos) {
		return errShaper(fmt.Sprintf("glyph info and position arrays differ in length: %d != %d",
			len(b.Info), len(b.Pos)))
	}
	if len(b.Info) > b.maxLen {
		return errShaper(fmt.Sprintf("buffer length %d exceeds maximum %d", len(b.Info), b.maxLen))
	}
	return nil
}
