/*
Package otcore provides the baseline shaping engine for package otshape.

The core shaper enables the common OpenType features and sets no per-glyph
masks. It is the fallback engine for scripts without a script-specific
engine in the candidate list.
*/
package otcore
