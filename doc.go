// Package covergen derives deterministic abstract cover images from text.
//
// # Overview
//
// covergen maps shallow lexical metrics of a text (word count, character
// count, average word length, paragraph count, a rolling content hash) to a
// compact visual parameter vector, then paints a layered procedural
// composition from that vector. All randomness flows from two explicitly
// seeded sources (a 32-bit linear congruential generator and a seeded 2D
// Perlin noise field), so identical input text always yields the same
// artwork, with no stored state and no human intervention.
//
// # Quick Start
//
//	import "github.com/covergen/covergen"
//
//	res, err := covergen.GenerateMasterImage(articleText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	formats, err := covergen.DeriveFormats(res.Master, covergen.CropResize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// formats["landscape"] is 1200x628, formats["square"] is 1200x1200
//
// # Architecture
//
// The pipeline is a chain of pure stages:
//
//	text -> Analyze -> ContentMetrics -> MapToVisualParameters ->
//	VisualParameters -> Renderer (PRNG + NoiseField + Palette) ->
//	master raster -> DeriveFormats -> output rasters
//
// Drawing goes through the Canvas capability set, which has two
// implementations: a software scanline canvas (raster/ subpackage) and an
// anti-aliased canvas backed by fogleman/gg (ggcanvas/ subpackage). The
// renderer algorithm is backend-agnostic; pixel parity is guaranteed within
// one backend, not across backends.
//
// # Determinism
//
// Every PRNG and NoiseField instance is constructed with an explicit seed and
// owned by exactly one render call. There is no ambient global random state,
// so concurrent generation requests for different texts need no coordination.
//
// # Scope
//
// covergen performs no I/O. Callers supply text and receive rasters; encoding
// to PNG and persistence are the caller's concern (EncodePNG is provided as a
// convenience). HTML/Markdown acquisition and stripping beyond the shallow
// tag removal in Analyze belong to callers as well.
package covergen
