// Package scratchoff implements a scratch-off text card for [Ebitengine].
//
// A [Card] hides a short message under a texture of '0' and 'x' glyphs laid
// out on a fixed 40x6 grid. Dragging a pointer across the card with a button
// held reveals the cells beneath it. Revealed cells inside the message show
// its letters; everything else shows a second texture of 'F' and 'e'.
//
// The card itself knows nothing about windows. It takes three pointer events
// (down, up, move) and renders its text on demand, so it can be driven by the
// Ebitengine [Scene] in this package, by the tcell host in the terminal
// subpackage, or directly from tests.
//
// # Quick start
//
//	card := scratchoff.NewCard()
//	scene := scratchoff.NewScene(card, scratchoff.DefaultCalibration)
//	font, err := scratchoff.LoadCardFont(gomono.TTF, scratchoff.DefaultCalibration)
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene.SetFont(font)
//	scratchoff.Run(scene, scratchoff.RunConfig{Title: "Scratch me"})
//
// # Coordinate mapping
//
// Pointer positions are pixels relative to the top-left of the card surface.
// A [Calibration] scales them into grid cells; [DefaultCalibration] matches a
// 10x15 monospace glyph with 13px line spacing stretched over 115x868 pixels.
// Column 0 of every row is a line break, so the left-most pixels of the
// surface clamp onto it and never reveal anything.
//
// # Input order
//
// Within a frame the Scene delivers a pointer's move before its button
// transition. The position where a drag starts is therefore not revealed; the
// position where it ends is.
//
// # Automated checks
//
// [LoadTestScript] reads a JSON list of press, move, release, drag,
// scratch-row, wait and screenshot steps. Attach it with [Scene.SetTestRunner]
// to replay input and capture PNG plus text snapshots of the card.
//
// [Ebitengine]: https://ebitengine.org
package scratchoff
