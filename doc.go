// Package wirecanvas renders the canvas of a wireframe prototyping tool with
// [Ebitengine].
//
// A [Canvas] holds placements of views (rectangular screens). Views live in a
// [ViewStore] and are referred to by [ViewID], so the same view can be placed
// several times and its components can point back at it without owning it.
//
// # Quick start
//
//	store := wirecanvas.NewViewStore()
//	home := store.NewView("Home", 800, 600)
//
//	canvas := wirecanvas.NewCanvas(store)
//	canvas.AddView(home, 0, 0)
//
//	if err := wirecanvas.Run(canvas, wirecanvas.RunConfig{Title: "Prototype"}); err != nil {
//		log.Fatal(err)
//	}
//
// Drag with the right mouse button to pan; scroll to change how far a drag
// pans.
//
// # Rendering
//
// Each frame the [Renderer] rebuilds the whole vertex list (six vertices per
// placement), uploads it into a fixed-capacity [VertexBuffer], computes an
// orthographic [Projection] from the target size and camera, and submits a
// single draw. Exceeding the buffer capacity is reported as
// [ErrCapacityExceeded] and stops the game loop.
//
// The Y translation of the projection divides by the target width by
// default ([ProjectionVerbatim]), which offsets content vertically on
// non-square windows. Set [RendererConfig.AspectCorrect] (or
// [RunConfig.AspectCorrect]) to divide by the height instead.
//
// For full control, drive a [Game] from your own loop or call
// [Renderer.Render] on any [Target].
//
// [Ebitengine]: https://ebitengine.org
package wirecanvas
