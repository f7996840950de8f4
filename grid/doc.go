// Package grid lays out rows of cells ahead of a draw pass and then hands the
// allocated regions back to the caller one at a time.
//
// A Builder accumulates the declaration: rows, each with a Size along the
// grid's primary axis, and cells, each with a Size along the row. A cell may
// hold a nested Builder whose own cells take its place in line. Show turns the
// declaration into concrete regions for one area and drives a cursor over the
// flattened leaf sequence:
//
//	b := grid.New().
//		Row(layout.Exact(3)).
//		Cell(layout.Exact(20)).
//		Cell(layout.Remainder()).
//		Row(layout.Remainder()).
//		Cells(layout.Remainder(), 3)
//
//	grid.Show(b, cv, cv.Area(), func(g *grid.Grid[*canvas.Canvas]) {
//		g.Cell(func(c *canvas.Canvas) { c.Text("logo", style) })
//		g.Cell(func(c *canvas.Canvas) { c.Text("title", style) })
//		g.Empty()
//		g.Cell(func(c *canvas.Canvas) { c.Text("body", style) })
//	})
//
// Cells never grow with their content. Asking for more cells than were
// declared panics; leaving cells unclaimed is fine.
package grid
