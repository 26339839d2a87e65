package graph

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Visual constants for rendering
const (
	nodeRadius    = 6.0
	entryRadius   = 9.0
	exitRadius    = 9.0
	exitInner     = 5.0
	columnGap     = 150.0
	rowGap        = 70.0
	svgPadding    = 40.0
	arrowSize     = 7.0
	curveBase     = 34.0
	minSeparation = 1.0
)

// WriteSVG renders the graph as SVG, columns left to right by longest
// path from the entry. Parallel alternative edges between the same
// junction pair curve apart in alternating shells.
func WriteSVG(w io.Writer, g *Graph) error {
	pos := layout(g)

	maxX, maxY := 0.0, 0.0
	for _, p := range pos {
		if p.x > maxX {
			maxX = p.x
		}
		if p.y > maxY {
			maxY = p.y
		}
	}
	width := maxX + svgPadding
	height := maxY + svgPadding

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`,
		width, height, width, height))
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="%.1f" height="%.1f" fill="#f8f9fa" rx="8"/>`, width, height))
	buf.WriteString("\n")

	buf.WriteString(`<defs>`)
	buf.WriteString(`<style>`)
	buf.WriteString(`.node { fill: #fff; stroke: #333; stroke-width: 2; }`)
	buf.WriteString(`.node-entry { fill: #333; }`)
	buf.WriteString(`.node-exit-inner { fill: #333; stroke: none; }`)
	buf.WriteString(`.edge { stroke: #666666; stroke-width: 1.5; fill: none; }`)
	buf.WriteString(`.edge-hop { stroke-dasharray: 5,3; }`)
	buf.WriteString(`.arrowhead { fill: #666666; }`)
	buf.WriteString(`.edge-label { font-family: system-ui, Arial; font-size: 11px; fill: #333; text-anchor: middle; }`)
	buf.WriteString(`</style>`)
	buf.WriteString(`</defs>`)
	buf.WriteString("\n")

	groups := groupEdgesByPair(g.Edges)
	for _, e := range g.Edges {
		drawEdge(&buf, pos[e.Src], pos[e.Dst], e, edgeCurveOffset(e, groups))
	}
	drawNodes(&buf, g, pos)

	buf.WriteString("</svg>\n")
	_, err := w.Write(buf.Bytes())
	return err
}

type point struct {
	x, y float64
}

// layout assigns each node a column by its longest edge distance from
// the entry and a row by node id within the column.
func layout(g *Graph) []point {
	depth := make([]int, g.nodes)
	// Longest path by repeated relaxation; the graph is a small DAG.
	for range g.Edges {
		for _, e := range g.Edges {
			if d := depth[e.Src] + 1; d > depth[e.Dst] {
				depth[e.Dst] = d
			}
		}
	}

	byColumn := make(map[int][]NodeID)
	maxCol := 0
	for n := 0; n < g.nodes; n++ {
		c := depth[n]
		byColumn[c] = append(byColumn[c], NodeID(n))
		if c > maxCol {
			maxCol = c
		}
	}

	pos := make([]point, g.nodes)
	for c := 0; c <= maxCol; c++ {
		col := byColumn[c]
		sort.Slice(col, func(i, j int) bool { return col[i] < col[j] })
		for row, n := range col {
			pos[n] = point{
				x: svgPadding + float64(c)*columnGap,
				y: svgPadding + float64(row)*rowGap,
			}
		}
	}
	return pos
}

// groupEdgesByPair indexes edge ids by their src->dst pair so parallel
// alternatives can be curved apart.
func groupEdgesByPair(edges []Edge) map[[2]NodeID][]int {
	groups := make(map[[2]NodeID][]int)
	for _, e := range edges {
		key := [2]NodeID{e.Src, e.Dst}
		groups[key] = append(groups[key], e.ID)
	}
	return groups
}

// edgeCurveOffset spreads parallel edges into alternating shells:
// 0, +offset, -offset, +2*offset, ...
func edgeCurveOffset(e Edge, groups map[[2]NodeID][]int) float64 {
	group := groups[[2]NodeID{e.Src, e.Dst}]
	if len(group) == 1 {
		return 0
	}
	pos := 0
	for i, id := range group {
		if id == e.ID {
			pos = i
			break
		}
	}
	if pos == 0 {
		return 0
	}
	layer := math.Ceil(float64(pos) / 2.0)
	if pos%2 == 0 {
		return -curveBase * layer
	}
	return curveBase * layer
}

func drawEdge(buf *bytes.Buffer, src, trg point, e Edge, curveOffset float64) {
	dx := trg.x - src.x
	dy := trg.y - src.y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		dist = minSeparation
	}
	ux := dx / dist
	uy := dy / dist

	ex := src.x + ux*(nodeRadius+2)
	ey := src.y + uy*(nodeRadius+2)
	fx := trg.x - ux*(nodeRadius+2+arrowSize)
	fy := trg.y - uy*(nodeRadius+2+arrowSize)

	class := "edge"
	if e.Hop.Open != nil || e.Hop.Close != nil {
		class += " edge-hop"
	}

	var endDirX, endDirY, labelX, labelY float64
	if curveOffset != 0 {
		midX := (ex + fx) / 2
		midY := (ey + fy) / 2
		controlX := midX - uy*curveOffset
		controlY := midY + ux*curveOffset
		buf.WriteString(fmt.Sprintf(`<path d="M %.1f %.1f Q %.1f %.1f %.1f %.1f" class="%s"/>`,
			ex, ey, controlX, controlY, fx, fy, class))
		buf.WriteString("\n")

		tdx := fx - controlX
		tdy := fy - controlY
		tDist := math.Sqrt(tdx*tdx + tdy*tdy)
		if tDist == 0 {
			tDist = minSeparation
		}
		endDirX = tdx / tDist
		endDirY = tdy / tDist
		// Label rides the curve apex at t=0.5.
		labelX = 0.25*ex + 0.5*controlX + 0.25*fx
		labelY = 0.25*ey + 0.5*controlY + 0.25*fy
	} else {
		buf.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="%s"/>`,
			ex, ey, fx, fy, class))
		buf.WriteString("\n")
		endDirX = ux
		endDirY = uy
		labelX = (ex + fx) / 2
		labelY = (ey + fy) / 2
	}

	ahx := fx + (-endDirX*arrowSize - endDirY*arrowSize*0.45)
	ahy := fy + (-endDirY*arrowSize + endDirX*arrowSize*0.45)
	bhx := fx + (-endDirX*arrowSize + endDirY*arrowSize*0.45)
	bhy := fy + (-endDirY*arrowSize - endDirX*arrowSize*0.45)
	buf.WriteString(fmt.Sprintf(`<path d="M %.1f %.1f L %.1f %.1f L %.1f %.1f Z" class="arrowhead"/>`,
		fx, fy, ahx, ahy, bhx, bhy))
	buf.WriteString("\n")

	if label := edgeLabel(e); label != "" {
		buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="edge-label">%s</text>`,
			labelX, labelY-5, escapeXML(label)))
		buf.WriteString("\n")
	}
}

func drawNodes(buf *bytes.Buffer, g *Graph, pos []point) {
	for n := 0; n < g.nodes; n++ {
		p := pos[n]
		switch NodeID(n) {
		case g.Entry:
			buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" class="node node-entry"/>`,
				p.x, p.y, entryRadius))
		case g.Exit:
			buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" class="node"/>`,
				p.x, p.y, exitRadius))
			buf.WriteString("\n")
			buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" class="node-exit-inner"/>`,
				p.x, p.y, exitInner))
		default:
			buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" class="node"/>`,
				p.x, p.y, nodeRadius))
		}
		buf.WriteString("\n")
	}
}

// escapeXML escapes special XML characters in text
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
