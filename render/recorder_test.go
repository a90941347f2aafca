package render

// recordedOp is one primitive call captured by recorder
type recordedOp struct {
	layer  Layer
	op     string
	dx, dy float64
	text   string
}

// recorder is a Surface that captures calls instead of drawing
type recorder struct {
	w, h   int
	layer  Layer
	dx, dy float64
	stack  [][2]float64
	ops    []recordedOp
}

func newRecorder(w, h int) *recorder {
	return &recorder{w: w, h: h, layer: -1}
}

func (r *recorder) BeginLayer(l Layer) { r.layer = l }

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Save() { r.stack = append(r.stack, [2]float64{r.dx, r.dy}) }

func (r *recorder) Restore() {
	n := len(r.stack)
	r.dx, r.dy = r.stack[n-1][0], r.stack[n-1][1]
	r.stack = r.stack[:n-1]
}

func (r *recorder) Translate(dx, dy float64) {
	r.dx += dx
	r.dy += dy
}

func (r *recorder) record(op, text string) {
	r.ops = append(r.ops, recordedOp{layer: r.layer, op: op, dx: r.dx, dy: r.dy, text: text})
}

func (r *recorder) FillRect(x, y, w, h float64, p Paint) {
	r.record("rect", "")
}

func (r *recorder) FillPolygon(pts []Point, p Paint) {
	r.record("polygon", "")
}

func (r *recorder) StrokePolyline(pts []Point, closed bool, w float64, p Paint) {
	r.record("stroke", "")
}

func (r *recorder) FillEllipse(cx, cy, rx, ry float64, p Paint) {
	r.record("ellipse", "")
}

func (r *recorder) FillText(x, y float64, text string, style TextStyle, p Paint) {
	r.record("text", text)
}

// layers returns the distinct layer sequence in draw order
func (r *recorder) layers() []Layer {
	var out []Layer
	for _, op := range r.ops {
		if len(out) == 0 || out[len(out)-1] != op.layer {
			out = append(out, op.layer)
		}
	}
	return out
}

func (r *recorder) texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.op == "text" {
			out = append(out, op.text)
		}
	}
	return out
}
