package layout

// fitToCanvas makes the whole point set fit within the canvas minus the
// margin. If the bounding box exceeds the available area on either axis, the
// set is scaled down uniformly about the bounding-box centre, never up.
// The (possibly scaled) set is then translated so its centre coincides with
// the canvas centre, and every coordinate is clamped into
// [margin, dimension-margin] as a final guard.
func fitToCanvas(positions map[string]Position, o Options) {
	if len(positions) == 0 {
		return
	}

	first := true
	var loX, hiX, loY, hiY float64
	for _, p := range positions {
		if first {
			loX, hiX, loY, hiY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < loX {
			loX = p.X
		}
		if p.X > hiX {
			hiX = p.X
		}
		if p.Y < loY {
			loY = p.Y
		}
		if p.Y > hiY {
			hiY = p.Y
		}
	}

	boxW := hiX - loX
	boxH := hiY - loY
	availW := o.Width - 2*o.Margin
	availH := o.Height - 2*o.Margin

	scale := 1.0
	if boxW > availW && boxW > 0 {
		scale = availW / boxW
	}
	if boxH > availH && boxH > 0 {
		if s := availH / boxH; s < scale {
			scale = s
		}
	}

	boxCX := (loX + hiX) / 2
	boxCY := (loY + hiY) / 2
	shiftX := o.Width/2 - boxCX
	shiftY := o.Height/2 - boxCY

	for id, p := range positions {
		x := boxCX + (p.X-boxCX)*scale + shiftX
		y := boxCY + (p.Y-boxCY)*scale + shiftY
		positions[id] = Position{
			X: clamp(x, o.Margin, o.Width-o.Margin),
			Y: clamp(y, o.Margin, o.Height-o.Margin),
		}
	}
}
