package calendar

// ThumbPercent derives the synthetic scrollbar thumb position, in [0,100],
// from the scroll region's geometry. When the content fits without
// scrolling there is no track to divide by; the thumb stays at the top.
func ThumbPercent(scrollTop, scrollHeight, clientHeight float64) float64 {
	track := scrollHeight - clientHeight
	if track <= 0 {
		return 0
	}
	p := scrollTop / track * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ScrollTopFor maps a track fraction in [0,1] (a thumb drag or track click)
// back to the scrollTop it represents.
func ScrollTopFor(fraction, scrollHeight, clientHeight float64) float64 {
	track := scrollHeight - clientHeight
	if track <= 0 {
		return 0
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fraction * track
}
