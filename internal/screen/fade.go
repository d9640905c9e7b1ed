package screen

import "time"

func ratio(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	r := float64(elapsed) / float64(total)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// IntroAlpha is the opacity of the splash image: fade in, hold, fade out.
func (m Machine) IntroAlpha(now time.Duration) float64 {
	if m.State != Intro {
		return 0
	}
	elapsed := m.Elapsed(now)
	switch {
	case elapsed < IntroFadeIn:
		return ratio(elapsed, IntroFadeIn)
	case elapsed < IntroHoldEnd:
		return 1
	default:
		return 1 - ratio(elapsed-IntroHoldEnd, IntroEnd-IntroHoldEnd)
	}
}

// OverlayAlpha is the opacity of the white full-screen overlay.
func (m Machine) OverlayAlpha(now time.Duration) float64 {
	switch m.State {
	case ShowApollo:
		return 1
	case FadeOut:
		return 1 - ratio(m.Elapsed(now), OverlayFade)
	case Returning:
		return ratio(m.Elapsed(now), ReturnFade)
	}
	return 0
}

// ShutdownProgress runs from 0 to 1 over the shutdown phase.
func (m Machine) ShutdownProgress(now time.Duration) float64 {
	switch m.State {
	case Shutdown:
		return ratio(m.Elapsed(now), ShutdownDelay)
	case Exited:
		return 1
	}
	return 0
}

// LabelAlpha is the idle opacity of jar labels; hovered labels are always 1.
func (m Machine) LabelAlpha() float64 {
	if m.State == ShowApollo {
		return 22.0 / 255
	}
	return 80.0 / 255
}

// ShowsMenu reports whether the jar menu is drawn and clickable.
func (m Machine) ShowsMenu() bool {
	return m.State == ShowApollo || m.State == FadeOut
}
