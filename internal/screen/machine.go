package screen

import "time"

// Screen is the visual phase currently on display.
type Screen int

const (
	Intro      Screen = iota // Splash slideshow
	ShowApollo               // First frame of the main menu
	FadeOut                  // Main menu under a fading white overlay
	About                    // Credits panel
	Returning                // White overlay fading back in
	Shutdown                 // Closing bars
	Exited                   // Loop should terminate
)

func (s Screen) String() string {
	switch s {
	case Intro:
		return "intro"
	case ShowApollo:
		return "show_apollo"
	case FadeOut:
		return "fade_out"
	case About:
		return "about"
	case Returning:
		return "returning"
	case Shutdown:
		return "shutdown"
	case Exited:
		return "exited"
	}
	return "unknown"
}

// Event is the single discrete input evaluated on a frame.
type Event int

const (
	EventNone Event = iota
	EventEscape
	EventAbout
	EventQuit
)

// Phase timings
const (
	IntroFadeIn   = 1000 * time.Millisecond
	IntroHoldEnd  = 3100 * time.Millisecond
	IntroEnd      = 4100 * time.Millisecond
	OverlayFade   = 5 * time.Second
	ReturnFade    = 1500 * time.Millisecond
	ShutdownDelay = 4 * time.Second
)

// Machine is an immutable snapshot of the screen flow. Step returns the
// next snapshot; nothing here touches the graphics context.
type Machine struct {
	State Screen
	Since time.Duration // when State was entered, relative to program start
}

// New starts the flow in the intro phase at now.
func New(now time.Duration) Machine {
	return Machine{State: Intro, Since: now}
}

func (m Machine) enter(s Screen, now time.Duration) Machine {
	return Machine{State: s, Since: now}
}

// Elapsed is the time spent in the current phase. Clock skew backwards
// clamps to zero.
func (m Machine) Elapsed(now time.Duration) time.Duration {
	if now < m.Since {
		return 0
	}
	return now - m.Since
}

// Done reports whether the render loop should stop.
func (m Machine) Done() bool {
	return m.State == Exited
}

// Step applies one frame's worth of time and input.
func (m Machine) Step(now time.Duration, ev Event) Machine {
	if ev == EventQuit {
		return m.enter(Exited, now)
	}

	// 1. Input-driven transitions
	switch ev {
	case EventEscape:
		switch m.State {
		case About:
			return m.enter(Returning, now)
		case ShowApollo, FadeOut:
			return m.enter(Shutdown, now)
		}
	case EventAbout:
		if m.State == ShowApollo || m.State == FadeOut {
			return m.enter(About, now)
		}
	}

	// 2. Time-driven transitions
	elapsed := m.Elapsed(now)
	switch m.State {
	case Intro:
		if elapsed >= IntroEnd {
			return m.enter(ShowApollo, now)
		}
	case ShowApollo:
		return m.enter(FadeOut, now)
	case Returning:
		if elapsed >= ReturnFade {
			return m.enter(ShowApollo, now)
		}
	case Shutdown:
		if elapsed >= ShutdownDelay {
			return m.enter(Exited, now)
		}
	}
	return m
}
