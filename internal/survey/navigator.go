// Package survey models the client-side viewer navigation that the generated
// index page runs in the browser.
package survey

import (
	"fmt"
	"strings"
)

// Screen is which part of the page is visible.
type Screen int

const (
	MainScreen Screen = iota
	ViewerScreen
)

// View is what the viewer screen shows for one entry.
type View struct {
	URL   string
	Label string
}

// Navigator holds the survey page state: which list is active, the current
// position in it, and which screen is showing.
type Navigator struct {
	Main         []string // Viewer URLs, in display order.
	Test         []string // Test viewer URLs, never shuffled.
	Captions     map[string]int
	CurrentIndex int
	IsTest       bool
	Screen       Screen
	FrameSrc     string // Empty while the main screen is showing.
}

// NewNavigator returns a Navigator on the main screen.
func NewNavigator(main, test []string, captions map[string]int) *Navigator {
	return &Navigator{Main: main, Test: test, Captions: captions}
}

// urls returns the active list.
func (n *Navigator) urls() []string {
	if n.IsTest {
		return n.Test
	}
	return n.Main
}

// Len returns the length of the active list.
func (n *Navigator) Len() int { return len(n.urls()) }

// EnterMain switches to the shuffled main list at position 0.
func (n *Navigator) EnterMain() View {
	return n.enter(false)
}

// EnterTest switches to the fixed test list at position 0.
func (n *Navigator) EnterTest() View {
	return n.enter(true)
}

func (n *Navigator) enter(isTest bool) View {
	n.IsTest = isTest
	n.CurrentIndex = 0
	n.Screen = ViewerScreen
	return n.show()
}

// Next advances one entry. At the last entry it does nothing and returns false.
func (n *Navigator) Next() (View, bool) {
	if n.CurrentIndex < n.Len()-1 {
		n.CurrentIndex++
		return n.show(), true
	}
	return n.Current(), false
}

// Prev steps back one entry. At index 0 it does nothing and returns false.
func (n *Navigator) Prev() (View, bool) {
	if n.CurrentIndex > 0 {
		n.CurrentIndex--
		return n.show(), true
	}
	return n.Current(), false
}

// Back returns to the main screen and clears the frame.
func (n *Navigator) Back() {
	n.Screen = MainScreen
	n.FrameSrc = ""
}

// Current returns the view at the current position without changing state.
func (n *Navigator) Current() View {
	return n.Display(n.CurrentIndex, n.IsTest)
}

func (n *Navigator) show() View {
	v := n.Current()
	n.FrameSrc = v.URL
	return v
}

// Display resolves the entry at index in the main or test list. Out-of-range
// indexes yield an empty URL rather than an error.
func (n *Navigator) Display(index int, isTest bool) View {
	urls := n.Main
	if isTest {
		urls = n.Test
	}
	if index < 0 || index >= len(urls) {
		return View{Label: Label(n.Captions, "")}
	}
	url := urls[index]
	return View{URL: url, Label: Label(n.Captions, url)}
}

// FolderName returns the second-to-last path segment of url, which is the
// viewer folder for ".../{folder}/index.html".
func FolderName(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2]
}

// Label renders the title shown above the viewer. Folders missing from the
// caption table show their raw name.
func Label(captions map[string]int, url string) string {
	folder := FolderName(url)
	if id, ok := captions[folder]; ok {
		return fmt.Sprintf("VIDEO ID: %d", id)
	}
	return "VIDEO ID: " + folder
}
