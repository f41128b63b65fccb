// Package helpdesk holds the help terminal's reference data: the tab set,
// the function-key shortcuts, the constant tables and topic search.
package helpdesk

import "strings"

// Tab is one of the content blocks of the help terminal.
type Tab string

const (
	TabAbout    Tab = "About"
	TabFeatures Tab = "Features"
	TabSupport  Tab = "Support"
	TabAPIDocs  Tab = "API Docs"
)

// Tabs returns the tab set in display order.
func Tabs() []Tab {
	return []Tab{TabAbout, TabFeatures, TabSupport, TabAPIDocs}
}

// Index returns the position of t in Tabs, or -1.
func (t Tab) Index() int {
	for i, tab := range Tabs() {
		if tab == t {
			return i
		}
	}
	return -1
}

// Shortcut is a function-key quick jump shown in the header.
type Shortcut struct {
	Key   string
	Label string
	Tab   Tab
}

// Caption renders the shortcut the way the header shows it, e.g. "F2:FEATURES".
func (s Shortcut) Caption() string {
	return strings.ToUpper(s.Key) + ":" + s.Label
}

var shortcuts = []Shortcut{
	{Key: "f1", Label: "ABOUT", Tab: TabAbout},
	{Key: "f2", Label: "FEATURES", Tab: TabFeatures},
	{Key: "f3", Label: "SUPPORT", Tab: TabSupport},
	{Key: "f4", Label: "CONTACT", Tab: TabSupport},
	{Key: "f5", Label: "FEEDBACK", Tab: TabSupport},
	{Key: "f6", Label: "DOCS", Tab: TabAPIDocs},
}

func Shortcuts() []Shortcut {
	out := make([]Shortcut, len(shortcuts))
	copy(out, shortcuts)
	return out
}

// ShortcutForKey finds the shortcut bound to a key such as "f3".
func ShortcutForKey(key string) (Shortcut, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range shortcuts {
		if s.Key == key {
			return s, true
		}
	}
	return Shortcut{}, false
}

// Resolve maps a tab name or shortcut label onto a tab. Matching ignores
// case and surrounding space, so "FEATURES", "Features" and "F2:FEATURES"
// all resolve to TabFeatures.
func Resolve(name string) (Tab, bool) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	for _, t := range Tabs() {
		if strings.EqualFold(string(t), name) {
			return t, true
		}
	}
	for _, s := range shortcuts {
		if strings.EqualFold(s.Label, name) {
			return s.Tab, true
		}
	}
	return "", false
}

// NextTab cycles through Tabs by delta, wrapping at both ends.
func NextTab(current Tab, delta int) Tab {
	tabs := Tabs()
	i := current.Index()
	if i < 0 {
		return tabs[0]
	}
	n := len(tabs)
	return tabs[((i+delta)%n+n)%n]
}
