package overlay

import "testing"

func TestResolveContent(t *testing.T) {
	tests := []struct {
		url  string
		want Content
	}{
		{"https://example.com/widget", Content{Remote: true, URL: "https://example.com/widget"}},
		{"http://127.0.0.1:8080/", Content{Remote: true, URL: "http://127.0.0.1:8080/"}},
		{"index.html", Content{URL: BundledDocument}},
		{"file:///home/user/page.html", Content{URL: BundledDocument}},
		{"/tmp/page.html", Content{URL: BundledDocument}},
		{"HTTPS://EXAMPLE.COM", Content{URL: BundledDocument}},
		{"", Content{URL: BundledDocument}},
	}

	for _, tc := range tests {
		if got := ResolveContent(tc.url); got != tc.want {
			t.Errorf("ResolveContent(%q) = %+v; want %+v", tc.url, got, tc.want)
		}
	}
}

func TestHotkeys(t *testing.T) {
	want := map[string]Action{
		"F8":     ActionToggleClickThrough,
		"F5":     ActionReload,
		"Ctrl+Q": ActionQuit,
		"Alt+D":  ActionToggleDrag,
	}

	keys := Hotkeys()
	if len(keys) != len(want) {
		t.Fatalf("Expected %d hotkeys, got %d", len(want), len(keys))
	}

	for _, hk := range keys {
		action, ok := want[hk.String()]
		if !ok {
			t.Errorf("Unexpected hotkey %s", hk)
			continue
		}
		if hk.Action != action {
			t.Errorf("Hotkey %s triggers %v; want %v", hk, hk.Action, action)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionQuit.String(); got != "Quit" {
		t.Errorf("Expected %q, got %q", "Quit", got)
	}
	if got := Action(42).String(); got != "Action(42)" {
		t.Errorf("Expected %q, got %q", "Action(42)", got)
	}
}

func TestLookupHotkey(t *testing.T) {
	tests := []struct {
		name string
		want Action
		ok   bool
	}{
		{"F8", ActionToggleClickThrough, true},
		{"f5", ActionReload, true},
		{"Ctrl+Q", ActionQuit, true},
		{"ctrl+q", ActionQuit, true},
		{"Alt+D", ActionToggleDrag, true},
		{"Q", 0, false},
		{"Alt+Q", 0, false},
		{"Shift+F8", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, ok := LookupHotkey(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("LookupHotkey(%q) = %v, %v; want %v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
