package deps

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewListGroup(t *testing.T) {
	tests := []struct {
		name      string
		ids       []string
		wantCount int
		wantList  string
	}{
		{"nil", nil, 0, "[]"},
		{"sorted", []string{"six==1.16.0", "attrs==21.2.0"}, 2, `["attrs==21.2.0","six==1.16.0"]`},
		{"deduplicated", []string{"a==1", "a==1", "a==2"}, 2, `["a==1","a==2"]`},
		{"no html escaping", []string{"pkg>=1.0"}, 1, `["pkg>=1.0"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewListGroup(tt.ids)
			if g.Count != tt.wantCount || g.List != tt.wantList {
				t.Errorf("NewListGroup(%q) = %+v, want {%d %s}", tt.ids, g, tt.wantCount, tt.wantList)
			}
		})
	}
}

func TestNewListGroup_CountMatchesList(t *testing.T) {
	g := NewListGroup([]string{"x==1", "y==1", "x==1", "z==2", "y==1"})
	var ids []string
	if err := json.Unmarshal([]byte(g.List), &ids); err != nil {
		t.Fatal(err)
	}
	if g.Count != len(ids) {
		t.Errorf("Count = %d, list has %d entries", g.Count, len(ids))
	}
}

func TestNewMapGroup(t *testing.T) {
	g := NewMapGroup(map[string]string{"react": "^17.0.2", "@babel/core": "<8"})
	if g.Count != 2 {
		t.Errorf("Count = %d, want 2", g.Count)
	}
	if want := `{"@babel/core":"<8","react":"^17.0.2"}`; g.List != want {
		t.Errorf("List = %s, want %s", g.List, want)
	}
	if g := NewMapGroup(nil); g.Count != 0 || g.List != "{}" {
		t.Errorf("NewMapGroup(nil) = %+v", g)
	}
}

func TestSummary_Merge(t *testing.T) {
	s := DefaultSummary(GroupPypi, GroupJS)
	s.Merge(&Summary{Count: 3, Groups: map[string]Group{GroupPypi: {Count: 3, List: "[]"}}})
	s.Merge(&Summary{Count: 2, Groups: map[string]Group{GroupJS: {Count: 2, List: "{}"}}})
	s.Merge(nil)

	if s.Count != 5 {
		t.Errorf("Count = %d, want 5", s.Count)
	}
	if s.Group(GroupPypi).Count != 3 || s.Group(GroupJS).Count != 2 {
		t.Errorf("Groups = %v", s.Groups)
	}
}

func TestSummary_Metadata(t *testing.T) {
	s := NewSummary()
	s.Count = 1
	s.Set(GroupGithub, Group{Count: 1, List: `["git+https://x"]`})

	want := map[string]any{
		"count":  1,
		"github": map[string]any{"count": 1, "list": `["git+https://x"]`},
	}
	if got := s.Metadata(); !reflect.DeepEqual(got, want) {
		t.Errorf("Metadata() = %v, want %v", got, want)
	}
}

func TestSummary_ZeroValueSet(t *testing.T) {
	var s Summary
	s.Set("x", Group{Count: 1})
	if s.Group("x").Count != 1 {
		t.Error("Set on zero Summary was lost")
	}
	if s.Group("missing") != (Group{}) {
		t.Error("missing group is not the zero Group")
	}
}

func TestOptions_WithDefaults(t *testing.T) {
	opts := Options{}.WithDefaults()
	if opts.Files == nil || opts.Logger == nil {
		t.Fatal("WithDefaults left nil fields")
	}
	opts.Logger("ignored %d", 1)

	lines, err := opts.Files.Lines("/nonexistent/requirements.txt")
	if err != nil || len(lines) != 0 {
		t.Errorf("Lines(missing) = %v, %v; want empty, nil", lines, err)
	}
}
