package runekit

import "testing"

func TestStyle_Builders(t *testing.T) {
	s := NewStyle().Bold().Underline().Foreground(Red).Background(Blue)

	if !s.HasAttr(AttrBold) || !s.HasAttr(AttrUnderline) {
		t.Error("Bold and Underline should be set")
	}
	if s.HasAttr(AttrItalic) {
		t.Error("Italic should not be set")
	}
	if !s.Fg.Equal(Red) {
		t.Errorf("Fg = %+v, want Red", s.Fg)
	}
	if !s.Bg.Equal(Blue) {
		t.Errorf("Bg = %+v, want Blue", s.Bg)
	}
}

func TestStyle_BuildersDoNotMutate(t *testing.T) {
	base := NewStyle().Bold()
	derived := base.Italic()

	if base.HasAttr(AttrItalic) {
		t.Error("base style mutated by derived builder")
	}
	if !derived.HasAttr(AttrBold) || !derived.HasAttr(AttrItalic) {
		t.Error("derived style should carry both attributes")
	}
}

func TestStyle_IsZero(t *testing.T) {
	type tc struct {
		style Style
		want  bool
	}

	tests := map[string]tc{
		"zero":       {style: Style{}, want: true},
		"new style":  {style: NewStyle(), want: true},
		"bold":       {style: NewStyle().Bold(), want: false},
		"foreground": {style: NewStyle().Foreground(Red), want: false},
		"background": {style: NewStyle().Background(Blue), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.style.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}
