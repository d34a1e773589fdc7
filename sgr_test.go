package runekit

import "testing"

func TestApplySGR(t *testing.T) {
	type tc struct {
		state Style
		esc   string
		want  Style
	}

	tests := map[string]tc{
		"reset": {
			state: NewStyle().Bold().Foreground(Red),
			esc:   "\x1b[0m",
			want:  Style{},
		},
		"empty param resets": {
			state: NewStyle().Bold(),
			esc:   "\x1b[m",
			want:  Style{},
		},
		"bold": {
			esc:  "\x1b[1m",
			want: NewStyle().Bold(),
		},
		"bold accumulates on underline": {
			state: NewStyle().Underline(),
			esc:   "\x1b[1m",
			want:  NewStyle().Underline().Bold(),
		},
		"clear bold keeps color": {
			state: NewStyle().Bold().Foreground(Red),
			esc:   "\x1b[22m",
			want:  NewStyle().Foreground(Red),
		},
		"basic foreground": {
			esc:  "\x1b[31m",
			want: NewStyle().Foreground(Red),
		},
		"bright foreground": {
			esc:  "\x1b[91m",
			want: NewStyle().Foreground(BrightRed),
		},
		"basic background": {
			esc:  "\x1b[44m",
			want: NewStyle().Background(Blue),
		},
		"bright background": {
			esc:  "\x1b[104m",
			want: NewStyle().Background(BrightBlue),
		},
		"256 color foreground": {
			esc:  "\x1b[38;5;208m",
			want: NewStyle().Foreground(ANSIColor(208)),
		},
		"truecolor foreground": {
			esc:  "\x1b[38;2;10;20;30m",
			want: NewStyle().Foreground(RGBColor(10, 20, 30)),
		},
		"truecolor background": {
			esc:  "\x1b[48;2;1;2;3m",
			want: NewStyle().Background(RGBColor(1, 2, 3)),
		},
		"default foreground": {
			state: NewStyle().Foreground(Red).Bold(),
			esc:   "\x1b[39m",
			want:  NewStyle().Bold(),
		},
		"default background": {
			state: NewStyle().Background(Blue),
			esc:   "\x1b[49m",
			want:  Style{},
		},
		"combined params": {
			esc:  "\x1b[1;4;31;44m",
			want: NewStyle().Bold().Underline().Foreground(Red).Background(Blue),
		},
		"reset mid sequence": {
			state: NewStyle().Bold(),
			esc:   "\x1b[0;32m",
			want:  NewStyle().Foreground(Green),
		},
		"unknown code ignored": {
			state: NewStyle().Bold(),
			esc:   "\x1b[73m",
			want:  NewStyle().Bold(),
		},
		"malformed extended color": {
			esc:  "\x1b[38;5m",
			want: Style{},
		},
		"non sgr escape ignored": {
			state: NewStyle().Bold(),
			esc:   "\x1b[2J",
			want:  NewStyle().Bold(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := applySGR(tt.state, tt.esc); got != tt.want {
				t.Errorf("applySGR(%+v, %q) = %+v, want %+v", tt.state, tt.esc, got, tt.want)
			}
		})
	}
}

func TestStyleSGR(t *testing.T) {
	type tc struct {
		style Style
		want  string
	}

	tests := map[string]tc{
		"zero style is bare reset": {
			style: Style{},
			want:  "\x1b[0m",
		},
		"bold": {
			style: NewStyle().Bold(),
			want:  "\x1b[0;1m",
		},
		"basic foreground": {
			style: NewStyle().Foreground(Red),
			want:  "\x1b[0;31m",
		},
		"bright background": {
			style: NewStyle().Background(BrightBlue),
			want:  "\x1b[0;104m",
		},
		"256 color": {
			style: NewStyle().Foreground(ANSIColor(208)),
			want:  "\x1b[0;38;5;208m",
		},
		"truecolor": {
			style: NewStyle().Background(RGBColor(10, 20, 30)),
			want:  "\x1b[0;48;2;10;20;30m",
		},
		"everything": {
			style: NewStyle().Bold().Underline().Foreground(Red).Background(Blue),
			want:  "\x1b[0;1;4;31;44m",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.style.SGR(); got != tt.want {
				t.Errorf("SGR() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleSGR_RoundTrip(t *testing.T) {
	styles := map[string]Style{
		"bold red on blue": NewStyle().Bold().Foreground(Red).Background(Blue),
		"dim strike":       NewStyle().Dim().Strikethrough(),
		"truecolor":        NewStyle().Foreground(RGBColor(1, 2, 3)),
		"zero":             {},
	}

	for name, style := range styles {
		t.Run(name, func(t *testing.T) {
			prior := NewStyle().Italic().Foreground(Green)
			if got := applySGR(prior, style.SGR()); got != style {
				t.Errorf("applySGR(prior, style.SGR()) = %+v, want %+v", got, style)
			}
		})
	}
}
