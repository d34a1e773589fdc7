package runekit

import (
	"testing"
	"unicode/utf8"
)

func TestCategory(t *testing.T) {
	type tc struct {
		r    rune
		name string
	}

	tests := map[string]tc{
		"lowercase letter":  {r: 'a', name: "Ll"},
		"uppercase letter":  {r: 'A', name: "Lu"},
		"titlecase letter":  {r: 0x01C5, name: "Lt"},
		"digit":             {r: '7', name: "Nd"},
		"space":             {r: ' ', name: "Zs"},
		"control":           {r: '\n', name: "Cc"},
		"combining acute":   {r: 0x0301, name: "Mn"},
		"cjk ideograph":     {r: '你', name: "Lo"},
		"open paren":        {r: '(', name: "Ps"},
		"currency":          {r: '$', name: "Sc"},
		"emoji":             {r: 0x1F600, name: "So"},
		"unassigned":        {r: 0x0378, name: "Cn"},
		"surrogate":         {r: 0xD800, name: "Cn"},
		"negative":          {r: -1, name: "Cn"},
		"beyond max rune":   {r: utf8.MaxRune + 1, name: "Cn"},
		"replacement char":  {r: utf8.RuneError, name: "So"},
		"devanagari matraa": {r: 0x093E, name: "Mc"},
		"enclosing circle":  {r: 0x20DD, name: "Me"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Category(tt.r); got != tt.name {
				t.Errorf("Category(%U) = %q, want %q", tt.r, got, tt.name)
			}
		})
	}
}

func TestCategory_CasedLettersUseGeneralCategories(t *testing.T) {
	// "LC" is a union table in the stdlib, not a general category, and must
	// never win over Lu/Ll/Lt
	for _, r := range []rune{'a', 'A', 0x01C5, 'é', 'Ω'} {
		if got := Category(r); got == "LC" {
			t.Errorf("Category(%U) = %q, want a real general category", r, got)
		}
	}
}

func TestIsCombiningMark(t *testing.T) {
	type tc struct {
		r    rune
		want bool
	}

	tests := map[string]tc{
		"combining acute":    {r: 0x0301, want: true},
		"spacing mark":       {r: 0x093E, want: true},
		"enclosing mark":     {r: 0x20DD, want: true},
		"plain letter":       {r: 'a', want: false},
		"zero width joiner":  {r: 0x200D, want: false},
		"variation selector": {r: 0xFE0F, want: true},
		"invalid":            {r: -1, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsCombiningMark(tt.r); got != tt.want {
				t.Errorf("IsCombiningMark(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestIsPictographic(t *testing.T) {
	type tc struct {
		r    rune
		want bool
	}

	tests := map[string]tc{
		"grinning face":      {r: 0x1F600, want: true},
		"man":                {r: 0x1F468, want: true},
		"red heart":          {r: 0x2764, want: true},
		"copyright":          {r: 0x00A9, want: true},
		"plain letter":       {r: 'a', want: false},
		"digit":              {r: '5', want: false},
		"regional indicator": {r: 0x1F1EF, want: false},
		"skin tone modifier": {r: 0x1F3FB, want: false},
		"cjk ideograph":      {r: '好', want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsPictographic(tt.r); got != tt.want {
				t.Errorf("IsPictographic(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	type tc struct {
		input string
		form  NormalForm
		want  string
	}

	tests := map[string]tc{
		"nfc composes":        {input: "é", form: NFC, want: "é"},
		"nfd decomposes":      {input: "é", form: NFD, want: "é"},
		"nfkc compatibility":  {input: "ﬁ", form: NFKC, want: "fi"},
		"nfkd compatibility":  {input: "①", form: NFKD, want: "1"},
		"nfc ascii unchanged": {input: "hello", form: NFC, want: "hello"},
		"empty":               {input: "", form: NFC, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Normalize(tt.input, tt.form); got != tt.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.input, tt.form, got, tt.want)
			}
		})
	}
}

func TestNormalize_InvalidUTF8(t *testing.T) {
	input := "ab\xff\xfecd"
	if got := Normalize(input, NFC); got != input {
		t.Errorf("Normalize(%q) = %q, want input unchanged", input, got)
	}
}
