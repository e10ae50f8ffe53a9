package iata

import "testing"

func TestParseCode(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{name: "clean code", reply: "LAS", want: "LAS"},
		{name: "surrounding whitespace", reply: "  PHX\n", want: "PHX"},
		{name: "chatty reply", reply: "The code is SFO.", want: "SFO"},
		{name: "explicit unknown", reply: "UNK", want: "UNK"},
		{name: "gibberish", reply: "no idea, sorry", want: Unknown},
		{name: "empty", reply: "", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCode(tt.reply); got != tt.want {
				t.Errorf("ParseCode(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}
