package usecase

import (
	"testing"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
)

func TestCleanDetails(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		spans []string
		want  string
	}{
		{
			name:  "Entity spans and stop words removed",
			text:  "lembrar de ligar para cliente amanhã às 9h",
			spans: []string{"amanhã", "às 9h"},
			want:  "de ligar para cliente",
		},
		{
			name:  "Adjacent duplicate spans both removed",
			text:  "consulta amanhã amanhã de manhã",
			spans: []string{"amanhã"},
			want:  "consulta de manhã",
		},
		{
			name: "Adjacent duplicate stop words both removed",
			text: "reunião reunião com a diretoria",
			want: "com a diretoria",
		},
		{
			name:  "Span never bites into a longer word",
			text:  "encontro depois de amanhã",
			spans: []string{"depois de amanhã"},
			want:  "encontro",
		},
		{
			name:  "Empty result gets the placeholder",
			text:  "lembrar amanhã",
			spans: []string{"amanhã"},
			want:  model.DefaultDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanDetails(tt.text, tt.spans); got != tt.want {
				t.Errorf("cleanDetails(%q, %v) = %q, want %q", tt.text, tt.spans, got, tt.want)
			}
		})
	}
}
