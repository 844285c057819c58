package usecase

import (
	"testing"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
)

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Action
	}{
		{"Remind family", "lembrar de pagar a conta", model.ActionRemind},
		{"Remind wins over add family", "criar lembrete para sexta", model.ActionRemind},
		{"Meeting", "agendar reunião com o time", model.ActionMeeting},
		{"Meeting wins over call family", "reunião para ligar depois", model.ActionMeeting},
		{"Call", "ligar para o consultório", model.ActionCall},
		{"Email", "mandar email para o fornecedor", model.ActionEmail},
		{"Add", "adicionar compra de material", model.ActionAdd},
		{"Default is add", "organizar a gaveta", model.ActionAdd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyAction(tt.text); got != tt.want {
				t.Errorf("classifyAction(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{"Work keywords", "reunião de trabalho importante", model.CategoryWork},
		{"Personal keywords", "consulta com médico e depois compras", model.CategoryPersonal},
		{"Study keywords", "estudar para a prova da faculdade", model.CategoryStudy},
		{"No keywords falls back to general", "fazer aquilo combinado", model.CategoryGeneral},
		{"Tie breaks toward first category in table order", "reunião com amigo", model.CategoryWork},
		{"Explicit tag overrides scoring", "reunião de projeto categoria:estudo", model.CategoryStudy},
		{"Unknown explicit tag is ignored", "reunião categoria:banana", model.CategoryWork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyCategory(tt.text); got != tt.want {
				t.Errorf("classifyCategory(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Priority
	}{
		{"High family", "resolver isso, urgente", model.PriorityHigh},
		{"High from importante", "reunião de trabalho importante", model.PriorityHigh},
		{"Medium family", "tarefa relevante da semana", model.PriorityMedium},
		{"Low family", "arrumar a estante se der tempo", model.PriorityLow},
		{"Default normal", "comprar pão", model.PriorityNormal},
		{"Explicit tag overrides keywords", "urgente prioridade:baixa", model.PriorityLow},
		{"Explicit accented tag", "fazer depois prioridade:média", model.PriorityMedium},
		{"Unknown explicit tag is ignored", "urgente prioridade:altíssima", model.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyPriority(tt.text); got != tt.want {
				t.Errorf("classifyPriority(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}
