package usecase

import "github.com/mariasoturna/AssistenteVirtual/internal/model"

// Keyword tables driving classification. All tables are fixed-order slices:
// the check order is part of the contract, so none of these may become maps.

// actionFamilies is checked first to last; reminders and meetings are
// detected before the generic add fallback even when add-family words also
// appear in the sentence.
var actionFamilies = []struct {
	Action   model.Action
	Keywords []string
}{
	{model.ActionRemind, []string{"lembrar", "lembre", "lembrete"}},
	{model.ActionMeeting, []string{"reunião", "reunir", "agendar reunião", "marcar reunião"}},
	{model.ActionCall, []string{"ligar", "telefonar", "chamar", "contatar"}},
	{model.ActionEmail, []string{"email", "e-mail", "enviar email", "mandar email"}},
	{model.ActionAdd, []string{"adicionar", "criar", "nova tarefa", "incluir"}},
}

// categoryKeywords scores categories by keyword presence, iterated in
// model.Categories order.
var categoryKeywords = map[model.Category][]string{
	model.CategoryWork: {
		"trabalho", "reunião", "projeto", "cliente", "relatório",
		"apresentação", "email", "e-mail", "profissional", "escritório", "negócio",
	},
	model.CategoryPersonal: {
		"casa", "família", "amigo", "lazer", "hobby", "compras",
		"médico", "saúde", "pessoal", "aniversário", "festa",
	},
	model.CategoryStudy: {
		"estudar", "aula", "curso", "faculdade", "leitura", "livro",
		"prova", "exercício", "escola", "universidade", "aprender",
	},
}

// priorityKeywords is matched in model.Priorities order; first family wins.
var priorityKeywords = map[model.Priority][]string{
	model.PriorityHigh: {
		"urgente", "importante", "crítico", "prioritário", "essencial",
		"imediato", "emergência", "crucial",
	},
	model.PriorityMedium: {
		"relevante", "significativo", "considerável", "moderado", "médio", "intermediário",
	},
	model.PriorityLow: {
		"eventual", "quando possível", "se der tempo", "opcional",
		"baixa prioridade", "secundário",
	},
}

// Sentiment lexicons: signed token weights plus intensity multipliers.
var positiveWords = map[string]float64{
	"bom": 1, "ótimo": 2, "excelente": 2, "feliz": 1,
	"animado": 1, "interessante": 1, "importante": 1,
	"urgente": 2, "prioritário": 2, "essencial": 2,
}

var negativeWords = map[string]float64{
	"ruim": -1, "péssimo": -2, "triste": -1, "chato": -1,
	"difícil": -1, "complicado": -1, "atrasar": -2,
	"cancelar": -2, "adiar": -1, "problema": -1,
}

var intensifiers = map[string]float64{
	"muito": 2, "extremamente": 3, "super": 2,
	"bastante": 1.5, "pouco": 0.5, "levemente": 0.7,
}

// stopWords are command/politeness words stripped from the details text.
var stopWords = []string{
	"adicionar", "lembrar", "criar", "marcar", "por favor",
	"agendar", "reunião", "reunir",
}
