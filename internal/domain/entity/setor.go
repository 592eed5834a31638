package entity

// Setor é um domínio de negócio nomeado; controla o acesso por módulo
// e também categoriza tarefas e configurações.
type Setor string

const (
	SetorTrabalhista Setor = "trabalhista"
	SetorFiscal      Setor = "fiscal"
	SetorContabil    Setor = "contabil"
	SetorAtendimento Setor = "atendimento"
	SetorFinanceiro  Setor = "financeiro"
	SetorComercial   Setor = "comercial"
)

// Setores lista o domínio fechado, na ordem usada em relatórios.
var Setores = []Setor{
	SetorComercial, SetorFinanceiro, SetorTrabalhista,
	SetorFiscal, SetorContabil, SetorAtendimento,
}

// Valid informa se o setor pertence ao domínio fechado.
func (s Setor) Valid() bool {
	for _, v := range Setores {
		if s == v {
			return true
		}
	}
	return false
}

// SetorValues devolve os valores aceitos como strings (para mensagens de validação).
func SetorValues() []string {
	out := make([]string, len(Setores))
	for i, s := range Setores {
		out[i] = string(s)
	}
	return out
}
