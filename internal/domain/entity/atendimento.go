package entity

import "time"

// Prioridade compartilhada por tickets e tarefas.
type Prioridade string

const (
	PrioridadeBaixa   Prioridade = "baixa"
	PrioridadeMedia   Prioridade = "media"
	PrioridadeAlta    Prioridade = "alta"
	PrioridadeUrgente Prioridade = "urgente"
)

func (p Prioridade) Valid() bool {
	switch p {
	case PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta, PrioridadeUrgente:
		return true
	}
	return false
}

func PrioridadeValues() []string { return []string{"baixa", "media", "alta", "urgente"} }

// Canal pelo qual o atendimento foi aberto.
type Canal string

const (
	CanalTelefone   Canal = "telefone"
	CanalEmail      Canal = "email"
	CanalWhatsapp   Canal = "whatsapp"
	CanalChat       Canal = "chat"
	CanalPresencial Canal = "presencial"
)

func (c Canal) Valid() bool {
	switch c {
	case CanalTelefone, CanalEmail, CanalWhatsapp, CanalChat, CanalPresencial:
		return true
	}
	return false
}

func CanalValues() []string {
	return []string{"telefone", "email", "whatsapp", "chat", "presencial"}
}

// Status de um ticket de atendimento.
type StatusTicket string

const (
	TicketAberto            StatusTicket = "aberto"
	TicketEmAndamento       StatusTicket = "em_andamento"
	TicketResolvido         StatusTicket = "resolvido"
	TicketFechado           StatusTicket = "fechado"
	TicketAguardandoCliente StatusTicket = "aguardando_cliente"
)

func (s StatusTicket) Valid() bool {
	switch s {
	case TicketAberto, TicketEmAndamento, TicketResolvido, TicketFechado, TicketAguardandoCliente:
		return true
	}
	return false
}

func StatusTicketValues() []string {
	return []string{"aberto", "em_andamento", "resolvido", "fechado", "aguardando_cliente"}
}

// Conversa é uma entrada da conversa do ticket (JSONB, somente append).
type Conversa struct {
	Data     time.Time `json:"data"`
	Usuario  string    `json:"usuario"`
	Mensagem string    `json:"mensagem"`
}

// Ticket é um chamado de atendimento com SLA calculado na abertura
// (fim do dia da criação, UTC).
type Ticket struct {
	ID           string
	EmpresaID    string
	Empresa      string
	Titulo       string
	Descricao    string
	Prioridade   Prioridade
	Status       StatusTicket
	Responsavel  string
	Canal        Canal
	DataAbertura time.Time
	SLA          time.Time
	Conversas    []Conversa
	Arquivos     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SLADoDia devolve o prazo de atendimento de um ticket aberto em t:
// 23:59:59 do mesmo dia, em UTC.
func SLADoDia(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 0, time.UTC)
}
