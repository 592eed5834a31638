package entity

import "time"

// Status de uma tarefa.
type StatusTask string

const (
	TaskPendente    StatusTask = "pendente"
	TaskEmAndamento StatusTask = "em_andamento"
	TaskConcluida   StatusTask = "concluida"
	TaskCancelada   StatusTask = "cancelada"
)

func (s StatusTask) Valid() bool {
	switch s {
	case TaskPendente, TaskEmAndamento, TaskConcluida, TaskCancelada:
		return true
	}
	return false
}

func StatusTaskValues() []string {
	return []string{"pendente", "em_andamento", "concluida", "cancelada"}
}

// TaskComment é um comentário de tarefa (JSONB, somente append).
type TaskComment struct {
	ID          string    `json:"id"`
	UsuarioID   string    `json:"usuario_id"`
	UsuarioNome string    `json:"usuario_nome"`
	Comentario  string    `json:"comentario"`
	Timestamp   time.Time `json:"timestamp"`
}

// Task é uma tarefa interna, visível ao criador, ao responsável e a admins.
// Concluir a tarefa força progresso 100 e carimba DataConclusao.
type Task struct {
	ID              string
	Titulo          string
	Descricao       string
	Status          StatusTask
	Prioridade      Prioridade
	Categoria       Setor
	ResponsavelID   string
	ResponsavelNome string
	CriadorID       string
	CriadorNome     string
	DataCriacao     time.Time
	DataPrazo       *time.Time
	DataConclusao   *time.Time
	Progresso       int // 0..100
	Comentarios     []TaskComment
	Tags            []string
	Arquivos        []string
	UpdatedAt       time.Time
}
