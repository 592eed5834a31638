package entity

import "time"

// Tipo de sala de chat.
type TipoChat string

const (
	ChatGrupo   TipoChat = "grupo"
	ChatPrivado TipoChat = "privado"
	ChatSuporte TipoChat = "suporte"
)

func (t TipoChat) Valid() bool {
	return t == ChatGrupo || t == ChatPrivado || t == ChatSuporte
}

func TipoChatValues() []string { return []string{"grupo", "privado", "suporte"} }

// Tipo de mensagem.
type TipoMensagem string

const (
	MensagemTexto   TipoMensagem = "text"
	MensagemArquivo TipoMensagem = "file"
	MensagemImagem  TipoMensagem = "image"
	MensagemSistema TipoMensagem = "system"
)

func (t TipoMensagem) Valid() bool {
	switch t {
	case MensagemTexto, MensagemArquivo, MensagemImagem, MensagemSistema:
		return true
	}
	return false
}

func TipoMensagemValues() []string { return []string{"text", "file", "image", "system"} }

// Mensagem é uma entrada do chat (JSONB, somente append).
type Mensagem struct {
	ID          string       `json:"id"`
	UsuarioID   string       `json:"usuario_id"`
	UsuarioNome string       `json:"usuario_nome"`
	Mensagem    string       `json:"mensagem"`
	Timestamp   time.Time    `json:"timestamp"`
	Tipo        TipoMensagem `json:"tipo"`
	ArquivoURL  string       `json:"arquivo_url,omitempty"`
}

// Chat é uma sala interna entre usuários do escritório.
// Quem cria vira AdminID e entra na lista de participantes.
type Chat struct {
	ID            string
	Nome          string
	Descricao     string
	Tipo          TipoChat
	Participantes []string
	AdminID       string
	Mensagens     []Mensagem
	Ativo         bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Participa informa se o usuário está na sala.
func (c *Chat) Participa(userID string) bool {
	for _, p := range c.Participantes {
		if p == userID {
			return true
		}
	}
	return false
}
