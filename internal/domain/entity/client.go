package entity

import "time"

// Status cadastral de um cliente.
type StatusCliente string

const (
	ClienteAtiva    StatusCliente = "ativa"
	ClienteInativa  StatusCliente = "inativa"
	ClienteSuspensa StatusCliente = "suspensa"
)

func (s StatusCliente) Valid() bool {
	return s == ClienteAtiva || s == ClienteInativa || s == ClienteSuspensa
}

func StatusClienteValues() []string { return []string{"ativa", "inativa", "suspensa"} }

// Forma de envio de documentos ao cliente.
type FormaEnvio string

const (
	EnvioWhatsapp FormaEnvio = "whatsapp"
	EnvioEmail    FormaEnvio = "email"
	EnvioImpresso FormaEnvio = "impresso"
)

func (f FormaEnvio) Valid() bool {
	return f == EnvioWhatsapp || f == EnvioEmail || f == EnvioImpresso
}

func FormaEnvioValues() []string { return []string{"whatsapp", "email", "impresso"} }

// Tipo societário.
type TipoEmpresa string

const (
	EmpresaMatriz TipoEmpresa = "matriz"
	EmpresaFilial TipoEmpresa = "filial"
)

func (t TipoEmpresa) Valid() bool { return t == EmpresaMatriz || t == EmpresaFilial }

func TipoEmpresaValues() []string { return []string{"matriz", "filial"} }

// Regime tributário.
type TipoRegime string

const (
	RegimeSimples        TipoRegime = "simples"
	RegimeLucroPresumido TipoRegime = "lucro_presumido"
	RegimeLucroReal      TipoRegime = "lucro_real"
	RegimeMEI            TipoRegime = "mei"
)

func (t TipoRegime) Valid() bool {
	return t == RegimeSimples || t == RegimeLucroPresumido || t == RegimeLucroReal || t == RegimeMEI
}

func TipoRegimeValues() []string {
	return []string{"simples", "lucro_presumido", "lucro_real", "mei"}
}

// Endereco é embutido no cliente (persistido como JSONB).
type Endereco struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero,omitempty"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Distrito    string `json:"distrito,omitempty"`
	CEP         string `json:"cep"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

// Client representa uma empresa atendida pelo escritório.
// CNPJ é único em toda a base; a cidade determina quais usuários podem
// ler e alterar o registro (salvo admin).
type Client struct {
	ID           string
	NomeEmpresa  string
	NomeFantasia string
	Status       StatusCliente
	Cidade       string
	Telefone     string
	Whatsapp     string
	Email        string
	Responsavel  string
	CNPJ         string
	FormaEnvio   FormaEnvio
	CodigoIOB    string
	NovoCliente  bool
	TipoEmpresa  TipoEmpresa
	Endereco     Endereco
	TipoRegime   TipoRegime
	EmpresaGrupo string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
