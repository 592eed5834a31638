package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// TipoValor identifica o tipo fechado de um valor de configuração.
type TipoValor string

const (
	TipoTexto    TipoValor = "texto"
	TipoNumero   TipoValor = "numero"
	TipoBooleano TipoValor = "booleano"
	TipoLista    TipoValor = "lista"
	TipoMapa     TipoValor = "mapa"
)

// ValorConfig é uma variante fechada: texto, número, booleano, lista ou
// mapa aninhado. Valores fora desse conjunto (null, por exemplo) são
// rejeitados na desserialização.
type ValorConfig struct {
	Tipo     TipoValor
	Texto    string
	Numero   float64
	Booleano bool
	Lista    []ValorConfig
	Mapa     map[string]ValorConfig
}

// Construtores por tipo.
func Texto(s string) ValorConfig    { return ValorConfig{Tipo: TipoTexto, Texto: s} }
func Numero(n float64) ValorConfig  { return ValorConfig{Tipo: TipoNumero, Numero: n} }
func Booleano(b bool) ValorConfig   { return ValorConfig{Tipo: TipoBooleano, Booleano: b} }
func Lista(l ...ValorConfig) ValorConfig {
	return ValorConfig{Tipo: TipoLista, Lista: l}
}
func Mapa(m map[string]ValorConfig) ValorConfig {
	return ValorConfig{Tipo: TipoMapa, Mapa: m}
}

// MarshalJSON serializa o valor plano subjacente.
func (v ValorConfig) MarshalJSON() ([]byte, error) {
	switch v.Tipo {
	case TipoTexto:
		return json.Marshal(v.Texto)
	case TipoNumero:
		return json.Marshal(v.Numero)
	case TipoBooleano:
		return json.Marshal(v.Booleano)
	case TipoLista:
		if v.Lista == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Lista)
	case TipoMapa:
		if v.Mapa == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Mapa)
	}
	return nil, fmt.Errorf("configuracao: tipo de valor desconhecido %q", v.Tipo)
}

// UnmarshalJSON decide o tipo pelo primeiro byte do JSON.
func (v *ValorConfig) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("configuracao: valor vazio")
	}
	switch data[0] {
	case '"':
		v.Tipo = TipoTexto
		return json.Unmarshal(data, &v.Texto)
	case 't', 'f':
		v.Tipo = TipoBooleano
		return json.Unmarshal(data, &v.Booleano)
	case '[':
		v.Tipo = TipoLista
		return json.Unmarshal(data, &v.Lista)
	case '{':
		v.Tipo = TipoMapa
		return json.Unmarshal(data, &v.Mapa)
	case 'n':
		return fmt.Errorf("configuracao: null não é um valor aceito")
	default:
		v.Tipo = TipoNumero
		return json.Unmarshal(data, &v.Numero)
	}
}

// Valores é o mapa tipado chave → variante de uma configuração de setor.
type Valores map[string]ValorConfig

// Configuracao guarda parâmetros abertos por setor, com tipos fechados por valor.
type Configuracao struct {
	ID            string
	Setor         Setor
	Nome          string
	Configuracoes Valores
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
