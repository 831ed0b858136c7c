package checklist

import (
	"regexp"
	"strings"
)

// DefaultProjectName names the seed project.
const DefaultProjectName = "Checklist Estrutural"

// Seed returns the default structural-design checklist. Every call builds a
// fresh tree.
func Seed() Project {
	sections := []Section{
		seedSection("pre-forma", "Pré-Forma",
			seedCategory("pre-pilares", "Pilares",
				"Dimensão", "Numeração", "Variação de seção", "Nasce/Segue/Morre", "Simetria nos pilares",
				"Interferência na arquitetura",
			),
			seedCategory("pre-vigas", "Vigas",
				"Dimensão", "Numeração", "Encontros", "Padronização de alturas",
			),
			seedCategory("pre-lajes", "Lajes",
				"Altura", "Numeração", "Rebaixos", "Maciça/Nervurada",
			),
			seedCategory("pre-reservatorios", "Reservatórios",
				"Altura das lajes - tampa e fundo", "Alçapões", "Mísulas", "Capacidade e lamina d’água",
				"Altura das paredes", "Níveis",
			),
			seedCategory("pre-pendencias", "Pendências",
				"Vigas dos elevadores", "Furação com markup", "Dúvidas de compatibilização", "Balancim",
				"Nível água reservatórios",
			),
			seedCategory("pre-checagem", "Checagem",
				"Arquitetura", "Paisagismo", "Cortes ARQ/PAI", "Relatórios/Atas/Bimcollab/E-mails",
			),
			seedCategory("pre-diversos", "Diversos",
				"Eixos", "Cortes localizados", "Cortes completos", "Legenda das hachuras", "Platibanda",
				"Balancim (Repetido)", "Carga de varanda", "Empenas",
			),
			seedCategory("pre-subsolos", "Subsolos/Térreos",
				"Desnível de periferia", "Vazios de ventilação", "Detalhe laje nervurada",
				"Junta de dilatação", "Mureta de estacionamento ou virada concreto",
			),
			seedCategory("pre-observacoes", "Observações",
				"Vigas dos pavimentos", "Concretos", "Cargas", "Jardim", "Sistema de escoramento",
				"Tipo de alvenaria",
			),
			seedCategory("pre-esquema-alturas", "Esquema de Alturas",
				"P.D.", "Níveis", "Nome dos pavimentos", "Concretos (Repetido)",
			),
			seedCategory("pre-detalhes", "Detalhes",
				"Emplacamento", "Variação de concreto",
			),
			seedCategory("pre-atp", "ATP",
				"Verificar ATP do estudo", "Verificar ATP externo",
			),
		),
		seedSection("furacao", "Furação",
			seedCategory("furos", "Furos",
				"Dimensão", "H", "Cotas", "Detalhes ampliados", "Detalhe de diretriz",
				"Checagem da viabilidade da furação",
			),
			seedCategory("diversos-furacao", "Diversos",
				"Medidas inteiras", "Sem cotas sobrepostas", "Sem cotas editadas", "Modelo",
			),
		),
		seedSection("fundacao-contencao", "Fundação e Contenção",
			seedCategory("fund-pilares", "Pilares",
				"Dimensão", "Numeração", "Detalhe", "Blocos/Sapatas", "Estacas/Tubulão/Perfil", "Fretagem",
				"Alturas", "Folga", "Cotas nos detalhes", "Numeração dos detalhes",
			),
			seedCategory("fund-elevador", "Elevador",
				"Altura do poço", "Altura das vigas de contorno",
			),
			seedCategory("fund-cortes", "Cortes",
				"Vigas", "Pilares", "Altura do poço", "Sapatas representadas abaixo", "Blocos e estacas",
				"Escada",
			),
			seedCategory("fund-vigas-baldrames", "Vigas Baldrames",
				"Numeração", "Dimensão", "Caixilho",
			),
			seedCategory("fund-vigas-alavancas", "Vigas Alavancas",
				"Posição da estaca", "Cotas", "PS (sapata)",
			),
			seedCategory("fund-tabela-niveis", "Tabela de Níveis",
				"Pilares", "Nível de arrasamento", "Face Superior Máxima", "Altura blocos/sapatas",
				"Chegagem arquitetura", "Chegagem paisagismo",
			),
			seedCategory("fund-vigas-travamento", "Vigas de Travamento",
				"Sapatas", "Pilares de elevadores",
			),
			seedCategory("fund-detalhes", "Detalhes",
				"Seção genérica de blocos", "Detalhe genérico das sapatas", "Detalhe de ligação perfil bloco",
			),
			seedCategory("fund-contencao", "Contenção",
				"Tipo de contenção verificado", "Representação/numeração dos perfis",
				"Representação das estacas", "Representação das paredes de diafragma", "VTRs",
				"Vigas de coroamento",
			),
			seedCategory("fund-vistas", "Vistas",
				"Vistas Gerais",
			),
			seedCategory("fund-arrasamento", "Arrasamento",
				"Arquitetura", "Paisagismo", "Projeto de Contenção", "Planialtimétrico",
			),
		),
		seedSection("locacao", "Locação",
			seedCategory("loc-pilares", "Pilares",
				"Dimensão", "Numeração", "Detalhe", "CG", "Pontos de carga", "Pilares na contenção",
			),
			seedCategory("loc-terreno", "Terreno",
				"Perímetro", "Divisa", "Amarração", "Ponto de referência", "RN", "Diagrama de empuxo",
				"Contenção tracejada",
			),
			seedCategory("loc-pendencias", "Pendências",
				"Confirmar amarração e RN", "Divisas", "Limite de terreno",
			),
			seedCategory("loc-diversos", "Diversos",
				"Eixos", "Caixa de elevador tracejada", "Cotas", "Cotas acumuladas", "Cota 90º",
				"Detalhe de cotas", "Quadro de cargas", "Implantação geral", "Planta chave", "Carga de muro",
				"Observações", "Folha", "Representação de reservatórios",
			),
		),
		seedSection("escada", "Escada",
			seedCategory("esc-diversos", "Diversos",
				"Convencional/Pré", "Esquema de alturas", "Observações", "Folha", "Bocel e detalhe",
				"Pé direito", "Checar Blondel", "Pendências",
			),
			seedCategory("esc-plantas", "Plantas",
				"Cotas", "Degraus enumerados", "Representação do pavimento",
			),
			seedCategory("esc-cortes", "Cortes",
				"Esquema de alturas", "Degraus enumerados", "Espessura das lajes",
				"Representação da estrutura", "Alturas de espelhos differentes", "Cotas",
				"Indicação de revestimento",
			),
			seedCategory("esc-arquitetura", "Arquitetura",
				"Saída do lance", "Chegada do lance", "Número de degraus", "Revestimento do pavimento",
				"Revestimento piso/espelho",
			),
		),
		seedSection("rampa", "Rampa",
			seedCategory("rampa-diversos", "Diversos",
				"Saída", "Chegada", "Inclinação", "Adoçamento", "Revestimento", "Grelha",
				"Vigas de apoio e VRs", "Enchimento", "Grelha (Repetido)",
			),
		),
		seedSection("desenvolvimento-da-forma", "Desenvolvimento da Forma",
			seedCategory("dev-diversos-1", "Diversos (Coluna 1)",
				"Cotas", "Cotas acumuladas", "Cotas de nervuras", "Cotas furos", "Ver na obra",
				"Detalhes de vigas", "Detalhes de blocos de transição", "Detalhes de pilares",
				"Detalhe diretriz de furação", "Checar quadro de quantitativo", "Checar vigas das rampas",
				"Encontros de vigas", "Retirar \"m\" dos níveis",
			),
			seedCategory("dev-diversos-2", "Diversos (Coluna 2)",
				"Cortes completos", "Cortes localizados", "Cotas dos cortes localizados",
				"Variação de pilares", "Compatibilização da escada (apoios)", "Representação da escada",
				"Checar pendências", "Checar detalhes específicos", "Checar detalhes de fundação",
				"Checar nas observações nº vigas", "Checar observações", "Checar hachuras e tabela",
				"Planta chave", "Junta de dilatação",
			),
		),
		seedSection("acertos-de-formas", "Acertos de Formas",
			seedCategory("comentarios-atendidos", "Comentários Atendidos",
				"Arquitetura", "Paisagismo", "Relatório/Ata", "E-mails", "Bimcollab, construflow...",
			),
			seedCategory("desenho-desenvolvimento", "Desenho e Desenvolvimento",
				"Modelo ajustado", "Cotas ajustadas", "Cortes ajustados",
			),
		),
	}
	return Project{
		Sections:        sections,
		ActiveSectionID: sections[0].ID,
		ProjectName:     DefaultProjectName,
	}
}

func seedSection(id, title string, categories ...Category) Section {
	return Section{ID: id, Title: title, Categories: categories}
}

func seedCategory(id, title string, labels ...string) Category {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{ID: labelSlug(label), Label: label, Status: StatusPending}
	}
	return Category{ID: id, Title: title, Items: items}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func labelSlug(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(label), "-")
}
