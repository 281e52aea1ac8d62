package domain

// ProviderSummary карточка в каталоге prestadores
type ProviderSummary struct {
	ID            ID       `json:"id"`
	TradeName     string   `json:"nomeFantasia"`
	Category      string   `json:"categoria"`
	City          string   `json:"cidade,omitempty"`
	State         string   `json:"uf,omitempty"`
	ServicePrice  *float64 `json:"valorServico,omitempty"`
	AverageRating float64  `json:"mediaAvaliacao"`
	TotalRatings  int      `json:"totalAvaliacoes"`
	DistanceKm    *float64 `json:"distanciaKm,omitempty"`
	TotalServices int      `json:"totalServicos"`
	AvatarURL     string   `json:"avatarUrl,omitempty"`
}

// PortfolioItem работа из портфолио
type PortfolioItem struct {
	ID          ID     `json:"id"`
	Title       string `json:"titulo,omitempty"`
	Description string `json:"descricao,omitempty"`
	ImageURL    string `json:"imagemUrl,omitempty"`
}

// ProviderDetail публичная страница prestador
type ProviderDetail struct {
	ID            ID              `json:"id"`
	TradeName     string          `json:"nomeFantasia"`
	Category      string          `json:"categoria"`
	City          string          `json:"cidade,omitempty"`
	State         string          `json:"uf,omitempty"`
	ServicePrice  *float64        `json:"valorServico,omitempty"`
	AverageRating *float64        `json:"mediaAvaliacao,omitempty"`
	TotalRatings  *int            `json:"totalAvaliacoes,omitempty"`
	AvatarURL     string          `json:"avatarUrl,omitempty"`
	Portfolio     []PortfolioItem `json:"portfolio,omitempty"`
}

// ProviderFilter параметры GET /prestadores
type ProviderFilter struct {
	Page      int      `validate:"min=0"`
	Size      int      `validate:"min=0,max=100"`
	Search    string   `validate:"max=200"`
	Category  string   `validate:"omitempty,uppercase"`
	MinRating *float64 `validate:"omitempty,min=0,max=5"`
	OrderBy   string   `validate:"omitempty,oneof=avaliacao distancia preco nome"`
	Latitude  *float64 `validate:"omitempty,latitude"`
	Longitude *float64 `validate:"omitempty,longitude"`
}

// Categories категории prestadores
var Categories = []string{
	"ELETRICISTA", "ENCANADOR", "PINTOR", "PEDREIRO", "MARCENEIRO",
	"AR_CONDICIONADO", "JARDINAGEM", "LIMPEZA", "DEDETIZACAO", "SERRALHERIA",
	"VIDRACEIRO", "GESSO", "PISO", "REFORMAS_GERAIS", "OUTROS",
}

// ProviderRegistration тело POST /prestadores/vincular
type ProviderRegistration struct {
	TradeName    string   `json:"nomeFantasia" validate:"required,max=120"`
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string   `json:"telefone,omitempty" validate:"omitempty,max=20"`
	CNPJ         string   `json:"cnpj" validate:"required,min=14,max=18"`
	Category     string   `json:"categoria" validate:"required"`
	ServicePrice *float64 `json:"valorServico,omitempty" validate:"omitempty,gte=0"`
	Address      Address  `json:"endereco"`
}

// DashboardMetrics GET /prestadores/me/dashboard
type DashboardMetrics struct {
	JobsThisMonth int     `json:"trabalhosDoMes"`
	GrossIncome   float64 `json:"ganhoBruto"`
	NetIncome     float64 `json:"lucroLiquido"`
	AverageRating float64 `json:"avaliacaoMedia"`
	TotalRatings  int     `json:"totalAvaliacoes"`
}
