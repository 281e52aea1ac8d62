package domain

// AdminOverview GET /admin/visao-geral
type AdminOverview struct {
	TotalCustomers          int            `json:"totalClientes"`
	TotalProviders          int            `json:"totalPrestadores"`
	ProvidersWithActivePlan int            `json:"prestadoresComAssinaturaAtiva"`
	BookingsByStatus        map[Status]int `json:"agendamentosPorStatus"`
	GMV                     float64        `json:"gmv"`
	PlatformRevenue         float64        `json:"receitaPlataforma"`
	PendingPayments         int            `json:"pagamentosPendentes"`
	ConfirmedPayments       int            `json:"pagamentosConfirmados"`
}

// AdminProvider строка таблицы prestadores
type AdminProvider struct {
	ID                 ID        `json:"id"`
	TradeName          string    `json:"nomeFantasia"`
	Email              string    `json:"email,omitempty"`
	SubscriptionStatus string    `json:"statusAssinatura,omitempty"`
	SubscriptionEndsAt *DateTime `json:"dataFimAssinatura,omitempty"`
	AvailableBalance   float64   `json:"saldoDisponivel"`
}

// AdminPayment строка таблицы pagamentos
type AdminPayment struct {
	ID          ID        `json:"id"`
	BookingID   ID        `json:"agendamentoId"`
	Status      string    `json:"status"`
	BillingID   string    `json:"billingId,omitempty"`
	CreatedAt   *DateTime `json:"criadoEm,omitempty"`
	ConfirmedAt *DateTime `json:"confirmadoEm,omitempty"`
}

// AdminWithdrawal строка таблицы saques
type AdminWithdrawal struct {
	ID              ID        `json:"id"`
	ProviderID      ID        `json:"prestadorId"`
	ProviderName    string    `json:"prestadorNome,omitempty"`
	RequestedAmount float64   `json:"valorSolicitado"`
	NetAmount       float64   `json:"valorLiquido"`
	Status          string    `json:"status"`
	RequestedAt     *DateTime `json:"solicitadoEm,omitempty"`
	CompletedAt     *DateTime `json:"concluidoEm,omitempty"`
}
