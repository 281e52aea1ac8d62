package domain

// CustomerRegistration тело POST /clientes/vincular
type CustomerRegistration struct {
	Name    string  `json:"nome" validate:"required,max=120"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   string  `json:"telefone" validate:"required,max=20"`
	CPF     string  `json:"cpf" validate:"required,min=11,max=14"`
	Address Address `json:"endereco"`
}
