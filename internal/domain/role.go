package domain

// Role роль пользователя из realm_access.roles
type Role string

const (
	RoleCustomer Role = "cliente"
	RoleProvider Role = "prestador"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleProvider || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// PaymentMethod форма оплаты агендамента
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "DINHEIRO"
	PaymentOnline PaymentMethod = "ONLINE"
)

func (p PaymentMethod) IsValid() bool {
	return p == PaymentCash || p == PaymentOnline
}
