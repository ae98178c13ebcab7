package models

// SettingsKey addresses the single settings record
const SettingsKey = "default"

// DefaultCurrency is seeded when no currency is configured
const DefaultCurrency = "USD"

// BankAccount is a payment destination printed on invoices
type BankAccount struct {
	BankName      string `json:"bankName" db:"bank_name"`
	AccountNumber string `json:"accountNumber" db:"account_number"`
	AccountHolder string `json:"accountHolder" db:"account_holder"`
}

// Settings holds company details shown on every invoice.
// There is exactly one record, stored under SettingsKey.
type Settings struct {
	CompanyName  string        `json:"companyName" db:"company_name"`
	Email        string        `json:"email" db:"email" validate:"omitempty,email"`
	Address      string        `json:"address" db:"address"`
	Phone        string        `json:"phone" db:"phone"`
	Website      string        `json:"website" db:"website"`
	Currency     string        `json:"currency" db:"currency" validate:"required"`
	BankAccounts []BankAccount `json:"bankAccounts" db:"-"`
}
