package quote

// CompanyTagline appears under the company name on printed documents.
const CompanyTagline = "Soluções em Refrigeração"

// DefaultCompany is the issuing-company profile used when a quote carries no
// snapshot and when no override is configured.
func DefaultCompany() CompanyInfo {
	return CompanyInfo{
		Name:      "Refrigeração Miranda",
		ShortName: "RM",
		Address:   "Av. Principal, 1000 - Centro - CEP: 00000-000",
		Phone:     "(00) 9999-8888",
		Email:     "contato@refrigeracaomiranda.com.br",
		TaxID:     "CNPJ: 12.345.678/0001-99",
	}
}
