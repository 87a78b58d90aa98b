package dto

type BankDetails struct {
	AccountName   string `json:"accountName"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	Branch        string `json:"branch"`
}

type SettingsPayload struct {
	SiteName     string      `json:"siteName"`
	ContactEmail string      `json:"contactEmail"`
	ContactPhone string      `json:"contactPhone"`
	Address      string      `json:"address"`
	UPIID        string      `json:"upiId"`
	BankDetails  BankDetails `json:"bankDetails"`
}
