// Package dto defines data transfer objects for DART API responses.
package dto

// AlotMatterResponse is the JSON response of the alotMatter (dividend
// disclosure) endpoint. Status "000" is success; "013" means the company
// filed nothing for that business year.
type AlotMatterResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	List    []struct {
		ReceiptNo   string `json:"rcept_no"`
		CorpClass   string `json:"corp_cls"`
		CorpCode    string `json:"corp_code"`
		CorpName    string `json:"corp_name"`
		Item        string `json:"se"`
		StockKind   string `json:"stock_knd"`
		CurrentTerm string `json:"thstrm"`
		PriorTerm   string `json:"frmtrm"`
		TwoPrior    string `json:"lwfr"`
	} `json:"list"`
}
