package dto

// CorpCodeFile is the parsed CORPCODE.xml document that DART ships inside
// the corpCode.zip download. Stock codes are blank (a single space) for
// unlisted corporations.
type CorpCodeFile struct {
	List []struct {
		CorpCode   string `xml:"corp_code"`
		CorpName   string `xml:"corp_name"`
		StockCode  string `xml:"stock_code"`
		ModifyDate string `xml:"modify_date"`
	} `xml:"list"`
}

// APIError is the JSON body DART returns instead of the zip payload when the
// corpCode download is rejected (bad key, quota exceeded).
type APIError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
