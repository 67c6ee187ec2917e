package model

import "github.com/shopspring/decimal"

// AgingReport is a single customer row of the receivables aging snapshot.
// Buckets are fixed 30-day ranges since due date, read as-is from DWH.
type AgingReport struct {
	CustomerCode   string          `json:"customerCode"`
	CustomerName   string          `json:"customerName"`
	Manager        string          `json:"manager"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Days0To30      decimal.Decimal `json:"days0To30"`
	Days31To60     decimal.Decimal `json:"days31To60"`
	Days61To90     decimal.Decimal `json:"days61To90"`
	Days91To120    decimal.Decimal `json:"days91To120"`
	Days121To150   decimal.Decimal `json:"days121To150"`
	Days151To180   decimal.Decimal `json:"days151To180"`
	Days181To210   decimal.Decimal `json:"days181To210"`
	Days211To240   decimal.Decimal `json:"days211To240"`
	Days241To270   decimal.Decimal `json:"days241To270"`
	Days271To300   decimal.Decimal `json:"days271To300"`
	Days301To330   decimal.Decimal `json:"days301To330"`
	Days331To360   decimal.Decimal `json:"days331To360"`
	Days360Plus    decimal.Decimal `json:"days360Plus"`
}
