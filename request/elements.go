package request

// directElements lists the caller-supplied keys accepted for the
// server-to-server integration, where card data is submitted directly.
var directElements = []string{
	"Amount",
	"CardHolderName",
	"CardNumber",
	"BillingId",
	"Cvc2",
	"DateExpiry",
	"DpsBillingId",
	"DpsTxnRef",
	"EnableAddBillCard",
	"InputCurrency",
	"MerchantReference",
	"Opt",
	"PostUsername",
	"PostPassword",
	"TxnType",
	"TxnData1",
	"TxnData2",
	"TxnData3",
	"TxnId",
	"EnableAvsData",
	"AvsAction",
	"AvsPostCode",
	"AvsStreetAddress",
	"DateStart",
	"IssueNumber",
	"Track2",
}

// hostedElements lists the caller-supplied keys accepted for the hosted
// (redirect) integration. Card entry happens on the gateway's page, so no
// card data is accepted here.
var hostedElements = []string{
	"PxPayUserId",
	"PxPayKey",
	"AmountInput",
	"CurrencyInput",
	"EmailAddress",
	"EnableAddBillCard",
	"MerchantReference",
	"TxnData1",
	"TxnData2",
	"TxnData3",
	"TxnType",
	"TxnId",
	"UrlFail",
	"UrlSuccess",
}

var (
	directAllowed = allowSet(directElements)
	hostedAllowed = allowSet(hostedElements)
)

func allowSet(elements []string) map[string]bool {
	set := make(map[string]bool, len(elements))
	for _, e := range elements {
		set[e] = true
	}
	return set
}
