/*
firstpayment.go - First quarterly payment date

PURPOSE:
  The first quarterly payment lands 3 calendar months plus 5 days after
  the agreement start date, displayed as month and year ("December
  2025"). An absent or unparseable start date yields "".
*/
package render

// FirstPaymentDate derives the first quarterly payment date display
// string from the agreement start date.
func FirstPaymentDate(agreementStartDate string) string {
	start, ok := ParseAgreementDate(agreementStartDate)
	if !ok {
		return ""
	}
	return start.AddDate(0, 3, 5).Format(MonthYearFormat)
}
