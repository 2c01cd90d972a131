/*
defaults.go - Seeded narrative-code rule set

PURPOSE:
  The built-in Equifax narrative-code catalogue (237 entries) with default
  settlement-eligibility flags. A code is included when it describes
  unsecured consumer debt a settlement program can negotiate (credit cards,
  personal loans, medical, collections, charge-offs). Secured debt,
  mortgages, student loans, and anything bankruptcy-related is excluded.

LIFECYCLE:
  Repositories return this list when no snapshot has been saved yet
  (seed-on-first-load). Administrators then toggle flags and save full
  snapshots; the defaults are never consulted again once a snapshot exists.
*/
package rules

import "github.com/momentum/estimator-engine/estimator"

// DefaultRuleSet returns a fresh copy of the seeded catalogue. Callers may
// mutate the returned slice freely.
func DefaultRuleSet() []estimator.NarrativeCodeRule {
	out := make([]estimator.NarrativeCodeRule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

var defaultRules = []estimator.NarrativeCodeRule{
	{Code: "AA", Description: "Consumer says merchandise or service unsatisfactory", IncludeInSettlement: false},
	{Code: "AB", Description: "Consumer says account paid/being paid by insurance", IncludeInSettlement: false},
	{Code: "AC", Description: "Consumer says acct is responsibility of separated or divorced spouse", IncludeInSettlement: false},
	{Code: "AE", Description: "Consumer says acct. Involved in business venture held personally liab", IncludeInSettlement: true},
	{Code: "AF", Description: "Consumer says account involves lease agreement dispute", IncludeInSettlement: false},
	{Code: "AG", Description: "Consumer disputes account - litigation pending", IncludeInSettlement: false},
	{Code: "AH", Description: "Consumer says account slow due to billing dispute with creditor", IncludeInSettlement: true},
	{Code: "AI", Description: "Consumer says account slow due to employment issues", IncludeInSettlement: true},
	{Code: "AJ", Description: "Consumer says account slow due to medical expenses/illness", IncludeInSettlement: true},
	{Code: "AL", Description: "Consumer says warranty dispute", IncludeInSettlement: false},
	{Code: "AM", Description: "Voluntary surrender; there may be a balance due", IncludeInSettlement: true},
	{Code: "AN", Description: "Involuntary repossession", IncludeInSettlement: true},
	{Code: "AO", Description: "Auto", IncludeInSettlement: false},
	{Code: "AP", Description: "Commercial account", IncludeInSettlement: false},
	{Code: "AQ", Description: "Household goods", IncludeInSettlement: false},
	{Code: "AR", Description: "Home loan", IncludeInSettlement: false},
	{Code: "AS", Description: "Home improvement loan", IncludeInSettlement: false},
	{Code: "AT", Description: "Checking account loan plan", IncludeInSettlement: false},
	{Code: "AU", Description: "Personal loan", IncludeInSettlement: true},
	{Code: "AV", Description: "Charge", IncludeInSettlement: true},
	{Code: "AW", Description: "Secured by household goods", IncludeInSettlement: false},
	{Code: "AX", Description: "Paid by dealer", IncludeInSettlement: false},
	{Code: "AY", Description: "Voluntarily surrendered \u2013 then redeemed or reinstated", IncludeInSettlement: false},
	{Code: "AZ", Description: "Amount in h/c column is credit limit", IncludeInSettlement: false},
	{Code: "BB", Description: "Consumer disputes this account information", IncludeInSettlement: false},
	{Code: "BC", Description: "Account transferred or sold", IncludeInSettlement: true},
	{Code: "BD", Description: "Paid - credit line closed", IncludeInSettlement: false},
	{Code: "BE", Description: "Credit line closed", IncludeInSettlement: true},
	{Code: "BG", Description: "Claim filed with government", IncludeInSettlement: false},
	{Code: "BH", Description: "Dispute - resolution pending", IncludeInSettlement: true},
	{Code: "BK", Description: "Redeemed or reinstated repossession", IncludeInSettlement: false},
	{Code: "BL", Description: "Consumer says account slow due to domestic problems", IncludeInSettlement: true},
	{Code: "BM", Description: "Consumer says paid on notification - no prior knowledge of balance due", IncludeInSettlement: false},
	{Code: "BN", Description: "Consumer says co-signed account - not aware of delinquency", IncludeInSettlement: false},
	{Code: "BO", Description: "Consumer says no statement received due to address change", IncludeInSettlement: false},
	{Code: "BP", Description: "Consumer says this account spouse\u2019s responsibility", IncludeInSettlement: false},
	{Code: "BQ", Description: "Paid charge off", IncludeInSettlement: false},
	{Code: "BR", Description: "Foreclosure process started", IncludeInSettlement: false},
	{Code: "BS", Description: "Paid or being paid by government guarantor", IncludeInSettlement: false},
	{Code: "BT", Description: "Lease", IncludeInSettlement: false},
	{Code: "BU", Description: "Student loan", IncludeInSettlement: false},
	{Code: "BV", Description: "Consumer dispute following resolution", IncludeInSettlement: false},
	{Code: "BW", Description: "Included in bankruptcy", IncludeInSettlement: false},
	{Code: "BX", Description: "Payments managed by financial counseling program", IncludeInSettlement: true},
	{Code: "BY", Description: "Collection agency account - status unknown", IncludeInSettlement: true},
	{Code: "BZ", Description: "Account paid for less than full balance", IncludeInSettlement: false},
	{Code: "CA", Description: "Charge off - making payments", IncludeInSettlement: true},
	{Code: "CB", Description: "Charged off - check presented was uncollectible", IncludeInSettlement: true},
	{Code: "CD", Description: "Customer has now located consumer", IncludeInSettlement: false},
	{Code: "CE", Description: "Refinanced", IncludeInSettlement: false},
	{Code: "CF", Description: "Closed account", IncludeInSettlement: false},
	{Code: "CG", Description: "Account closed - reason unknown", IncludeInSettlement: false},
	{Code: "CH", Description: "Account paid after foreclosure started", IncludeInSettlement: false},
	{Code: "CI", Description: "Insurance claim pending", IncludeInSettlement: false},
	{Code: "CJ", Description: "Customer unable to locate consumer", IncludeInSettlement: false},
	{Code: "CK", Description: "Debit card", IncludeInSettlement: false},
	{Code: "CL", Description: "Paid or being paid by co-signer or guarantor", IncludeInSettlement: false},
	{Code: "CM", Description: "Account assumed by another party", IncludeInSettlement: false},
	{Code: "CN", Description: "Paying under a partial payment agreement", IncludeInSettlement: true},
	{Code: "CP", Description: "Consumer says personal bankruptcy filed due to business failure", IncludeInSettlement: false},
	{Code: "CQ", Description: "Pltff verified judgment paid/satisfaction not recorded with court", IncludeInSettlement: false},
	{Code: "CS", Description: "Secured credit line", IncludeInSettlement: false},
	{Code: "CT", Description: "Voluntary", IncludeInSettlement: false},
	{Code: "CU", Description: "Involuntary", IncludeInSettlement: false},
	{Code: "CV", Description: "Line of credit", IncludeInSettlement: true},
	{Code: "CW", Description: "Account closed by credit grantor", IncludeInSettlement: true},
	{Code: "CX", Description: "Payment is payroll deductible", IncludeInSettlement: false},
	{Code: "CY", Description: "Account charged to profit and loss", IncludeInSettlement: true},
	{Code: "CZ", Description: "Collection account", IncludeInSettlement: true},
	{Code: "DA", Description: "Account closed by consumer", IncludeInSettlement: true},
	{Code: "DB", Description: "Charged off account", IncludeInSettlement: true},
	{Code: "DC", Description: "Consumer says account not paid promptly - insurance claim delayed", IncludeInSettlement: false},
	{Code: "DD", Description: "Balance is deficiency amount", IncludeInSettlement: true},
	{Code: "DE", Description: "Consumer says account paid in full", IncludeInSettlement: false},
	{Code: "DG", Description: "Title 1 loan", IncludeInSettlement: false},
	{Code: "DH", Description: "Balance not paid by insurance", IncludeInSettlement: false},
	{Code: "DI", Description: "Balance paid or being paid by insurance company", IncludeInSettlement: false},
	{Code: "DJ", Description: "Foreclosure", IncludeInSettlement: false},
	{Code: "DK", Description: "Paid or being paid by garnishment", IncludeInSettlement: false},
	{Code: "DL", Description: "Consumer recalled to active military duty", IncludeInSettlement: false},
	{Code: "DM", Description: "Forfeit of deed in lieu of foreclosure", IncludeInSettlement: false},
	{Code: "DN", Description: "Broken lease agreement", IncludeInSettlement: false},
	{Code: "DO", Description: "Bankruptcy chapter 13", IncludeInSettlement: false},
	{Code: "DP", Description: "Conversion loss paid by insurance", IncludeInSettlement: false},
	{Code: "DQ", Description: "Student loan - payment deferred", IncludeInSettlement: false},
	{Code: "DS", Description: "Single payment loan", IncludeInSettlement: true},
	{Code: "DT", Description: "Amortized mortgage", IncludeInSettlement: false},
	{Code: "DU", Description: "Sheriff sale", IncludeInSettlement: false},
	{Code: "DV", Description: "Amount in high credit includes finance charge", IncludeInSettlement: true},
	{Code: "DW", Description: "Return mail", IncludeInSettlement: false},
	{Code: "DX", Description: "Balance owing - amount not reported", IncludeInSettlement: false},
	{Code: "EA", Description: "Paid or making payments - not according to terms of agreement", IncludeInSettlement: true},
	{Code: "EB", Description: "Lease - early termination by default", IncludeInSettlement: false},
	{Code: "EC", Description: "Home equity", IncludeInSettlement: false},
	{Code: "ED", Description: "Making payment - foreclosure was initiated", IncludeInSettlement: false},
	{Code: "EE", Description: "Secured", IncludeInSettlement: false},
	{Code: "EF", Description: "Real estate mortgage", IncludeInSettlement: false},
	{Code: "EG", Description: "Guaranteed student loan", IncludeInSettlement: false},
	{Code: "EH", Description: "National direct student loan", IncludeInSettlement: false},
	{Code: "EI", Description: "Consumer disputes account - litigation filed by creditor pending", IncludeInSettlement: false},
	{Code: "EJ", Description: "Consumer disputes account - litigation filed by consumer pending", IncludeInSettlement: false},
	{Code: "EK", Description: "Child/family support obligation", IncludeInSettlement: false},
	{Code: "EL", Description: "Defendant verified item pd/satisfaction not recorded with court", IncludeInSettlement: false},
	{Code: "EM", Description: "Voluntary return of purchase", IncludeInSettlement: false},
	{Code: "EN", Description: "Account included in wep filed by another person", IncludeInSettlement: false},
	{Code: "EO", Description: "Account included in bankruptcy of another person", IncludeInSettlement: false},
	{Code: "EP", Description: "Fixed rate", IncludeInSettlement: false},
	{Code: "EQ", Description: "Variable/adjustable rate", IncludeInSettlement: false},
	{Code: "ER", Description: "Paid collection", IncludeInSettlement: false},
	{Code: "ES", Description: "Charged back to dealer", IncludeInSettlement: false},
	{Code: "ET", Description: "Paid repossession", IncludeInSettlement: false},
	{Code: "EU", Description: "See consumer statement", IncludeInSettlement: false},
	{Code: "EV", Description: "Bankruptcy chapter 11", IncludeInSettlement: false},
	{Code: "EX", Description: "Unsecured", IncludeInSettlement: true},
	{Code: "EY", Description: "Business account -personal guarantee", IncludeInSettlement: true},
	{Code: "EZ", Description: "Has co-signer", IncludeInSettlement: false},
	{Code: "FA", Description: "Closed or paid account/zero balance", IncludeInSettlement: false},
	{Code: "FB", Description: "Included in orderly payment debt", IncludeInSettlement: false},
	{Code: "FC", Description: "Credit line suspended", IncludeInSettlement: false},
	{Code: "FD", Description: "Defaulted student loan", IncludeInSettlement: false},
	{Code: "FE", Description: "Credit card", IncludeInSettlement: true},
	{Code: "FF", Description: "Consumer says account not his/hers", IncludeInSettlement: false},
	{Code: "FG", Description: "Consumer says account never late", IncludeInSettlement: false},
	{Code: "FH", Description: "Consumer says this public record not his/hers", IncludeInSettlement: false},
	{Code: "FL", Description: "Consumer says this public record filed in error", IncludeInSettlement: false},
	{Code: "FM", Description: "Consumer says this public record item satisfied or released", IncludeInSettlement: false},
	{Code: "FO", Description: "Consumer says bankruptcy discharged", IncludeInSettlement: false},
	{Code: "FP", Description: "Consumer says bankruptcy dismissed", IncludeInSettlement: false},
	{Code: "FQ", Description: "Consumer says current rate/status incorrect", IncludeInSettlement: false},
	{Code: "FR", Description: "Making payments", IncludeInSettlement: true},
	{Code: "FS", Description: "Annual payment", IncludeInSettlement: false},
	{Code: "FT", Description: "Not included in bankruptcy", IncludeInSettlement: true},
	{Code: "FU", Description: "Charged off checking account", IncludeInSettlement: false},
	{Code: "FV", Description: "Pltff verified lien pd/release not recorded with court", IncludeInSettlement: false},
	{Code: "FW", Description: "Consumer disputes \u2013 reinvestigation in progress", IncludeInSettlement: false},
	{Code: "FX", Description: "Account listed as public record", IncludeInSettlement: false},
	{Code: "FZ", Description: "Account reinstated with lender", IncludeInSettlement: false},
	{Code: "GA", Description: "Paid by collateral", IncludeInSettlement: false},
	{Code: "GB", Description: "Account being paid through wep", IncludeInSettlement: false},
	{Code: "GC", Description: "Account being paid through financial counseling plan", IncludeInSettlement: true},
	{Code: "GD", Description: "Account paid through financial counseling plan", IncludeInSettlement: true},
	{Code: "GE", Description: "Consumer disputes this item", IncludeInSettlement: false},
	{Code: "GF", Description: "Reaffirmation of debt", IncludeInSettlement: false},
	{Code: "GH", Description: "Plaintiff/counsel verified judgement paid", IncludeInSettlement: false},
	{Code: "GI", Description: "Utility", IncludeInSettlement: false},
	{Code: "GJ", Description: "Student loan assigned to government", IncludeInSettlement: false},
	{Code: "GK", Description: "Affected by natural disaster", IncludeInSettlement: false},
	{Code: "GL", Description: "First payment never received", IncludeInSettlement: false},
	{Code: "GM", Description: "Account acquired by fdic/ncua", IncludeInSettlement: false},
	{Code: "GN", Description: "Government debt", IncludeInSettlement: false},
	{Code: "GO", Description: "Debt consolidation", IncludeInSettlement: true},
	{Code: "GP", Description: "Manufactured housing", IncludeInSettlement: false},
	{Code: "GQ", Description: "Recreational merchandise", IncludeInSettlement: false},
	{Code: "GR", Description: "Secured credit card", IncludeInSettlement: false},
	{Code: "GS", Description: "Medical", IncludeInSettlement: true},
	{Code: "HF", Description: "Account closed by consumer", IncludeInSettlement: false},
	{Code: "HL", Description: "100% payment to creditors filing claims", IncludeInSettlement: false},
	{Code: "HM", Description: "Account included in bankruptcy of primary borrower", IncludeInSettlement: false},
	{Code: "HN", Description: "Account included in bankruptcy of secondary borrower", IncludeInSettlement: false},
	{Code: "HO", Description: "Returned check", IncludeInSettlement: false},
	{Code: "HP", Description: "Fha mortgage", IncludeInSettlement: false},
	{Code: "HQ", Description: "Va mortgage", IncludeInSettlement: false},
	{Code: "HR", Description: "Conventional mortgage", IncludeInSettlement: false},
	{Code: "HS", Description: "Second mortgage", IncludeInSettlement: false},
	{Code: "HT", Description: "Agricultural", IncludeInSettlement: false},
	{Code: "HU", Description: "Commercial mortgage-individual liable, company is guarantor", IncludeInSettlement: false},
	{Code: "HV", Description: "Deposit related", IncludeInSettlement: false},
	{Code: "HW", Description: "Child/family support", IncludeInSettlement: false},
	{Code: "HX", Description: "Transferred to recovery", IncludeInSettlement: true},
	{Code: "IA", Description: "Consumer voluntarily withdrew from bankruptcy", IncludeInSettlement: true},
	{Code: "IB", Description: "Lease - full termination", IncludeInSettlement: false},
	{Code: "IC", Description: "Lease - early termination", IncludeInSettlement: false},
	{Code: "ID", Description: "Status pending", IncludeInSettlement: false},
	{Code: "IE", Description: "Fannie mae account", IncludeInSettlement: false},
	{Code: "IF", Description: "Freddie mac account", IncludeInSettlement: false},
	{Code: "IG", Description: "Prepaid lease", IncludeInSettlement: false},
	{Code: "IH", Description: "Consumer pays balance in full each month", IncludeInSettlement: true},
	{Code: "II", Description: "Principal deferred/interest payment only", IncludeInSettlement: false},
	{Code: "IJ", Description: "Payment deferred", IncludeInSettlement: false},
	{Code: "IK", Description: "Bankruptcy voluntarily withdrawn", IncludeInSettlement: false},
	{Code: "IL", Description: "Bankruptcy chapter 7", IncludeInSettlement: false},
	{Code: "IM", Description: "Bankruptcy chapter 12", IncludeInSettlement: false},
	{Code: "IN", Description: "Reaffirmation of debt rescinded", IncludeInSettlement: false},
	{Code: "IP", Description: "Consumer disputes this account information", IncludeInSettlement: false},
	{Code: "IQ", Description: "Consumer disputes after resolution", IncludeInSettlement: false},
	{Code: "IR", Description: "Account closed at consumer\u2019s request", IncludeInSettlement: false},
	{Code: "IT", Description: "Account acquired from another lender", IncludeInSettlement: false},
	{Code: "IZ", Description: "Amount in high credit is original charge-off amount", IncludeInSettlement: false},
	{Code: "JA", Description: "Election of remedy", IncludeInSettlement: false},
	{Code: "JD", Description: "Consumer deceased", IncludeInSettlement: false},
	{Code: "JE", Description: "Adjustment pending", IncludeInSettlement: false},
	{Code: "JF", Description: "Inactive account", IncludeInSettlement: false},
	{Code: "JG", Description: "Dollar amount in excess of $1 billion", IncludeInSettlement: false},
	{Code: "JH", Description: "Personal receivership \u2013 repayment managed by court trustee", IncludeInSettlement: false},
	{Code: "JI", Description: "Guaranteed/insured", IncludeInSettlement: false},
	{Code: "JJ", Description: "Time share loan", IncludeInSettlement: false},
	{Code: "JK", Description: "120 days past due", IncludeInSettlement: true},
	{Code: "JL", Description: "150 days past due", IncludeInSettlement: true},
	{Code: "JM", Description: "180 days or more past due", IncludeInSettlement: true},
	{Code: "JN", Description: "Partially secured", IncludeInSettlement: false},
	{Code: "JO", Description: "Note loan", IncludeInSettlement: false},
	{Code: "JP", Description: "Rental agreement", IncludeInSettlement: false},
	{Code: "JQ", Description: "Auto lease", IncludeInSettlement: false},
	{Code: "JR", Description: "Telecommunications/cellular", IncludeInSettlement: true},
	{Code: "JS", Description: "Unsecured government loan", IncludeInSettlement: false},
	{Code: "JT", Description: "Secured government loan", IncludeInSettlement: false},
	{Code: "JU", Description: "Home equity line of credit", IncludeInSettlement: false},
	{Code: "JV", Description: "Attorney fees", IncludeInSettlement: false},
	{Code: "JW", Description: "Construction loan", IncludeInSettlement: false},
	{Code: "JX", Description: "Flexible spending credit card", IncludeInSettlement: true},
	{Code: "JY", Description: "Combined credit plan", IncludeInSettlement: false},
	{Code: "JZ", Description: "Debt buyer account", IncludeInSettlement: true},
	{Code: "KA", Description: "Installment sales contract", IncludeInSettlement: false},
	{Code: "KB", Description: "Bankruptcy petition", IncludeInSettlement: false},
	{Code: "KC", Description: "Bankruptcy discharged", IncludeInSettlement: false},
	{Code: "KD", Description: "Bankruptcy completed", IncludeInSettlement: false},
	{Code: "KE", Description: "Lease assumption", IncludeInSettlement: false},
	{Code: "KF", Description: "Account previously in dispute \u2013 now resolved by data furnisher", IncludeInSettlement: false},
	{Code: "KG", Description: "Chapter 7 bankruptcy dismissed", IncludeInSettlement: true},
	{Code: "KH", Description: "Chapter 11 bankruptcy dismissed", IncludeInSettlement: false},
	{Code: "KI", Description: "Chapter 12 bankruptcy dismissed", IncludeInSettlement: false},
	{Code: "KJ", Description: "Chapter 13 bankruptcy dismissed", IncludeInSettlement: true},
	{Code: "KK", Description: "Chapter 7 bankruptcy withdrawn", IncludeInSettlement: true},
	{Code: "KL", Description: "Chapter 11 bankruptcy withdrawn", IncludeInSettlement: false},
	{Code: "KM", Description: "Chapter 12 bankruptcy withdrawn", IncludeInSettlement: false},
	{Code: "KN", Description: "Chapter 13 bankruptcy withdrawn", IncludeInSettlement: true},
	{Code: "KO", Description: "Bankrupcty \u2013 undesignated chapter", IncludeInSettlement: false},
	{Code: "KP", Description: "Account closed due to inactivity", IncludeInSettlement: false},
	{Code: "KQ", Description: "Credit line no longer available - in repayment phase", IncludeInSettlement: true},
	{Code: "KR", Description: "Credit line reduced due to collateral depreciation", IncludeInSettlement: false},
	{Code: "KS", Description: "Credit line suspended due to collateral depreciation", IncludeInSettlement: false},
	{Code: "KT", Description: "Collateral released by creditor/balance owing", IncludeInSettlement: true},
	{Code: "KU", Description: "Loan modified under a federal government plan", IncludeInSettlement: false},
	{Code: "KV", Description: "Loan modified", IncludeInSettlement: false},
	{Code: "KW", Description: "Account in forbearance", IncludeInSettlement: false},
	{Code: "KZ", Description: "Account paid in full; was a voluntary surrender", IncludeInSettlement: false},
	{Code: "LB", Description: "Homeowners association (hoa)", IncludeInSettlement: false},
}
