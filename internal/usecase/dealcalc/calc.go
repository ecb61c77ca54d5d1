// Package dealcalc implements the deal-analysis arithmetic behind the
// calculator tools: seller financing, rental cash flow, and subject-to
// entry analysis. Everything here is pure computation over validated
// inputs; no I/O, no external pricing sources.
package dealcalc

import (
	"fmt"
	"math"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
)

// SellerFinanceInput describes a seller-financed purchase.
type SellerFinanceInput struct {
	PurchasePrice float64
	DownPayment   float64
	AnnualRatePct float64 // nominal annual interest, percent
	TermYears     int
	BalloonYears  int // 0 = fully amortizing, no balloon
}

// SellerFinanceResult is the amortization outcome.
type SellerFinanceResult struct {
	LoanAmount     float64
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
	BalloonBalance float64 // remaining principal at the balloon, 0 if none
}

// AnalyzeSellerFinance computes the monthly payment by standard
// amortization; a zero rate divides the principal evenly.
func AnalyzeSellerFinance(in SellerFinanceInput) (SellerFinanceResult, error) {
	if in.PurchasePrice <= 0 {
		return SellerFinanceResult{}, fmt.Errorf("%w: purchase price must be positive", domain.ErrInvalidArgument)
	}
	if in.DownPayment < 0 || in.DownPayment >= in.PurchasePrice {
		return SellerFinanceResult{}, fmt.Errorf(
			"%w: down payment must be between 0 and the purchase price", domain.ErrInvalidArgument)
	}
	if in.AnnualRatePct < 0 || in.AnnualRatePct > 100 {
		return SellerFinanceResult{}, fmt.Errorf("%w: rate must be between 0 and 100", domain.ErrInvalidArgument)
	}
	if in.TermYears <= 0 {
		return SellerFinanceResult{}, fmt.Errorf("%w: term must be at least one year", domain.ErrInvalidArgument)
	}
	if in.BalloonYears < 0 || in.BalloonYears > in.TermYears {
		return SellerFinanceResult{}, fmt.Errorf(
			"%w: balloon must fall within the loan term", domain.ErrInvalidArgument)
	}

	loan := in.PurchasePrice - in.DownPayment
	months := in.TermYears * 12
	rate := in.AnnualRatePct / 100 / 12

	var payment float64
	if rate == 0 {
		payment = loan / float64(months)
	} else {
		payment = loan * rate / (1 - math.Pow(1+rate, -float64(months)))
	}

	res := SellerFinanceResult{
		LoanAmount:     loan,
		MonthlyPayment: payment,
	}

	if in.BalloonYears > 0 && in.BalloonYears < in.TermYears {
		res.BalloonBalance = remainingBalance(loan, rate, payment, in.BalloonYears*12)
		res.TotalPaid = payment*float64(in.BalloonYears*12) + res.BalloonBalance
	} else {
		res.TotalPaid = payment * float64(months)
	}
	res.TotalInterest = res.TotalPaid - loan

	return res, nil
}

// remainingBalance is the outstanding principal after k payments.
func remainingBalance(loan, rate, payment float64, k int) float64 {
	if rate == 0 {
		return loan - payment*float64(k)
	}
	growth := math.Pow(1+rate, float64(k))
	return loan*growth - payment*(growth-1)/rate
}

// RentalInput describes a rental property's monthly economics.
type RentalInput struct {
	MonthlyRent        float64
	MonthlyTaxes       float64
	MonthlyInsurance   float64
	ManagementPct      float64 // of rent
	MaintenancePct     float64 // of rent
	VacancyPct         float64 // of rent
	MonthlyDebtService float64
	PurchasePrice      float64 // 0 = cap rate omitted
	CashInvested       float64 // 0 = cash-on-cash omitted
}

// RentalResult is the cash-flow outcome. CapRatePct and CashOnCashPct are
// zero when their denominators were not supplied.
type RentalResult struct {
	MonthlyExpenses float64 // operating only, excludes debt service
	MonthlyCashFlow float64
	AnnualCashFlow  float64
	AnnualNOI       float64
	CapRatePct      float64
	CashOnCashPct   float64
}

// AnalyzeRental computes NOI, cash flow, cap rate, and cash-on-cash return.
func AnalyzeRental(in RentalInput) (RentalResult, error) {
	if in.MonthlyRent <= 0 {
		return RentalResult{}, fmt.Errorf("%w: monthly rent must be positive", domain.ErrInvalidArgument)
	}
	for name, pct := range map[string]float64{
		"management_pct":  in.ManagementPct,
		"maintenance_pct": in.MaintenancePct,
		"vacancy_pct":     in.VacancyPct,
	} {
		if pct < 0 || pct > 100 {
			return RentalResult{}, fmt.Errorf("%w: %s must be between 0 and 100", domain.ErrInvalidArgument, name)
		}
	}
	if in.MonthlyTaxes < 0 || in.MonthlyInsurance < 0 || in.MonthlyDebtService < 0 {
		return RentalResult{}, fmt.Errorf("%w: amounts must not be negative", domain.ErrInvalidArgument)
	}

	pctCosts := in.MonthlyRent * (in.ManagementPct + in.MaintenancePct + in.VacancyPct) / 100
	operating := in.MonthlyTaxes + in.MonthlyInsurance + pctCosts

	res := RentalResult{
		MonthlyExpenses: operating,
		MonthlyCashFlow: in.MonthlyRent - operating - in.MonthlyDebtService,
		AnnualNOI:       (in.MonthlyRent - operating) * 12,
	}
	res.AnnualCashFlow = res.MonthlyCashFlow * 12
	if in.PurchasePrice > 0 {
		res.CapRatePct = res.AnnualNOI / in.PurchasePrice * 100
	}
	if in.CashInvested > 0 {
		res.CashOnCashPct = res.AnnualCashFlow / in.CashInvested * 100
	}
	return res, nil
}

// SubtoInput describes a subject-to takeover of an existing loan.
type SubtoInput struct {
	LoanBalance    float64
	MonthlyPayment float64
	Arrears        float64 // back payments to cure
	EntryFee       float64 // assignment/closing costs paid to enter
	MarketValue    float64
}

// SubtoResult is the entry analysis.
type SubtoResult struct {
	TotalEntryCost float64
	EquityCaptured float64 // market value minus loan balance
	NetEquity      float64 // equity captured minus entry cost
	MonthlyPayment float64
}

// AnalyzeSubto computes entry cost and captured equity for a subject-to deal.
func AnalyzeSubto(in SubtoInput) (SubtoResult, error) {
	if in.LoanBalance <= 0 {
		return SubtoResult{}, fmt.Errorf("%w: loan balance must be positive", domain.ErrInvalidArgument)
	}
	if in.MonthlyPayment <= 0 {
		return SubtoResult{}, fmt.Errorf("%w: monthly payment must be positive", domain.ErrInvalidArgument)
	}
	if in.Arrears < 0 || in.EntryFee < 0 {
		return SubtoResult{}, fmt.Errorf("%w: amounts must not be negative", domain.ErrInvalidArgument)
	}
	if in.MarketValue <= 0 {
		return SubtoResult{}, fmt.Errorf("%w: market value must be positive", domain.ErrInvalidArgument)
	}

	entry := in.Arrears + in.EntryFee
	equity := in.MarketValue - in.LoanBalance
	return SubtoResult{
		TotalEntryCost: entry,
		EquityCaptured: equity,
		NetEquity:      equity - entry,
		MonthlyPayment: in.MonthlyPayment,
	}, nil
}
