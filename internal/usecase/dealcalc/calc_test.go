package dealcalc

import (
	"errors"
	"math"
	"testing"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestAnalyzeSellerFinance_StandardAmortization(t *testing.T) {
	// 100k at 6% over 30 years: the textbook 599.55/mo.
	res, err := AnalyzeSellerFinance(SellerFinanceInput{
		PurchasePrice: 120_000,
		DownPayment:   20_000,
		AnnualRatePct: 6,
		TermYears:     30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.LoanAmount != 100_000 {
		t.Errorf("expected loan 100000, got %.2f", res.LoanAmount)
	}
	if !almostEqual(res.MonthlyPayment, 599.55, 0.01) {
		t.Errorf("expected payment ~599.55, got %.4f", res.MonthlyPayment)
	}
	if !almostEqual(res.TotalPaid, res.MonthlyPayment*360, 0.01) {
		t.Errorf("total paid inconsistent: %.2f", res.TotalPaid)
	}
	if !almostEqual(res.TotalInterest, res.TotalPaid-res.LoanAmount, 0.01) {
		t.Errorf("total interest inconsistent: %.2f", res.TotalInterest)
	}
	if res.BalloonBalance != 0 {
		t.Errorf("expected no balloon, got %.2f", res.BalloonBalance)
	}
}

func TestAnalyzeSellerFinance_ZeroInterest(t *testing.T) {
	res, err := AnalyzeSellerFinance(SellerFinanceInput{
		PurchasePrice: 120_000,
		DownPayment:   0,
		AnnualRatePct: 0,
		TermYears:     10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.MonthlyPayment, 1000, 0.001) {
		t.Errorf("expected straight-line 1000/mo, got %.4f", res.MonthlyPayment)
	}
	if !almostEqual(res.TotalInterest, 0, 0.001) {
		t.Errorf("expected zero interest, got %.4f", res.TotalInterest)
	}
}

func TestAnalyzeSellerFinance_Balloon(t *testing.T) {
	res, err := AnalyzeSellerFinance(SellerFinanceInput{
		PurchasePrice: 100_000,
		DownPayment:   0,
		AnnualRatePct: 6,
		TermYears:     30,
		BalloonYears:  5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Outstanding principal after 60 of 360 payments.
	if !almostEqual(res.BalloonBalance, 93_054, 5) {
		t.Errorf("expected balloon ~93054, got %.2f", res.BalloonBalance)
	}
	wantPaid := res.MonthlyPayment*60 + res.BalloonBalance
	if !almostEqual(res.TotalPaid, wantPaid, 0.01) {
		t.Errorf("total paid inconsistent with balloon: %.2f vs %.2f", res.TotalPaid, wantPaid)
	}
}

func TestAnalyzeSellerFinance_Validation(t *testing.T) {
	cases := []SellerFinanceInput{
		{PurchasePrice: 0, TermYears: 30},
		{PurchasePrice: 100_000, DownPayment: -1, TermYears: 30},
		{PurchasePrice: 100_000, DownPayment: 100_000, TermYears: 30},
		{PurchasePrice: 100_000, AnnualRatePct: 101, TermYears: 30},
		{PurchasePrice: 100_000, TermYears: 0},
		{PurchasePrice: 100_000, TermYears: 10, BalloonYears: 11},
	}
	for i, in := range cases {
		if _, err := AnalyzeSellerFinance(in); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("case %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
}

func TestAnalyzeRental(t *testing.T) {
	res, err := AnalyzeRental(RentalInput{
		MonthlyRent:        2000,
		MonthlyTaxes:       200,
		MonthlyInsurance:   100,
		ManagementPct:      10,
		MaintenancePct:     5,
		VacancyPct:         5,
		MonthlyDebtService: 800,
		PurchasePrice:      200_000,
		CashInvested:       50_000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(res.MonthlyExpenses, 700, 0.001) {
		t.Errorf("expected operating 700, got %.2f", res.MonthlyExpenses)
	}
	if !almostEqual(res.MonthlyCashFlow, 500, 0.001) {
		t.Errorf("expected cash flow 500, got %.2f", res.MonthlyCashFlow)
	}
	if !almostEqual(res.AnnualNOI, 15_600, 0.001) {
		t.Errorf("expected NOI 15600, got %.2f", res.AnnualNOI)
	}
	if !almostEqual(res.CapRatePct, 7.8, 0.001) {
		t.Errorf("expected cap rate 7.8, got %.4f", res.CapRatePct)
	}
	if !almostEqual(res.CashOnCashPct, 12, 0.001) {
		t.Errorf("expected cash-on-cash 12, got %.4f", res.CashOnCashPct)
	}
}

func TestAnalyzeRental_OmittedDenominators(t *testing.T) {
	res, err := AnalyzeRental(RentalInput{MonthlyRent: 1500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CapRatePct != 0 || res.CashOnCashPct != 0 {
		t.Errorf("ratios must be omitted without denominators: cap=%.2f coc=%.2f",
			res.CapRatePct, res.CashOnCashPct)
	}
}

func TestAnalyzeRental_Validation(t *testing.T) {
	cases := []RentalInput{
		{MonthlyRent: 0},
		{MonthlyRent: 2000, ManagementPct: 101},
		{MonthlyRent: 2000, VacancyPct: -1},
		{MonthlyRent: 2000, MonthlyTaxes: -10},
	}
	for i, in := range cases {
		if _, err := AnalyzeRental(in); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("case %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
}

func TestAnalyzeSubto(t *testing.T) {
	res, err := AnalyzeSubto(SubtoInput{
		LoanBalance:    150_000,
		MonthlyPayment: 1100,
		Arrears:        4000,
		EntryFee:       3000,
		MarketValue:    200_000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalEntryCost != 7000 {
		t.Errorf("expected entry 7000, got %.2f", res.TotalEntryCost)
	}
	if res.EquityCaptured != 50_000 {
		t.Errorf("expected equity 50000, got %.2f", res.EquityCaptured)
	}
	if res.NetEquity != 43_000 {
		t.Errorf("expected net equity 43000, got %.2f", res.NetEquity)
	}
}

func TestAnalyzeSubto_Validation(t *testing.T) {
	cases := []SubtoInput{
		{LoanBalance: 0, MonthlyPayment: 1100, MarketValue: 200_000},
		{LoanBalance: 150_000, MonthlyPayment: 0, MarketValue: 200_000},
		{LoanBalance: 150_000, MonthlyPayment: 1100, Arrears: -1, MarketValue: 200_000},
		{LoanBalance: 150_000, MonthlyPayment: 1100, MarketValue: 0},
	}
	for i, in := range cases {
		if _, err := AnalyzeSubto(in); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("case %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
}
