package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory/query"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory/scope"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/dealcalc"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/memnote"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/memsearch"
)

// DefaultRegistry wires every tool to its service.
func DefaultRegistry(search *memsearch.Service, notes *memnote.Service) *Registry {
	r := NewRegistry()
	registerSearchMemory(r, search)
	registerSaveMemory(r, notes)
	registerSellerFinance(r)
	registerRentalCashflow(r)
	registerSubto(r)
	registerSellerResponse(r)
	return r
}

// decode unmarshals tool arguments, mapping malformed JSON to a rejected
// request rather than an internal failure.
func decode(args json.RawMessage, v any) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	return nil
}

func registerSearchMemory(r *Registry, svc *memsearch.Service) {
	type args struct {
		SearchTerm string `json:"searchTerm"`
		Category   string `json:"category"`
		Timeframe  string `json:"timeframe"`
	}
	r.Register(Declaration{
		Name: "search_memory",
		Description: "Search saved deal notes and memories across the business and " +
			"legacy collections. Case-insensitive substring match over full note content.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"searchTerm": {"type": "string", "description": "Text to search for"},
				"category": {"type": "string", "enum": ["all", "business", "legacy"], "description": "Which collection to search (default all)"},
				"timeframe": {"type": "string", "description": "Reserved; accepted but not applied"}
			},
			"required": ["searchTerm"]
		}`),
	}, func(ctx context.Context, raw json.RawMessage) (string, error) {
		var a args
		if err := decode(raw, &a); err != nil {
			return "", err
		}
		q, err := query.New(a.SearchTerm, scope.Scope(a.Category), a.Timeframe)
		if err != nil {
			return "", err
		}
		report, err := svc.Search(ctx, &q)
		if err != nil {
			return "", err
		}
		return formatSearchReport(&q, report), nil
	})
}

func registerSaveMemory(r *Registry, svc *memnote.Service) {
	type args struct {
		Topic    string `json:"topic"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	r.Register(Declaration{
		Name:        "save_memory",
		Description: "Save a deal note or insight as a Markdown memory for later search.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"topic": {"type": "string", "description": "Short note title, used for the filename"},
				"content": {"type": "string", "description": "Note body"},
				"category": {"type": "string", "enum": ["business", "legacy"], "description": "Target collection (default business)"}
			},
			"required": ["topic", "content"]
		}`),
	}, func(ctx context.Context, raw json.RawMessage) (string, error) {
		var a args
		if err := decode(raw, &a); err != nil {
			return "", err
		}
		rec, err := svc.Save(ctx, memory.Collection(a.Category), a.Topic, a.Content)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("💾 Memory saved to %s: %s\n%s", rec.Collection(), rec.Name(), rec.Path()), nil
	})
}

func registerSellerFinance(r *Registry) {
	r.Register(Declaration{
		Name:        "seller_finance_calculator",
		Description: "Amortize a seller-financed purchase: monthly payment, total interest, optional balloon.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"purchasePrice": {"type": "number"},
				"downPayment": {"type": "number"},
				"annualRate": {"type": "number", "description": "Nominal annual interest, percent"},
				"termYears": {"type": "integer"},
				"balloonYears": {"type": "integer", "description": "0 for fully amortizing"}
			},
			"required": ["purchasePrice", "downPayment", "annualRate", "termYears"]
		}`),
	}, func(_ context.Context, raw json.RawMessage) (string, error) {
		var a struct {
			PurchasePrice float64 `json:"purchasePrice"`
			DownPayment   float64 `json:"downPayment"`
			AnnualRate    float64 `json:"annualRate"`
			TermYears     int     `json:"termYears"`
			BalloonYears  int     `json:"balloonYears"`
		}
		if err := decode(raw, &a); err != nil {
			return "", err
		}
		res, err := dealcalc.AnalyzeSellerFinance(dealcalc.SellerFinanceInput{
			PurchasePrice: a.PurchasePrice,
			DownPayment:   a.DownPayment,
			AnnualRatePct: a.AnnualRate,
			TermYears:     a.TermYears,
			BalloonYears:  a.BalloonYears,
		})
		if err != nil {
			return "", err
		}
		text := fmt.Sprintf(
			"🏦 Seller Finance Analysis\n\n"+
				"Loan amount: %s\nMonthly payment: %s\nTotal paid: %s\nTotal interest: %s",
			money(res.LoanAmount), money(res.MonthlyPayment), money(res.TotalPaid), money(res.TotalInterest),
		)
		if res.BalloonBalance > 0 {
			text += fmt.Sprintf("\nBalloon balance after %d years: %s", a.BalloonYears, money(res.BalloonBalance))
		}
		return text, nil
	})
}

func registerRentalCashflow(r *Registry) {
	r.Register(Declaration{
		Name:        "rental_cashflow_analyzer",
		Description: "Analyze a rental: NOI, monthly/annual cash flow, cap rate, cash-on-cash return.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"monthlyRent": {"type": "number"},
				"monthlyTaxes": {"type": "number"},
				"monthlyInsurance": {"type": "number"},
				"managementPct": {"type": "number"},
				"maintenancePct": {"type": "number"},
				"vacancyPct": {"type": "number"},
				"monthlyDebtService": {"type": "number"},
				"purchasePrice": {"type": "number"},
				"cashInvested": {"type": "number"}
			},
			"required": ["monthlyRent"]
		}`),
	}, func(_ context.Context, raw json.RawMessage) (string, error) {
		var a struct {
			MonthlyRent        float64 `json:"monthlyRent"`
			MonthlyTaxes       float64 `json:"monthlyTaxes"`
			MonthlyInsurance   float64 `json:"monthlyInsurance"`
			ManagementPct      float64 `json:"managementPct"`
			MaintenancePct     float64 `json:"maintenancePct"`
			VacancyPct         float64 `json:"vacancyPct"`
			MonthlyDebtService float64 `json:"monthlyDebtService"`
			PurchasePrice      float64 `json:"purchasePrice"`
			CashInvested       float64 `json:"cashInvested"`
		}
		if err := decode(raw, &a); err != nil {
			return "", err
		}
		res, err := dealcalc.AnalyzeRental(dealcalc.RentalInput{
			MonthlyRent:        a.MonthlyRent,
			MonthlyTaxes:       a.MonthlyTaxes,
			MonthlyInsurance:   a.MonthlyInsurance,
			ManagementPct:      a.ManagementPct,
			MaintenancePct:     a.MaintenancePct,
			VacancyPct:         a.VacancyPct,
			MonthlyDebtService: a.MonthlyDebtService,
			PurchasePrice:      a.PurchasePrice,
			CashInvested:       a.CashInvested,
		})
		if err != nil {
			return "", err
		}
		text := fmt.Sprintf(
			"🏠 Rental Cash Flow Analysis\n\n"+
				"Operating expenses: %s/mo\nCash flow: %s/mo (%s/yr)\nNOI: %s/yr",
			money(res.MonthlyExpenses), money(res.MonthlyCashFlow), money(res.AnnualCashFlow), money(res.AnnualNOI),
		)
		if res.CapRatePct != 0 {
			text += fmt.Sprintf("\nCap rate: %.2f%%", res.CapRatePct)
		}
		if res.CashOnCashPct != 0 {
			text += fmt.Sprintf("\nCash-on-cash return: %.2f%%", res.CashOnCashPct)
		}
		return text, nil
	})
}

func registerSubto(r *Registry) {
	r.Register(Declaration{
		Name:        "subto_analyzer",
		Description: "Analyze a subject-to takeover: entry cost and equity captured against market value.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"loanBalance": {"type": "number"},
				"monthlyPayment": {"type": "number"},
				"arrears": {"type": "number"},
				"entryFee": {"type": "number"},
				"marketValue": {"type": "number"}
			},
			"required": ["loanBalance", "monthlyPayment", "marketValue"]
		}`),
	}, func(_ context.Context, raw json.RawMessage) (string, error) {
		var a struct {
			LoanBalance    float64 `json:"loanBalance"`
			MonthlyPayment float64 `json:"monthlyPayment"`
			Arrears        float64 `json:"arrears"`
			EntryFee       float64 `json:"entryFee"`
			MarketValue    float64 `json:"marketValue"`
		}
		if err := decode(raw, &a); err != nil {
			return "", err
		}
		res, err := dealcalc.AnalyzeSubto(dealcalc.SubtoInput{
			LoanBalance:    a.LoanBalance,
			MonthlyPayment: a.MonthlyPayment,
			Arrears:        a.Arrears,
			EntryFee:       a.EntryFee,
			MarketValue:    a.MarketValue,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"📋 Subject-To Analysis\n\n"+
				"Total entry cost: %s\nEquity captured: %s\nNet equity after entry: %s\nMonthly payment taken over: %s",
			money(res.TotalEntryCost), money(res.EquityCaptured), money(res.NetEquity), money(res.MonthlyPayment),
		), nil
	})
}

func registerSellerResponse(r *Registry) {
	r.Register(Declaration{
		Name:        "generate_seller_response",
		Description: "Draft a short reply to a seller lead based on their situation.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"leadName": {"type": "string"},
				"situation": {"type": "string", "enum": ["motivated", "price-anchored", "cold"]},
				"propertyAddress": {"type": "string"}
			},
			"required": ["leadName", "situation", "propertyAddress"]
		}`),
	}, func(_ context.Context, raw json.RawMessage) (string, error) {
		var a struct {
			LeadName        string `json:"leadName"`
			Situation       string `json:"situation"`
			PropertyAddress string `json:"propertyAddress"`
		}
		if err := decode(raw, &a); err != nil {
			return "", err
		}
		draft, err := dealcalc.DraftSellerResponse(a.LeadName, dealcalc.Situation(a.Situation), a.PropertyAddress)
		if err != nil {
			return "", err
		}
		return "✉️ Draft reply\n\n" + draft, nil
	})
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
