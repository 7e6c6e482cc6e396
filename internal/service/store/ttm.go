package store

import "FinScreen/internal/domain/models"

const quartersPerYear = 4

// SumQuarters folds the four most recent quarterly income statements into a
// trailing-twelve-month statement. Additive fields are summed and become nil
// if any quarter lacks them. Ratios and share counts do not sum and are left
// nil. Returns false when fewer than four quarters are available.
func SumQuarters(quarters []models.IncomeStatement) (models.IncomeStatement, bool) {
	if len(quarters) < quartersPerYear {
		return models.IncomeStatement{}, false
	}
	q := quarters[:quartersPerYear]
	latest := q[0]

	out := models.IncomeStatement{
		Date:             latest.Date,
		Symbol:           latest.Symbol,
		ReportedCurrency: latest.ReportedCurrency,
		Period:           "TTM",
	}

	fields := []func(*models.IncomeStatement) **float64{
		func(s *models.IncomeStatement) **float64 { return &s.Revenue },
		func(s *models.IncomeStatement) **float64 { return &s.CostOfRevenue },
		func(s *models.IncomeStatement) **float64 { return &s.GrossProfit },
		func(s *models.IncomeStatement) **float64 { return &s.ResearchAndDevelopmentExpenses },
		func(s *models.IncomeStatement) **float64 { return &s.GeneralAndAdministrativeExpenses },
		func(s *models.IncomeStatement) **float64 { return &s.SellingAndMarketingExpenses },
		func(s *models.IncomeStatement) **float64 { return &s.SellingGeneralAndAdministrativeExpenses },
		func(s *models.IncomeStatement) **float64 { return &s.OtherExpenses },
		func(s *models.IncomeStatement) **float64 { return &s.OperatingExpenses },
		func(s *models.IncomeStatement) **float64 { return &s.CostAndExpenses },
		func(s *models.IncomeStatement) **float64 { return &s.InterestIncome },
		func(s *models.IncomeStatement) **float64 { return &s.InterestExpense },
		func(s *models.IncomeStatement) **float64 { return &s.DepreciationAndAmortization },
		func(s *models.IncomeStatement) **float64 { return &s.EBITDA },
		func(s *models.IncomeStatement) **float64 { return &s.OperatingIncome },
		func(s *models.IncomeStatement) **float64 { return &s.TotalOtherIncomeExpensesNet },
		func(s *models.IncomeStatement) **float64 { return &s.IncomeBeforeTax },
		func(s *models.IncomeStatement) **float64 { return &s.IncomeTaxExpense },
		func(s *models.IncomeStatement) **float64 { return &s.NetIncome },
		func(s *models.IncomeStatement) **float64 { return &s.EPS },
		func(s *models.IncomeStatement) **float64 { return &s.EPSDiluted },
	}

	for _, field := range fields {
		*field(&out) = sumField(q, field)
	}
	return out, true
}

func sumField(q []models.IncomeStatement, field func(*models.IncomeStatement) **float64) *float64 {
	var total float64
	for i := range q {
		v := *field(&q[i])
		if v == nil {
			return nil
		}
		total += *v
	}
	return &total
}
