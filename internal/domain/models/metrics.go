package models

type Ratios struct {
	Date                       string   `json:"date"`
	Symbol                     string   `json:"symbol,omitempty"`
	Period                     string   `json:"period,omitempty"`
	CurrentRatio               *float64 `json:"currentRatio"`
	QuickRatio                 *float64 `json:"quickRatio"`
	CashRatio                  *float64 `json:"cashRatio"`
	GrossProfitMargin          *float64 `json:"grossProfitMargin"`
	OperatingProfitMargin      *float64 `json:"operatingProfitMargin"`
	NetProfitMargin            *float64 `json:"netProfitMargin"`
	ReturnOnAssets             *float64 `json:"returnOnAssets"`
	ReturnOnEquity             *float64 `json:"returnOnEquity"`
	ReturnOnCapitalEmployed    *float64 `json:"returnOnCapitalEmployed"`
	DebtRatio                  *float64 `json:"debtRatio"`
	DebtEquityRatio            *float64 `json:"debtEquityRatio"`
	InterestCoverage           *float64 `json:"interestCoverage"`
	PayoutRatio                *float64 `json:"payoutRatio"`
	PriceToBookRatio           *float64 `json:"priceToBookRatio"`
	PriceToSalesRatio          *float64 `json:"priceToSalesRatio"`
	PriceEarningsRatio         *float64 `json:"priceEarningsRatio"`
	PriceEarningsToGrowthRatio *float64 `json:"priceEarningsToGrowthRatio"`
	DividendYield              *float64 `json:"dividendYield"`
	EnterpriseValueMultiple    *float64 `json:"enterpriseValueMultiple"`
	PriceFairValue             *float64 `json:"priceFairValue"`
}

func (r Ratios) PeriodDate() string { return r.Date }

type RatiosTTM struct {
	CurrentRatioTTM            *float64 `json:"currentRatioTTM"`
	QuickRatioTTM              *float64 `json:"quickRatioTTM"`
	GrossProfitMarginTTM       *float64 `json:"grossProfitMarginTTM"`
	OperatingProfitMarginTTM   *float64 `json:"operatingProfitMarginTTM"`
	NetProfitMarginTTM         *float64 `json:"netProfitMarginTTM"`
	ReturnOnAssetsTTM          *float64 `json:"returnOnAssetsTTM"`
	ReturnOnEquityTTM          *float64 `json:"returnOnEquityTTM"`
	ReturnOnCapitalEmployedTTM *float64 `json:"returnOnCapitalEmployedTTM"`
	DebtRatioTTM               *float64 `json:"debtRatioTTM"`
	DebtEquityRatioTTM         *float64 `json:"debtEquityRatioTTM"`
	PayoutRatioTTM             *float64 `json:"payoutRatioTTM"`
	PriceToBookRatioTTM        *float64 `json:"priceToBookRatioTTM"`
	PriceEarningsRatioTTM      *float64 `json:"priceEarningsRatioTTM"`
	DividendYieldTTM           *float64 `json:"dividendYieldTTM"`
	PeRatioTTM                 *float64 `json:"peRatioTTM"`
	PegRatioTTM                *float64 `json:"pegRatioTTM"`
	EnterpriseValueMultipleTTM *float64 `json:"enterpriseValueMultipleTTM"`
}

func (RatiosTTM) PeriodDate() string { return "" }

type KeyMetrics struct {
	Date                      string   `json:"date"`
	Symbol                    string   `json:"symbol,omitempty"`
	Period                    string   `json:"period,omitempty"`
	RevenuePerShare           *float64 `json:"revenuePerShare"`
	NetIncomePerShare         *float64 `json:"netIncomePerShare"`
	OperatingCashFlowPerShare *float64 `json:"operatingCashFlowPerShare"`
	FreeCashFlowPerShare      *float64 `json:"freeCashFlowPerShare"`
	BookValuePerShare         *float64 `json:"bookValuePerShare"`
	MarketCap                 *float64 `json:"marketCap"`
	EnterpriseValue           *float64 `json:"enterpriseValue"`
	PeRatio                   *float64 `json:"peRatio"`
	PriceToSalesRatio         *float64 `json:"priceToSalesRatio"`
	PbRatio                   *float64 `json:"pbRatio"`
	EarningsYield             *float64 `json:"earningsYield"`
	FreeCashFlowYield         *float64 `json:"freeCashFlowYield"`
	DebtToEquity              *float64 `json:"debtToEquity"`
	DebtToAssets              *float64 `json:"debtToAssets"`
	CurrentRatio              *float64 `json:"currentRatio"`
	InterestCoverage          *float64 `json:"interestCoverage"`
	DividendYield             *float64 `json:"dividendYield"`
	PayoutRatio               *float64 `json:"payoutRatio"`
	GrahamNumber              *float64 `json:"grahamNumber"`
	ROIC                      *float64 `json:"roic"`
	ROE                       *float64 `json:"roe"`
	CapexPerShare             *float64 `json:"capexPerShare"`
}

func (m KeyMetrics) PeriodDate() string { return m.Date }

type KeyMetricsTTM struct {
	RevenuePerShareTTM   *float64 `json:"revenuePerShareTTM"`
	NetIncomePerShareTTM *float64 `json:"netIncomePerShareTTM"`
	BookValuePerShareTTM *float64 `json:"bookValuePerShareTTM"`
	MarketCapTTM         *float64 `json:"marketCapTTM"`
	EnterpriseValueTTM   *float64 `json:"enterpriseValueTTM"`
	PeRatioTTM           *float64 `json:"peRatioTTM"`
	PbRatioTTM           *float64 `json:"pbRatioTTM"`
	EarningsYieldTTM     *float64 `json:"earningsYieldTTM"`
	FreeCashFlowYieldTTM *float64 `json:"freeCashFlowYieldTTM"`
	DebtToEquityTTM      *float64 `json:"debtToEquityTTM"`
	CurrentRatioTTM      *float64 `json:"currentRatioTTM"`
	DividendYieldTTM     *float64 `json:"dividendYieldTTM"`
	GrahamNumberTTM      *float64 `json:"grahamNumberTTM"`
	RoicTTM              *float64 `json:"roicTTM"`
	RoeTTM               *float64 `json:"roeTTM"`
}

func (KeyMetricsTTM) PeriodDate() string { return "" }

type Profile struct {
	Symbol            string   `json:"symbol"`
	Price             *float64 `json:"price"`
	Beta              *float64 `json:"beta"`
	VolAvg            *float64 `json:"volAvg"`
	MktCap            *float64 `json:"mktCap"`
	LastDiv           *float64 `json:"lastDiv"`
	Range             string   `json:"range,omitempty"`
	Changes           *float64 `json:"changes"`
	CompanyName       string   `json:"companyName,omitempty"`
	Currency          string   `json:"currency,omitempty"`
	Cik               string   `json:"cik,omitempty"`
	Isin              string   `json:"isin,omitempty"`
	Cusip             string   `json:"cusip,omitempty"`
	Exchange          string   `json:"exchange,omitempty"`
	ExchangeShortName string   `json:"exchangeShortName,omitempty"`
	Industry          string   `json:"industry,omitempty"`
	Website           string   `json:"website,omitempty"`
	Description       string   `json:"description,omitempty"`
	CEO               string   `json:"ceo,omitempty"`
	Sector            string   `json:"sector,omitempty"`
	Country           string   `json:"country,omitempty"`
	FullTimeEmployees string   `json:"fullTimeEmployees,omitempty"`
	DCFDiff           *float64 `json:"dcfDiff"`
	DCF               *float64 `json:"dcf"`
	Image             string   `json:"image,omitempty"`
	IPODate           string   `json:"ipoDate,omitempty"`
	IsEtf             bool     `json:"isEtf"`
	IsActivelyTrading bool     `json:"isActivelyTrading"`
}

func (Profile) PeriodDate() string { return "" }

// AvailableTraded is one row of the provider's tradable-symbol listing.
type AvailableTraded struct {
	Symbol            string   `json:"symbol"`
	Name              string   `json:"name"`
	Price             *float64 `json:"price"`
	Exchange          string   `json:"exchange"`
	ExchangeShortName string   `json:"exchangeShortName"`
	Type              string   `json:"type"`
}

func (AvailableTraded) PeriodDate() string { return "" }
