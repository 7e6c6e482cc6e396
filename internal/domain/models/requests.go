package models

type StockRequest struct {
	Ticker string `param:"ticker" validate:"required,printascii,max=16"`
}

type ScreenerRequest struct {
	Name string `param:"name" validate:"required,printascii,max=64"`
}
