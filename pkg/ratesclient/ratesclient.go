package ratesclient

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"reward_wallet_back/pkg/cache"
)

const (
	rateAPI  = "https://open.er-api.com/v6/latest/USD"
	cacheKey = "usd_bdt"

	// DefaultUSDToBDT backs every display conversion when the rate API is
	// unreachable. 1 USD = 110 BDT.
	DefaultUSDToBDT = 110
)

type ratesResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		http: resty.New().SetTimeout(5 * time.Second),
	}
}

// USDToBDT returns the current display rate, preferring the ten-minute
// cache, then the rate API, then the fixed default. The returned value only
// ever feeds display fields, never balance arithmetic.
func (c *Client) USDToBDT() decimal.Decimal {
	if rate, ok := cache.GetCachedRate(cacheKey); ok {
		return decimal.NewFromFloat(rate)
	}

	resp, err := c.http.R().
		SetHeader("Accept", "application/json").
		SetResult(&ratesResponse{}).
		Get(rateAPI)
	if err != nil || resp.IsError() {
		logrus.Errorf("rate API request failed: %v", err)
		return decimal.NewFromInt(DefaultUSDToBDT)
	}

	rate := resp.Result().(*ratesResponse).Rates["BDT"]
	if rate == 0 {
		logrus.Error("rate API returned no BDT rate")
		return decimal.NewFromInt(DefaultUSDToBDT)
	}

	cache.SetCachedRate(cacheKey, rate)
	return decimal.NewFromFloat(rate)
}
