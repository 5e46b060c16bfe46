package entity

import (
	"github.com/shopspring/decimal"
)

// Record is one row of marketplace performance data after column mapping.
// Date is a civil date in YYYY-MM-DD form. Every measure defaults to zero.
type Record struct {
	Account     string `db:"account"`
	Date        string `db:"date"`
	Marketplace string `db:"marketplace"`
	ASIN        string `db:"asin"`
	SKU         string `db:"sku"`
	Name        string `db:"name"`

	// Sales and units by channel
	SalesOrganic           decimal.Decimal `db:"sales_organic"`
	SalesPPC               decimal.Decimal `db:"sales_ppc"`
	SalesSponsoredProducts decimal.Decimal `db:"sales_sponsored_products"`
	SalesSponsoredDisplay  decimal.Decimal `db:"sales_sponsored_display"`
	UnitsOrganic           decimal.Decimal `db:"units_organic"`
	UnitsPPC               decimal.Decimal `db:"units_ppc"`
	UnitsSponsoredProducts decimal.Decimal `db:"units_sponsored_products"`
	UnitsSponsoredDisplay  decimal.Decimal `db:"units_sponsored_display"`
	Refunds                decimal.Decimal `db:"refunds"`
	PromoValue             decimal.Decimal `db:"promo_value"`
	SponsoredProducts      decimal.Decimal `db:"sponsored_products"`
	SponsoredDisplay       decimal.Decimal `db:"sponsored_display"`
	SponsoredBrands        decimal.Decimal `db:"sponsored_brands"`
	SponsoredBrandsVideo   decimal.Decimal `db:"sponsored_brands_video"`
	GoogleAds              decimal.Decimal `db:"google_ads"`
	FacebookAds            decimal.Decimal `db:"facebook_ads"`
	GiftWrap               decimal.Decimal `db:"gift_wrap"`
	Shipping               decimal.Decimal `db:"shipping"`

	// Refund breakdown
	RefundCommission                  decimal.Decimal `db:"refund_commission"`
	RefundDigitalServicesFee          decimal.Decimal `db:"refund_digital_services_fee"`
	RefundFBACustomerReturnPerUnitFee decimal.Decimal `db:"refund_fba_customer_return_per_unit_fee"`
	RefundGoodwillPrincipal           decimal.Decimal `db:"refund_goodwill_principal"`
	RefundPrincipal                   decimal.Decimal `db:"refund_principal"`
	RefundPromotion                   decimal.Decimal `db:"refund_promotion"`
	RefundRefundCommission            decimal.Decimal `db:"refund_refund_commission"`
	RefundShippingCharge              decimal.Decimal `db:"refund_shipping_charge"`
	RefundShippingChargeback          decimal.Decimal `db:"refund_shipping_chargeback"`
	RefundShippingTax                 decimal.Decimal `db:"refund_shipping_tax"`
	RefundShippingTaxDiscount         decimal.Decimal `db:"refund_shipping_tax_discount"`
	RefundShipPromotion               decimal.Decimal `db:"refund_ship_promotion"`
	RefundTaxDiscount                 decimal.Decimal `db:"refund_tax_discount"`
	RefundsCostsDamaged               decimal.Decimal `db:"refunds_costs_damaged"`
	ValueOfReturnedItems              decimal.Decimal `db:"value_of_returned_items"`
	ProductCostUnsellableRefunds      decimal.Decimal `db:"product_cost_unsellable_refunds"`

	// Fees, reimbursements and costs
	Commission                    decimal.Decimal `db:"commission"`
	CompensatedClawback           decimal.Decimal `db:"compensated_clawback"`
	DigitalServicesFee            decimal.Decimal `db:"digital_services_fee"`
	FBADisposalFee                decimal.Decimal `db:"fba_disposal_fee"`
	FBAPerUnitFulfillmentFee      decimal.Decimal `db:"fba_per_unit_fulfillment_fee"`
	FBAStorageFee                 decimal.Decimal `db:"fba_storage_fee"`
	MissingFromInbound            decimal.Decimal `db:"missing_from_inbound"`
	MissingFromInboundClawback    decimal.Decimal `db:"missing_from_inbound_clawback"`
	ReversalReimbursement         decimal.Decimal `db:"reversal_reimbursement"`
	EstimatedPayout               decimal.Decimal `db:"estimated_payout"`
	ProductCostSales              decimal.Decimal `db:"product_cost_sales"`
	ProductCostNonAmazon          decimal.Decimal `db:"product_cost_non_amazon"`
	ProductCostMultichannelCosts  decimal.Decimal `db:"product_cost_multichannel_costs"`
	ProductCostMissingFromInbound decimal.Decimal `db:"product_cost_missing_from_inbound"`
	ProductCostOfMissingReturns   decimal.Decimal `db:"product_cost_cost_of_missing_returns"`
	VAT                           decimal.Decimal `db:"vat"`

	// Provider-derived figures
	GrossProfit            decimal.Decimal `db:"gross_profit"`
	NetProfit              decimal.Decimal `db:"net_profit"`
	Margin                 decimal.Decimal `db:"margin"`
	RealACOS               decimal.Decimal `db:"real_acos"`
	Sessions               decimal.Decimal `db:"sessions"`
	UnitSessionPercentage  decimal.Decimal `db:"unit_session_percentage"`
	AdsSpend               decimal.Decimal `db:"ads_spend"`
	SellableReturnsPercent decimal.Decimal `db:"sellable_returns_percent"`
	ROI                    decimal.Decimal `db:"roi"`
}

// NaturalKey is the (date, marketplace, asin) tuple an import batch must not repeat.
func (r *Record) NaturalKey() string {
	return r.Date + "|" + r.Marketplace + "|" + r.ASIN
}

// DuplicateKey is one record whose natural key occurs more than once in a batch.
type DuplicateKey struct {
	Date        string `json:"date"`
	Marketplace string `json:"marketplace"`
	ASIN        string `json:"asin"`
	Index       int    `json:"index"`
}

// DateRange is an inclusive range of civil dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
