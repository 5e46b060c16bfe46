package sellerboard

type kind int

const (
	kindString kind = iota
	kindNumber
	kindDate
)

// column maps one canonical field to the report headers that may carry it.
// Headers are tried in order; the first one present in the report wins.
type column struct {
	Key      string
	Headers  []string
	Kind     kind
	Required bool
}

func str(key string, headers ...string) column {
	return column{Key: key, Headers: headers, Kind: kindString}
}

func num(key string, headers ...string) column {
	return column{Key: key, Headers: headers, Kind: kindNumber}
}

// columns is the fixed Sellerboard report layout. Keys are the db tags of
// entity.Record.
var columns = []column{
	{Key: "date", Headers: []string{"Date"}, Kind: kindDate, Required: true},
	{Key: "marketplace", Headers: []string{"Marketplace"}, Kind: kindString, Required: true},
	{Key: "asin", Headers: []string{"ASIN"}, Kind: kindString, Required: true},
	str("sku", "SKU"),
	str("name", "Name"),

	num("sales_organic", "SalesOrganic"),
	num("sales_ppc", "SalesPPC"),
	num("sales_sponsored_products", "SalesSponsoredProducts"),
	num("sales_sponsored_display", "SalesSponsoredDisplay"),
	num("units_organic", "UnitsOrganic"),
	num("units_ppc", "UnitsPPC"),
	num("units_sponsored_products", "UnitsSponsoredProducts"),
	num("units_sponsored_display", "UnitsSponsoredDisplay"),
	num("refunds", "Refunds"),
	num("promo_value", "PromoValue"),
	num("sponsored_products", "SponsoredProducts"),
	num("sponsored_display", "SponsoredDisplay"),
	// Older exports spell the header with a Cyrillic "В".
	num("sponsored_brands", "SponsoredВrands", "SponsoredBrands"),
	num("sponsored_brands_video", "SponsoredBrandsVideo"),
	num("google_ads", "Google ads"),
	num("facebook_ads", "Facebook ads"),
	num("gift_wrap", "GiftWrap"),
	num("shipping", "Shipping"),

	num("refund_commission", "Refund Commission", "RefundCost"),
	num("refund_digital_services_fee", "Refund DigitalServicesFee"),
	num("refund_fba_customer_return_per_unit_fee", "Refund FBACustomerReturnPerUnitFee"),
	num("refund_goodwill_principal", "Refund GoodwillPrincipal"),
	num("refund_principal", "Refund Principal"),
	num("refund_promotion", "Refund Promotion"),
	num("refund_refund_commission", "Refund RefundCommission"),
	num("refund_shipping_charge", "Refund ShippingCharge"),
	num("refund_shipping_chargeback", "Refund ShippingChargeback"),
	num("refund_shipping_tax", "Refund ShippingTax"),
	num("refund_shipping_tax_discount", "Refund ShippingTaxDiscount"),
	num("refund_ship_promotion", "Refund ShipPromotion"),
	num("refund_tax_discount", "Refund TaxDiscount"),
	num("refunds_costs_damaged", "RefundsCostsDamaged"),
	num("value_of_returned_items", "Value of returned items"),
	num("product_cost_unsellable_refunds", "ProductCost Unsellable Refunds"),

	num("commission", "Commission", "AmazonFees"),
	num("compensated_clawback", "COMPENSATED_CLAWBACK"),
	num("digital_services_fee", "DigitalServicesFee"),
	num("fba_disposal_fee", "FBADisposalFee"),
	num("fba_per_unit_fulfillment_fee", "FBAPerUnitFulfillmentFee"),
	num("fba_storage_fee", "FBAStorageFee"),
	num("missing_from_inbound", "MISSING_FROM_INBOUND"),
	num("missing_from_inbound_clawback", "MISSING_FROM_INBOUND_CLAWBACK"),
	num("reversal_reimbursement", "REVERSAL_REIMBURSEMENT"),
	num("estimated_payout", "EstimatedPayout"),
	num("product_cost_sales", "ProductCost Sales", "Cost of Goods"),
	num("product_cost_non_amazon", "ProductCost Non-Amazon"),
	num("product_cost_multichannel_costs", "ProductCost MultichannelCosts"),
	num("product_cost_missing_from_inbound", "ProductCost MissingFromInbound"),
	num("product_cost_cost_of_missing_returns", "ProductCost CostOfMissingReturns"),
	num("vat", "VAT"),

	num("gross_profit", "GrossProfit"),
	num("net_profit", "NetProfit"),
	num("margin", "Margin"),
	num("real_acos", "Real ACOS"),
	num("sessions", "Sessions"),
	num("unit_session_percentage", "Unit Session Percentage"),
	num("ads_spend", "Ads spend"),
	num("sellable_returns_percent", "Sellable Returns %"),
	num("roi", "ROI"),
}
