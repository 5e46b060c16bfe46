package sellerboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = "\ufeff" + `Date,Marketplace,ASIN,SKU,Name,SalesOrganic,SalesPPC,SalesSponsoredProducts,Ads spend,Value of returned items,NetProfit
13/10/2025, Amazon.de ,B0TEST1,SKU-1,"Brush, soft",100,50,9999,-12.5,"4.20",30

14/10/2025,Amazon.de,B0TEST1,SKU-1,"Brush, soft", 80 ,0,0,-5,0,10
,Amazon.de,B0TEST2,SKU-2,Short row
15/10/2025,Amazon.fr,B0TEST3
`

func TestParseCSV(t *testing.T) {
	res, err := ParseCSV(strings.NewReader(sampleReport))
	require.NoError(t, err)
	assert.Empty(t, res.MissingColumns)
	assert.Equal(t, 1, res.SkippedRows)
	require.Len(t, res.Records, 3)

	r := res.Records[0]
	assert.Equal(t, "2025-10-13", r.Date)
	assert.Equal(t, "Amazon.de", r.Marketplace)
	assert.Equal(t, "Brush, soft", r.Name)
	assert.True(t, dec("100").Equal(r.SalesOrganic))
	assert.True(t, dec("9999").Equal(r.SalesSponsoredProducts))
	assert.True(t, dec("4.2").Equal(r.ValueOfReturnedItems))

	assert.True(t, dec("80").Equal(res.Records[1].SalesOrganic))

	r = res.Records[2]
	assert.Equal(t, "2025-10-15", r.Date)
	assert.Equal(t, "B0TEST3", r.ASIN)
	assert.True(t, r.SalesOrganic.IsZero())
}

func TestParseCSVEmpty(t *testing.T) {
	res, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Equal(t, []string{"date", "marketplace", "asin"}, res.MissingColumns)
}

func TestParseCSVHeaderOnly(t *testing.T) {
	res, err := ParseCSV(strings.NewReader("Date,Marketplace,ASIN\n"))
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.Empty(t, res.MissingColumns)
	assert.Zero(t, res.SkippedRows)
}
