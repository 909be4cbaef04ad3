package loader

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewanmcn/wintermeds/internal/common"
)

const extractHeader = "PaidDateMonth,HBT,HBT2014,GPPractice,BNFItemDescription,PaidQuantity\n"

func TestExtractReader_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a plain row", func(t *testing.T) {
		input := extractHeader +
			"201912,S08000031,,10002,AMOXICILLIN CAPS 500MG,100\n"

		records, err := NewExtractReader("").Read(ctx, "pitc201912.csv", strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)

		rec := records[0]
		assert.Equal(t, 2019, rec.PaidDate.Year)
		assert.Equal(t, time.December, rec.PaidDate.Month)
		assert.Equal(t, "S08000031", rec.HBCode)
		assert.Equal(t, "AMOXICILLIN CAPS 500MG", rec.ItemDescription)
		require.NotNil(t, rec.PaidQuantity)
		assert.Equal(t, int64(100), *rec.PaidQuantity)
	})

	t.Run("coalesces the legacy board code column", func(t *testing.T) {
		input := extractHeader +
			"201601,,S08000015,10002,AMOXICILLIN CAPS 250MG,40\n"

		records, err := NewExtractReader("").Read(ctx, "pitc201601.csv", strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "S08000015", records[0].HBCode, "legacy column wins when the new one is blank")
	})

	t.Run("prefers the new board code when both are set", func(t *testing.T) {
		input := extractHeader +
			"201912,S08000031,S08000015,10002,AMOXICILLIN CAPS 250MG,40\n"

		records, err := NewExtractReader("").Read(ctx, "pitc201912.csv", strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, "S08000031", records[0].HBCode)
	})

	t.Run("keeps records with neither code", func(t *testing.T) {
		input := extractHeader +
			"201912,,,10002,AMOXICILLIN CAPS 250MG,40\n"

		records, err := NewExtractReader("").Read(ctx, "pitc201912.csv", strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Empty(t, records[0].HBCode)
	})

	t.Run("blank quantity is missing data, not an error", func(t *testing.T) {
		input := extractHeader +
			"201912,S08000031,,10002,AMOXICILLIN CAPS 500MG,\n"

		records, err := NewExtractReader("").Read(ctx, "pitc201912.csv", strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].PaidQuantity)
	})

	t.Run("filters by medication case-insensitively", func(t *testing.T) {
		input := extractHeader +
			"201912,S08000031,,10002,AMOXICILLIN CAPS 500MG,100\n" +
			"201912,S08000031,,10002,PARACETAMOL TABS 500MG,250\n"

		records, err := NewExtractReader("amoxicillin").Read(ctx, "pitc201912.csv", strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Contains(t, records[0].ItemDescription, "AMOXICILLIN")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		records, err := NewExtractReader("").Read(ctx, "pitc.csv", strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("header-only input yields empty output", func(t *testing.T) {
		records, err := NewExtractReader("").Read(ctx, "pitc.csv", strings.NewReader(extractHeader))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("malformed date names the row", func(t *testing.T) {
		input := extractHeader +
			"201912,S08000031,,10002,AMOXICILLIN CAPS 500MG,100\n" +
			"2019XX,S08000031,,10002,AMOXICILLIN CAPS 500MG,100\n"

		_, err := NewExtractReader("").Read(ctx, "pitc201912.csv", strings.NewReader(input))
		require.Error(t, err)

		var rowErr *common.RowError
		require.ErrorAs(t, err, &rowErr)
		assert.Equal(t, "pitc201912.csv", rowErr.File)
		assert.Equal(t, 3, rowErr.Row)
		assert.Equal(t, "paid_date_month", rowErr.Field)
		assert.True(t, common.IsStructural(err))
	})

	t.Run("malformed quantity names the row", func(t *testing.T) {
		input := extractHeader +
			"201912,S08000031,,10002,AMOXICILLIN CAPS 500MG,ten\n"

		_, err := NewExtractReader("").Read(ctx, "pitc201912.csv", strings.NewReader(input))
		var rowErr *common.RowError
		require.ErrorAs(t, err, &rowErr)
		assert.Equal(t, "paid_quantity", rowErr.Field)
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		input := extractHeader +
			"201912,S08000031,,10002,AMOXICILLIN CAPS 500MG,-5\n"

		_, err := NewExtractReader("").Read(ctx, "pitc.csv", strings.NewReader(input))
		var rowErr *common.RowError
		require.ErrorAs(t, err, &rowErr)
	})

	t.Run("missing required column fails fast", func(t *testing.T) {
		input := "PaidDateMonth,HBT,BNFItemDescription\n201912,S08000031,AMOXICILLIN\n"

		_, err := NewExtractReader("").Read(ctx, "pitc.csv", strings.NewReader(input))
		var schemaErr *common.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "pitc.csv", schemaErr.File)
		assert.Equal(t, "paid_quantity", schemaErr.Column)
	})

	t.Run("needs at least one board code column", func(t *testing.T) {
		input := "PaidDateMonth,BNFItemDescription,PaidQuantity\n"

		_, err := NewExtractReader("").Read(ctx, "pitc.csv", strings.NewReader(input))
		var schemaErr *common.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "hbt", schemaErr.Column)
	})

	t.Run("accepts either board code column alone", func(t *testing.T) {
		input := "PaidDateMonth,HBT2014,BNFItemDescription,PaidQuantity\n" +
			"201601,S08000015,AMOXICILLIN CAPS 250MG,12\n"

		records, err := NewExtractReader("").Read(ctx, "pitc201601.csv", strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "S08000015", records[0].HBCode)
	})
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		want    *int64
		name    string
		in      string
		wantErr bool
	}{
		{name: "plain", in: "42", want: ptr(int64(42))},
		{name: "thousands separator", in: "1,250", want: ptr(int64(1250))},
		{name: "blank is nil", in: "", want: nil},
		{name: "NA is nil", in: "NA", want: nil},
		{name: "words fail", in: "ten", wantErr: true},
		{name: "negative fails", in: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseQuantity(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ptr[T any](v T) *T { return &v }
