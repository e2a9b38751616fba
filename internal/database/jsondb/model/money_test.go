package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr bool
	}{
		{"80000", Money(8000000), false},
		{"80000.0", Money(8000000), false},
		{"80000.00", Money(8000000), false},
		{"80000.000", Money(8000000), false},
		{"0.05", Money(5), false},
		{"1234.56", Money(123456), false},
		{"-10.50", Money(-1050), false},
		{".99", Money(99), false},
		{"12.345", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Salary Money `json:"salary"`
	}

	out, err := json.Marshal(wrapper{Salary: MoneyFromUnits(80000)})
	require.NoError(t, err)
	assert.Equal(t, `{"salary":80000.00}`, string(out))

	var in wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"salary":80000.0}`), &in))
	assert.Equal(t, MoneyFromUnits(80000), in.Salary)

	// 字串形式也接受
	require.NoError(t, json.Unmarshal([]byte(`{"salary":"69600.00"}`), &in))
	assert.Equal(t, Money(6960000), in.Salary)
}

func TestMoney_MulRate(t *testing.T) {
	gross := MoneyFromUnits(80000)

	assert.Equal(t, MoneyFromUnits(4000), gross.MulRate(0.05))
	assert.Equal(t, MoneyFromUnits(6400), gross.MulRate(0.08))

	// 四捨五入到分
	assert.Equal(t, Money(33), Money(1000).MulRate(0.0333))
}
