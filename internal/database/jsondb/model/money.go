package model

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money 金額，以最小單位（分）儲存，避免浮點累積誤差。
// JSON 表示為兩位小數的十進位數字，例如 80000.00。
type Money int64

// MoneyFromUnits 以元為單位建構
func MoneyFromUnits(units int64) Money {
	return Money(units * 100)
}

func (m Money) String() string {
	n := int64(m)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s%d.%02d", sign, n/100, n%100)
}

// MulRate 乘上比率（如稅率 0.05），比率化為萬分率後整數運算，逢五進位
func (m Money) MulRate(rate float64) Money {
	bp := int64(math.Round(rate * 10000))
	n := int64(m)
	neg := n < 0
	if neg {
		n = -n
	}
	out := (n*bp + 5000) / 10000
	if neg {
		out = -out
	}
	return Money(out)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(raw []byte) error {
	s := string(bytes.Trim(raw, `"`))
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMoney 解析十進位金額字串，最多兩位小數
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	// 超過兩位小數僅接受尾端補零（JSON 浮點可能輸出 80000.000）
	if len(fracPart) > 2 {
		if strings.Trim(fracPart[2:], "0") != "" {
			return 0, fmt.Errorf("amount %q has more than two decimal places", s)
		}
		fracPart = fracPart[:2]
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}
	cents, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Money(total), nil
}
