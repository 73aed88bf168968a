package catalog

import (
	"reflect"
	"testing"
)

func TestCalculateProfit(t *testing.T) {
	tests := []struct {
		name        string
		budget      string
		boxOffice   string
		wantText    string
		wantMissing []string
	}{
		{"millions", "US$ 165 milhões", "US$ 701,8 milhões", "$536.8 milhões", nil},
		{"crosses into billions", "500 milhões", "2,5 bilhões", "$2 bilhões", nil},
		{"exactly one billion", "200 milhões", "1,2 bilhão", "$1 bilhão", nil},
		{"thousands", "100 mil", "350 mil", "$250 mil", nil},
		{"loss", "10 milhões", "5 milhões", "$-5000000", nil},
		{"budget missing", "não divulgado", "1 bilhão", "$1 bilhão", []string{FieldBudget}},
		{"both missing", "?", "?", "$0", []string{FieldBudget, FieldBoxOffice}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateProfit(tt.budget, tt.boxOffice)
			if got.Text != tt.wantText {
				t.Fatalf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Fatalf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
		})
	}
}
