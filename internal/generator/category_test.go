package generator

import "testing"

func TestCategorize(t *testing.T) {
	cases := []struct {
		description string
		want        string
	}{
		{"ATM Withdrawal", "Cash"},
		{"Deposit", "Income"},
		{"Direct Deposit", "Income"},
		{"Interest Payment", "Interest"},
		{"Transfer Out", "Transfer"},
		{"Transfer In", "Transfer"},
		{"Bill Payment", "Bill Payment"},
		{"Check", "Miscellaneous"},
		{"Refund", "Miscellaneous"},
		{"Debit Card Purchase - Amazon", "Shopping"},
		{"Debit Card Purchase - Walmart", "Shopping"},
		{"Debit Card Purchase - Target", "Shopping"},
		{"Debit Card Purchase - Starbucks", "Dining"},
		{"Debit Card Purchase - Restaurant", "Dining"},
		{"Debit Card Purchase - Netflix", "Entertainment"},
		{"Debit Card Purchase - Uber", "Transportation"},
		{"Debit Card Purchase - Gas Station", "Auto & Transport"},
		{"Debit Card Purchase - Grocery Store", "Groceries"},
		{"Foo Bar Baz", "Miscellaneous"},
		{"atm withdrawal", "Cash"},
		{"DIRECT DEPOSIT", "Income"},
	}

	for _, tc := range cases {
		if got := Categorize(tc.description); got != tc.want {
			t.Errorf("Categorize(%q) = %q, want %q", tc.description, got, tc.want)
		}
	}
}
