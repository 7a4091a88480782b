package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tbarrett/bankfixtures/internal/domain"
)

// Balance ranges in cents, keyed by account type. Drawing whole cents keeps
// every amount exact at two decimal places.
const (
	checkingMinCents = 500_00
	checkingMaxCents = 10_000_00
	savingsMinCents  = 1_000_00
	savingsMaxCents  = 50_000_00
	otherMinCents    = 100_00
	otherMaxCents    = 5_000_00
)

var (
	debitDescriptions  = []string{"ATM Withdrawal", "Debit Card Purchase", "Bill Payment", "Transfer Out", "Check"}
	creditDescriptions = []string{"Deposit", "Direct Deposit", "Interest Payment", "Transfer In", "Refund"}
	merchants          = []string{"Amazon", "Walmart", "Target", "Starbucks", "Netflix", "Uber", "Gas Station", "Restaurant", "Grocery Store"}
	payeeCategories    = []string{"Utilities", "Housing", "Insurance", "Subscriptions", "Other"}
)

const (
	totpSecretPrefix = "BASE32SECRET"
	base32Alphabet   = "234567ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	passwordLength   = 12
	passwordUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordLower    = "abcdefghijklmnopqrstuvwxyz"
	passwordDigits   = "0123456789"
	passwordSpecials = "!@#$%^&*()-_=+"
)

// Generator produces internally consistent banking fixtures from a single
// seeded randomness source.
type Generator struct {
	cfg   Config
	rand  *rand.Rand
	frags fragments
	now   func() time.Time
}

// New returns a configured Generator. Non-positive volume values fall back to
// the defaults; a zero seed derives one from the clock.
func New(cfg Config) *Generator {
	if cfg.Users <= 0 {
		cfg.Users = DefaultConfig().Users
	}
	if cfg.AccountsPerUser <= 0 {
		cfg.AccountsPerUser = DefaultConfig().AccountsPerUser
	}
	if cfg.TransactionsPerAccount <= 0 {
		cfg.TransactionsPerAccount = DefaultConfig().TransactionsPerAccount
	}
	if cfg.Payees <= 0 {
		cfg.Payees = DefaultConfig().Payees
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(cfg.Seed)),
		frags: defaultFragments(),
		now:   time.Now,
	}
}

// Identity generates one synthetic customer. with2FA controls second-factor
// enrollment and the presence of the TOTP secret.
func (g *Generator) Identity(with2FA bool) domain.Identity {
	first := g.pick(g.frags.first)
	last := g.pick(g.frags.last)

	identity := domain.Identity{
		Username:    fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last), 1+g.rand.Intn(999)),
		Password:    g.randomPassword(),
		Email:       fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), g.pick(g.frags.domains)),
		FirstName:   first,
		LastName:    last,
		Address:     g.randomAddress("United States"),
		Phone:       g.randomPhone(),
		DateOfBirth: g.randomBirthDate(18, 80),
		SSNLast4:    fmt.Sprintf("%d", 1000+g.rand.Intn(9000)),
		Has2FA:      with2FA,
	}
	if with2FA {
		identity.TOTPSecret = totpSecretPrefix + g.randomString(base32Alphabet, 10)
	}
	return identity
}

// Account generates one account of the given type. A nil balance draws from
// the type-specific range; savings accounts additionally get an interest
// rate, every other type serializes the rate as null.
func (g *Generator) Account(accountType string, balance *decimal.Decimal) domain.Account {
	if balance == nil {
		var amount decimal.Decimal
		switch strings.ToLower(accountType) {
		case domain.AccountChecking:
			amount = g.centsBetween(checkingMinCents, checkingMaxCents)
		case domain.AccountSavings:
			amount = g.centsBetween(savingsMinCents, savingsMaxCents)
		default:
			amount = g.centsBetween(otherMinCents, otherMaxCents)
		}
		balance = &amount
	}

	account := domain.Account{
		AccountID:   fmt.Sprintf("%s-%010d", strings.ToUpper(accountType), g.rand.Int63n(1e10)),
		AccountType: accountType,
		Balance:     *balance,
		Currency:    "USD",
		OpenDate:    g.dateDaysAgo(30, 730),
		Status:      domain.AccountStatusActive,
	}
	if strings.ToLower(accountType) == domain.AccountSavings {
		rate := g.centsBetween(1, 250) // 0.01 .. 2.50
		account.InterestRate = &rate
	}
	return account
}

// TransactionOpts override the randomized parts of a generated transaction.
// Nil fields keep the random draw.
type TransactionOpts struct {
	IsDebit *bool
	Amount  *decimal.Decimal
	DaysAgo *int
}

// Transaction generates one ledger entry against the given account. The
// description is drawn from the debit or credit phrase list, card purchases
// get a merchant suffix, and the category follows from the final description.
func (g *Generator) Transaction(accountID string, opts TransactionOpts) domain.Transaction {
	isDebit := g.rand.Intn(2) == 0
	if opts.IsDebit != nil {
		isDebit = *opts.IsDebit
	}

	amount := g.centsBetween(1_00, 1_000_00)
	if opts.Amount != nil {
		amount = *opts.Amount
	}

	daysAgo := g.rand.Intn(91)
	if opts.DaysAgo != nil {
		daysAgo = *opts.DaysAgo
	}

	descriptions := creditDescriptions
	if isDebit {
		descriptions = debitDescriptions
	}
	description := g.pick(descriptions)
	if description == "Debit Card Purchase" {
		description += " - " + g.pick(merchants)
	}

	return domain.Transaction{
		TransactionID: fmt.Sprintf("TX-%012d", g.rand.Int63n(1e12)),
		AccountID:     accountID,
		Date:          domain.NewDate(g.now().AddDate(0, 0, -daysAgo)),
		Amount:        amount,
		IsDebit:       isDebit,
		Description:   description,
		Category:      Categorize(description),
		BalanceAfter:  nil,
		Status:        domain.TransactionStatusCleared,
	}
}

// Payee generates one bill-payment recipient. The legal name is reused
// verbatim as the nickname.
func (g *Generator) Payee() domain.Payee {
	name := fmt.Sprintf("%s %s", g.pick(g.frags.companyNames), g.pick(g.frags.companyKinds))

	return domain.Payee{
		PayeeID:           fmt.Sprintf("PAYEE-%08d", g.rand.Int63n(1e8)),
		Name:              name,
		Nickname:          name,
		AccountNumber:     g.randomDigits(10),
		RoutingNumber:     g.randomDigits(9),
		Address:           g.randomAddress(""),
		Phone:             g.randomPhone(),
		Category:          g.pick(payeeCategories),
		LastPaymentDate:   g.dateDaysAgo(1, 30),
		LastPaymentAmount: g.centsBetween(10_00, 500_00),
	}
}

// centsBetween draws a uniform amount in [min, max] whole cents and returns
// it as an exact two-decimal value.
func (g *Generator) centsBetween(min, max int64) decimal.Decimal {
	return decimal.New(min+g.rand.Int63n(max-min+1), -2)
}

// dateDaysAgo draws a uniform offset in [min, max] days back from now.
func (g *Generator) dateDaysAgo(min, max int) domain.Date {
	return domain.NewDate(g.now().AddDate(0, 0, -(min + g.rand.Intn(max-min+1))))
}

// randomBirthDate draws whole years first so leap days can never push an age
// below minAge.
func (g *Generator) randomBirthDate(minAge, maxAge int) domain.Date {
	years := minAge + g.rand.Intn(maxAge-minAge+1)
	return domain.NewDate(g.now().AddDate(-years, 0, -g.rand.Intn(365)))
}

func (g *Generator) randomAddress(country string) domain.Address {
	return domain.Address{
		Street:  fmt.Sprintf("%d %s %s", 1+g.rand.Intn(9999), g.pick(g.frags.streetNames), g.pick(g.frags.streetSuffix)),
		City:    g.pick(g.frags.cities),
		State:   g.pick(g.frags.states),
		Zipcode: fmt.Sprintf("%05d", g.rand.Intn(100000)),
		Country: country,
	}
}

func (g *Generator) randomPhone() string {
	return fmt.Sprintf("+1%03d%03d%04d", 100+g.rand.Intn(900), 100+g.rand.Intn(900), g.rand.Intn(10000))
}

// randomPassword builds a password satisfying the complexity policy: length
// 12 with at least one uppercase, lowercase, digit and special character.
func (g *Generator) randomPassword() string {
	all := passwordUpper + passwordLower + passwordDigits + passwordSpecials

	chars := make([]byte, 0, passwordLength)
	for _, class := range []string{passwordUpper, passwordLower, passwordDigits, passwordSpecials} {
		chars = append(chars, class[g.rand.Intn(len(class))])
	}
	for len(chars) < passwordLength {
		chars = append(chars, all[g.rand.Intn(len(all))])
	}
	g.rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})
	return string(chars)
}

func (g *Generator) randomString(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[g.rand.Intn(len(alphabet))])
	}
	return b.String()
}

func (g *Generator) randomDigits(n int) string {
	return g.randomString("0123456789", n)
}

func (g *Generator) pick(values []string) string {
	return values[g.rand.Intn(len(values))]
}
