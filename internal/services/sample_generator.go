package services

import (
	"math/rand"
	"time"

	"church-treasury/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// entryTemplate is one kind of ledger line the generator can produce
type entryTemplate struct {
	Description string
	Category    string
	Kind        string
}

type sampleDataGenerator struct {
	entryPool []entryTemplate
	rng       *rand.Rand
	faker     *gofakeit.Faker
}

const (
	utilitiesBillDay    = 10
	salaryPaymentDay    = 25
	chequeClearedRatio  = 0.6
	maxClearingDelay    = 20
	fundReplenishAmount = 500
)

// NewSampleDataGenerator creates a generator of realistic church ledger data
func NewSampleDataGenerator() SampleDataGeneratorInterface {
	seed := time.Now().UnixNano()
	return &sampleDataGenerator{
		entryPool: initializeEntryPool(),
		rng:       rand.New(rand.NewSource(seed)),
		faker:     gofakeit.New(uint64(seed)),
	}
}

func initializeEntryPool() []entryTemplate {
	return []entryTemplate{
		// Inflows
		{"Dízimos do culto de domingo", models.CategoryTithes, models.EntryKindInflow},
		{"Dízimos do culto de quarta-feira", models.CategoryTithes, models.EntryKindInflow},
		{"Oferta do culto de domingo", models.CategoryOfferings, models.EntryKindInflow},
		{"Oferta especial de missões", models.CategoryOfferings, models.EntryKindInflow},
		{"Oferta da escola dominical", models.CategoryOfferings, models.EntryKindInflow},
		{"Doação anónima", models.CategoryDonations, models.EntryKindInflow},
		{"Doação para obras do templo", models.CategoryDonations, models.EntryKindInflow},
		{"Venda de bilhetes do jantar", models.CategoryEvents, models.EntryKindInflow},
		{"Inscrições do retiro de jovens", models.CategoryEvents, models.EntryKindInflow},

		// Outflows
		{"Factura da electricidade", models.CategoryUtilities, models.EntryKindOutflow},
		{"Factura da água", models.CategoryUtilities, models.EntryKindOutflow},
		{"Reparação do telhado", models.CategoryMaintenance, models.EntryKindOutflow},
		{"Pintura do salão", models.CategoryMaintenance, models.EntryKindOutflow},
		{"Limpeza do templo", models.CategoryMaintenance, models.EntryKindOutflow},
		{"Apoio ao missionário", models.CategoryMissions, models.EntryKindOutflow},
		{"Envio de literatura", models.CategoryMissions, models.EntryKindOutflow},
		{"Subsídio do pastor", models.CategorySalaries, models.EntryKindOutflow},
		{"Material de escritório", models.CategorySupplies, models.EntryKindOutflow},
		{"Material da escola dominical", models.CategorySupplies, models.EntryKindOutflow},
		{"Cesta básica para famílias", models.CategorySocial, models.EntryKindOutflow},
		{"Apoio a membro hospitalizado", models.CategorySocial, models.EntryKindOutflow},
	}
}

// GenerateAmount generates a realistic amount based on category
func (g *sampleDataGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := g.getAmountRange(category)
	amount := minValue + g.rng.Float64()*(maxValue-minValue)
	return decimal.NewFromFloat(amount).Round(2)
}

func (g *sampleDataGenerator) getAmountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryTithes:      {300.00, 2500.00},
		models.CategoryOfferings:   {50.00, 600.00},
		models.CategoryDonations:   {100.00, 3000.00},
		models.CategoryEvents:      {80.00, 900.00},
		models.CategoryUtilities:   {40.00, 250.00},
		models.CategoryMaintenance: {60.00, 1500.00},
		models.CategoryMissions:    {100.00, 800.00},
		models.CategorySalaries:    {800.00, 1500.00},
		models.CategorySupplies:    {10.00, 150.00},
		models.CategorySocial:      {30.00, 300.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateTimestamp generates a random calendar day within the date range
func (g *sampleDataGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	diff := endDate.Sub(startDate)
	if diff <= 0 {
		return models.CalendarDay(startDate)
	}
	return models.CalendarDay(startDate.Add(time.Duration(g.rng.Int63n(int64(diff)))))
}

func (g *sampleDataGenerator) responsible() string {
	return g.faker.FirstName() + " " + g.faker.LastName()
}

// GenerateTransactions generates count random ledger entries between the two dates
func (g *sampleDataGenerator) GenerateTransactions(startDate, endDate time.Time, count int) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		template := g.entryPool[g.rng.Intn(len(g.entryPool))]
		notes := ""
		if g.rng.Float64() < 0.2 {
			notes = g.faker.Sentence(6)
		}

		transactions = append(transactions, models.NewTransaction(
			g.GenerateTimestamp(startDate, endDate),
			template.Kind,
			g.GenerateAmount(template.Category),
			template.Description,
			template.Category,
			g.responsible(),
			notes,
		))
	}

	return transactions
}

// GenerateMonthlyTithes generates the tithes and offerings of every Sunday service
func (g *sampleDataGenerator) GenerateMonthlyTithes(startDate, endDate time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0)
	treasurer := g.responsible()

	day := models.CalendarDay(startDate)
	for day.Weekday() != time.Sunday {
		day = day.AddDate(0, 0, 1)
	}

	for ; !day.After(endDate); day = day.AddDate(0, 0, 7) {
		transactions = append(transactions,
			models.NewTransaction(day, models.EntryKindInflow, g.GenerateAmount(models.CategoryTithes),
				"Dízimos do culto de domingo", models.CategoryTithes, treasurer, ""),
			models.NewTransaction(day, models.EntryKindInflow, g.GenerateAmount(models.CategoryOfferings),
				"Oferta do culto de domingo", models.CategoryOfferings, treasurer, ""),
		)
	}

	return transactions
}

// GenerateMonthlyBills generates the utilities bill and the pastor's allowance of every month
func (g *sampleDataGenerator) GenerateMonthlyBills(startDate, endDate time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0)
	treasurer := g.responsible()
	allowance := g.GenerateAmount(models.CategorySalaries)

	month := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for ; !month.After(endDate); month = month.AddDate(0, 1, 0) {
		billDay := month.AddDate(0, 0, utilitiesBillDay-1)
		if !billDay.Before(models.CalendarDay(startDate)) && !billDay.After(endDate) {
			transactions = append(transactions, models.NewTransaction(billDay, models.EntryKindOutflow,
				g.GenerateAmount(models.CategoryUtilities), "Factura da electricidade e água",
				models.CategoryUtilities, treasurer, ""))
		}

		payDay := month.AddDate(0, 0, salaryPaymentDay-1)
		if !payDay.Before(models.CalendarDay(startDate)) && !payDay.After(endDate) {
			transactions = append(transactions, models.NewTransaction(payDay, models.EntryKindOutflow,
				allowance, "Subsídio do pastor", models.CategorySalaries, treasurer, ""))
		}
	}

	return transactions
}

// GenerateCheques generates issued cheques; most of them already cleared
func (g *sampleDataGenerator) GenerateCheques(startDate, endDate time.Time, count int) []models.Cheque {
	cheques := make([]models.Cheque, 0, count)
	used := make(map[string]bool, count)

	for i := 0; i < count; i++ {
		number := g.faker.Numerify("######")
		for used[number] {
			number = g.faker.Numerify("######")
		}
		used[number] = true

		issueDate := g.GenerateTimestamp(startDate, endDate)
		cheque := models.NewCheque(
			number,
			decimal.NewFromFloat(g.faker.Price(50, 2000)).Round(2),
			g.faker.Company(),
			issueDate,
		)

		if g.rng.Float64() < chequeClearedRatio {
			clearedAt := issueDate.AddDate(0, 0, 1+g.rng.Intn(maxClearingDelay))
			if cleared, err := cheque.Clear(clearedAt); err == nil {
				cheque = cleared
			}
		}

		cheques = append(cheques, cheque)
	}

	return cheques
}

// GenerateFundMovements generates a replenishment of the petty-cash fund followed by small expenses
func (g *sampleDataGenerator) GenerateFundMovements(startDate, endDate time.Time, count int) []models.FundMovement {
	if count <= 0 {
		return []models.FundMovement{}
	}

	movements := make([]models.FundMovement, 0, count)
	movements = append(movements, models.NewFundMovement(
		models.CalendarDay(startDate),
		models.EntryKindInflow,
		decimal.NewFromInt(fundReplenishAmount),
		"Reforço do fundo de maneio",
	))

	expenses := []string{
		"Transporte",
		"Produtos de limpeza",
		"Lanche da reunião",
		"Fotocópias",
		"Lâmpadas",
		"Correios",
	}

	for i := 1; i < count; i++ {
		movements = append(movements, models.NewFundMovement(
			g.GenerateTimestamp(startDate, endDate),
			models.EntryKindOutflow,
			g.GenerateAmount(models.CategorySupplies),
			expenses[g.rng.Intn(len(expenses))],
		))
	}

	return movements
}
