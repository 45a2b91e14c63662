package analytics

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/Dan9191/finance-service/internal/models"
)

// Spending styles.
const (
	StyleUndefined     = "Не определён"
	StyleNoSpending    = "Не тратит (или данные только о доходах)"
	StyleImpulsive     = "Импульсивный тратильщик"
	StyleSpontaneous   = "Спонтанный, но осторожный"
	StyleMicroSpender  = "Микротратильщик (много мелочи)"
	StylePlanner       = "Планирующий и ответственный"
	StyleUnderPressure = "Бюджетник под давлением"
	StyleNonStandard   = "Нестандартный профиль"
)

// Risk levels.
const (
	RiskUnknown = "неизвестно"
	RiskHigh    = "высокий"
	RiskMedium  = "средний"
	RiskLow     = "низкий"
)

const (
	recNeedCushion     = "Вы тратите почти весь доход. Создайте финансовую подушку."
	recCategorize      = "Уточните категории расходов — это поможет лучше контролировать бюджет."
	recWeeklyLimit     = "Множество мелких трат тянут бюджет. Попробуйте недельный лимит на мелочи."
	recInvest          = "Вы отлично управляете финансами! Подумайте об инвестициях или целях."
	recKeepGoing       = "Продолжайте в том же духе — вы на правильном пути."
	recAddMoreData     = "Добавьте больше транзакций для анализа."
	maxRecommendations = 4
	topCategoriesLimit = 3
)

// Categories that mark planned, essential spending for the profile.
var plannedCategories = []string{"На квартиру", "Продукты"}

// FinancialProfile classifies the user's spending with a fixed rule list.
// Style and risk take the first rule that applies; recommendations collect
// every rule that applies, in priority order.
func FinancialProfile(transactions []models.Transaction) models.FinancialProfile {
	if len(transactions) == 0 {
		return models.FinancialProfile{
			ProfileSummary:  "Недостаточно данных для построения финансового профиля.",
			SpendingStyle:   StyleUndefined,
			RiskLevel:       RiskUnknown,
			TopCategories:   []string{},
			Recommendations: []string{recAddMoreData},
		}
	}

	var income, expense float64
	var expenses []models.Transaction
	counts := newOrderedSums()
	for _, tx := range transactions {
		switch {
		case tx.CurrencyAmount > 0:
			income += tx.CurrencyAmount
		case tx.CurrencyAmount < 0:
			expense += -tx.CurrencyAmount
			expenses = append(expenses, tx)
			counts.add(categoryOf(tx), 1)
		}
	}

	ratio := math.Inf(1)
	if expense > 0 {
		ratio = round2(income / expense)
	}
	top := topByCount(counts, topCategoriesLimit)

	style := spendingStyle(expenses, income, expense, ratio, top)
	risk := riskLevel(income, expense)
	recs := recommendations(expenses, counts, risk, ratio, expense)

	outRatio := ratio
	if math.IsInf(outRatio, 1) {
		outRatio = 0
	}
	return models.FinancialProfile{
		ProfileSummary:       profileSummary(income, expense, ratio, style, risk),
		SpendingStyle:        style,
		RiskLevel:            risk,
		TopCategories:        top,
		IncomeToExpenseRatio: outRatio,
		Recommendations:      recs,
	}
}

func topByCount(counts *orderedSums, limit int) []string {
	keys := make([]string, len(counts.keys))
	copy(keys, counts.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return counts.cnt[keys[i]] > counts.cnt[keys[j]]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

func countBelow(expenses []models.Transaction, limit float64) int {
	n := 0
	for _, tx := range expenses {
		if math.Abs(tx.CurrencyAmount) < limit {
			n++
		}
	}
	return n
}

func spendingStyle(expenses []models.Transaction, income, expense, ratio float64, top []string) string {
	if len(expenses) == 0 {
		return StyleNoSpending
	}

	hasOther := false
	for _, tx := range expenses {
		if categoryOf(tx) == models.OtherOperations {
			hasOther = true
			break
		}
	}
	if hasOther && len(expenses) > 5 {
		if expense > income*0.9 {
			return StyleImpulsive
		}
		return StyleSpontaneous
	}

	if float64(countBelow(expenses, 500)) > float64(len(expenses))*0.6 {
		return StyleMicroSpender
	}

	for _, c := range plannedCategories {
		if slices.Contains(top, c) {
			if ratio >= 1.3 {
				return StylePlanner
			}
			return StyleUnderPressure
		}
	}
	return StyleNonStandard
}

func riskLevel(income, expense float64) string {
	switch {
	case income == 0:
		return RiskHigh
	case expense > income*0.95:
		return RiskHigh
	case expense > income*0.75:
		return RiskMedium
	default:
		return RiskLow
	}
}

func recommendations(expenses []models.Transaction, counts *orderedSums, risk string, ratio, expense float64) []string {
	var recs []string
	if risk == RiskHigh {
		recs = append(recs, recNeedCushion)
	}
	if float64(counts.cnt[models.OtherOperations]) > float64(len(expenses))*0.4 {
		recs = append(recs, recCategorize)
	}
	if countBelow(expenses, 300) > 5 {
		recs = append(recs, recWeeklyLimit)
	}
	if ratio >= 1.5 && expense > 0 {
		recs = append(recs, recInvest)
	}
	if len(recs) == 0 {
		recs = append(recs, recKeepGoing)
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func profileSummary(income, expense, ratio float64, style, risk string) string {
	switch {
	case income == 0 && expense == 0:
		return "Активность в транзакциях минимальна. Невозможно оценить профиль."
	case income == 0:
		return "Обнаружены только расходы. Источник средств неизвестен — возможен риск долговой нагрузки."
	case expense == 0:
		return "Только поступления средств. Расходы не зафиксированы — возможно, используется другой счёт."
	}

	var ratioDesc string
	switch {
	case ratio >= 1.5:
		ratioDesc = "тратит значительно меньше, чем зарабатывает"
	case ratio <= 1.05:
		ratioDesc = "тратит почти весь доход"
	default:
		ratioDesc = "сохраняет умеренный баланс между доходами и расходами"
	}
	return fmt.Sprintf("Пользователь %s. Стиль трат: %s. Уровень финансового риска: %s.",
		ratioDesc, strings.ToLower(style), risk)
}
