package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupBy is the dimension advanced statistics are aggregated on
type GroupBy string

const (
	GroupBySport   GroupBy = "sport"
	GroupByBetType GroupBy = "bet_type"
)

// Valid reports whether g is a supported grouping
func (g GroupBy) Valid() bool {
	return g == GroupBySport || g == GroupByBetType
}

// BaseStats is the row returned by get_user_base_stats
type BaseStats struct {
	TotalProfitLoss decimal.Decimal `gorm:"column:total_profit_loss" json:"total_profit_loss"`
	ROI             decimal.Decimal `gorm:"column:roi" json:"roi"`
	TotalBets       int64           `gorm:"column:total_bets" json:"total_bets"`
	WonBets         int64           `gorm:"column:won_bets" json:"won_bets"`
	LostBets        int64           `gorm:"column:lost_bets" json:"lost_bets"`
	WinRate         decimal.Decimal `gorm:"column:win_rate" json:"win_rate"`
	AvgOddsPlayed   decimal.Decimal `gorm:"column:avg_odds_played" json:"avg_odds_played"`
	AvgOddsWon      decimal.Decimal `gorm:"column:avg_odds_won" json:"avg_odds_won"`
	AvgStake        decimal.Decimal `gorm:"column:avg_stake" json:"avg_stake"`
	OpenBets        int64           `gorm:"column:open_bets" json:"open_bets"`
	VoidBets        int64           `gorm:"column:void_bets" json:"void_bets"`
	TotalTurnover   decimal.Decimal `gorm:"column:total_turnover" json:"total_turnover"`
}

// GroupedStats is one row of get_user_advanced_stats
type GroupedStats struct {
	GroupingKey     string          `gorm:"column:grouping_key" json:"grouping_key"`
	TotalProfitLoss decimal.Decimal `gorm:"column:total_profit_loss" json:"total_profit_loss"`
	ROI             decimal.Decimal `gorm:"column:roi" json:"roi"`
	TotalBets       int64           `gorm:"column:total_bets" json:"total_bets"`
	WonBets         int64           `gorm:"column:won_bets" json:"won_bets"`
	LostBets        int64           `gorm:"column:lost_bets" json:"lost_bets"`
	WinRate         decimal.Decimal `gorm:"column:win_rate" json:"win_rate"`
	AvgOddsPlayed   decimal.Decimal `gorm:"column:avg_odds_played" json:"avg_odds_played"`
	AvgOddsWon      decimal.Decimal `gorm:"column:avg_odds_won" json:"avg_odds_won"`
	TotalTurnover   decimal.Decimal `gorm:"column:total_turnover" json:"total_turnover"`
}

// ProfitLossPoint is one day of get_profit_loss_over_time
type ProfitLossPoint struct {
	BetDate              time.Time       `gorm:"column:bet_date" json:"bet_date"`
	DailyProfitLoss      decimal.Decimal `gorm:"column:daily_profit_loss" json:"daily_profit_loss"`
	CumulativeProfitLoss decimal.Decimal `gorm:"column:cumulative_profit_loss" json:"cumulative_profit_loss"`
}
