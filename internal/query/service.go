package query

import (
	"fmt"
	"strings"

	"github.com/zedpay/ussd-analytics/internal/models"
)

// Service is a dashboard service-filter token. Like Range, the vocabulary
// is closed and unknown tokens degrade to ServiceAll.
type Service string

const (
	ServiceAll         Service = "all"
	ServiceElectricity Service = "electricity"
	ServiceBanking     Service = "banking"
	ServiceMobileMoney Service = "mobileMoney"
	ServiceWater       Service = "water"
	ServiceAirtime     Service = "airtime"
)

// ParseService resolves a raw token, falling back to ServiceAll.
func ParseService(raw string) Service {
	switch strings.TrimSpace(raw) {
	case string(ServiceElectricity):
		return ServiceElectricity
	case string(ServiceBanking):
		return ServiceBanking
	case string(ServiceMobileMoney):
		return ServiceMobileMoney
	case string(ServiceWater):
		return ServiceWater
	case string(ServiceAirtime):
		return ServiceAirtime
	default:
		return ServiceAll
	}
}

// PredicateKind tags the variants of a category predicate.
type PredicateKind int

const (
	PredicateNone PredicateKind = iota
	PredicateEquals
	PredicateIn
)

// Predicate is a tagged category filter evaluated by the query layer.
// Building it as a value avoids conditional mutation of a shared filter.
type Predicate struct {
	Kind  PredicateKind
	Types []string
}

// Predicate maps the service token to its transaction-type filter.
func (s Service) Predicate() Predicate {
	switch s {
	case ServiceElectricity:
		return Predicate{Kind: PredicateEquals, Types: []string{models.TypeElectricityToken}}
	case ServiceWater:
		return Predicate{Kind: PredicateEquals, Types: []string{models.TypeWaterBillPayment}}
	case ServiceAirtime:
		return Predicate{Kind: PredicateEquals, Types: []string{models.TypeAirtimePurchase}}
	case ServiceMobileMoney:
		return Predicate{Kind: PredicateIn, Types: []string{models.TypeMoneyTransfer, models.TypeBillPayment}}
	case ServiceBanking:
		return Predicate{Kind: PredicateIn, Types: []string{models.TypeBalanceCheck, models.TypeAccountRegistration}}
	default:
		return Predicate{Kind: PredicateNone}
	}
}

// Clause renders the predicate as an AND-able SQL fragment with
// positional placeholders starting at firstArg. PredicateNone renders to
// the empty string.
func (p Predicate) Clause(column string, firstArg int) (string, []interface{}) {
	switch p.Kind {
	case PredicateEquals:
		return fmt.Sprintf("AND %s = $%d", column, firstArg), []interface{}{p.Types[0]}
	case PredicateIn:
		placeholders := make([]string, len(p.Types))
		args := make([]interface{}, len(p.Types))
		for i, t := range p.Types {
			placeholders[i] = fmt.Sprintf("$%d", firstArg+i)
			args[i] = t
		}
		return fmt.Sprintf("AND %s IN (%s)", column, strings.Join(placeholders, ", ")), args
	default:
		return "", nil
	}
}
