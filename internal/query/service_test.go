package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zedpay/ussd-analytics/internal/models"
)

func TestParseServiceFallsBackToAll(t *testing.T) {
	assert.Equal(t, ServiceElectricity, ParseService("electricity"))
	assert.Equal(t, ServiceMobileMoney, ParseService("mobileMoney"))
	assert.Equal(t, ServiceAll, ParseService("all"))
	assert.Equal(t, ServiceAll, ParseService(""))
	assert.Equal(t, ServiceAll, ParseService("crypto"))
}

func TestPredicateMapping(t *testing.T) {
	cases := []struct {
		service Service
		kind    PredicateKind
		types   []string
	}{
		{ServiceElectricity, PredicateEquals, []string{models.TypeElectricityToken}},
		{ServiceWater, PredicateEquals, []string{models.TypeWaterBillPayment}},
		{ServiceAirtime, PredicateEquals, []string{models.TypeAirtimePurchase}},
		{ServiceMobileMoney, PredicateIn, []string{models.TypeMoneyTransfer, models.TypeBillPayment}},
		{ServiceBanking, PredicateIn, []string{models.TypeBalanceCheck, models.TypeAccountRegistration}},
		{ServiceAll, PredicateNone, nil},
	}
	for _, tc := range cases {
		p := tc.service.Predicate()
		assert.Equal(t, tc.kind, p.Kind, "service=%s", tc.service)
		assert.Equal(t, tc.types, p.Types, "service=%s", tc.service)
	}
}

func TestPredicateClause(t *testing.T) {
	clause, args := Predicate{Kind: PredicateNone}.Clause("t.transaction_type", 3)
	assert.Empty(t, clause)
	assert.Nil(t, args)

	clause, args = ServiceWater.Predicate().Clause("t.transaction_type", 3)
	assert.Equal(t, "AND t.transaction_type = $3", clause)
	assert.Equal(t, []interface{}{models.TypeWaterBillPayment}, args)

	clause, args = ServiceBanking.Predicate().Clause("t.transaction_type", 2)
	assert.Equal(t, "AND t.transaction_type IN ($2, $3)", clause)
	assert.Equal(t, []interface{}{models.TypeBalanceCheck, models.TypeAccountRegistration}, args)
}
