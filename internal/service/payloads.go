package service

import (
	"time"

	"github.com/zedpay/ussd-analytics/internal/dashboard"
	"github.com/zedpay/ussd-analytics/internal/models"
)

// TransactionRecord is the single-transaction payload. Nullable columns
// surface as absent fields rather than SQL null wrappers.
type TransactionRecord struct {
	TransactionID  string     `json:"transactionId"`
	SessionID      *string    `json:"sessionId,omitempty"`
	UssdString     string     `json:"ussdString"`
	MenuLevel      *int32     `json:"menuLevel,omitempty"`
	SelectedOption *string    `json:"selectedOption,omitempty"`
	InputValue     *string    `json:"inputValue,omitempty"`
	Type           *string    `json:"transactionType,omitempty"`
	Amount         *float64   `json:"transactionAmount,omitempty"`
	Currency       *string    `json:"currency,omitempty"`
	Status         *string    `json:"transactionStatus,omitempty"`
	FailureReason  *string    `json:"failureReason,omitempty"`
	Timestamp      *time.Time `json:"transactionTimestamp,omitempty"`
}

func newTransactionRecord(t *models.Transaction) *TransactionRecord {
	record := &TransactionRecord{
		TransactionID: t.TransactionID,
		UssdString:    t.UssdString,
	}
	if t.SessionID.Valid {
		record.SessionID = &t.SessionID.String
	}
	if t.MenuLevel.Valid {
		record.MenuLevel = &t.MenuLevel.Int32
	}
	if t.SelectedOption.Valid {
		record.SelectedOption = &t.SelectedOption.String
	}
	if t.InputValue.Valid {
		record.InputValue = &t.InputValue.String
	}
	if t.Type.Valid {
		record.Type = &t.Type.String
	}
	if t.Amount.Valid {
		amount := t.Amount.Decimal.InexactFloat64()
		record.Amount = &amount
	}
	if t.Currency.Valid {
		record.Currency = &t.Currency.String
	}
	if t.Status.Valid {
		record.Status = &t.Status.String
	}
	if t.FailureReason.Valid {
		record.FailureReason = &t.FailureReason.String
	}
	if t.Timestamp.Valid {
		record.Timestamp = &t.Timestamp.Time
	}
	return record
}

// VolumePoint is one bucket of the volume time series.
type VolumePoint struct {
	Time                string  `json:"time"`
	Total               int64   `json:"total"`
	Electricity         int64   `json:"electricity"`
	Water               int64   `json:"water"`
	Airtime             int64   `json:"airtime"`
	MobileMoney         int64   `json:"mobileMoney"`
	Banking             int64   `json:"banking"`
	AvgSessionTime      float64 `json:"avgSessionTime"`
	SuccessRate         float64 `json:"successRate"`
	Revenue             float64 `json:"revenue"`
	FailedTransactions  int64   `json:"failedTransactions"`
	PeakConcurrentUsers int64   `json:"peakConcurrentUsers"`
}

// GaugeMetrics is the KPI block of the success-rate payload.
type GaugeMetrics struct {
	SuccessRate     float64 `json:"successRate"`
	SuccessfulTxns  int64   `json:"successfulTxns"`
	FailedTxns      int64   `json:"failedTxns"`
	AvgResponseTime float64 `json:"avgResponseTime"`
	ActiveSessions  int64   `json:"activeSessions"`
	TopProvince     string  `json:"topProvince"`
	Trend           float64 `json:"trend"`
	PeakHour        string  `json:"peakHour"`
}

// GaugeStats is the success-rate endpoint payload.
type GaugeStats struct {
	Metrics  GaugeMetrics             `json:"metrics"`
	Networks []dashboard.NetworkShare `json:"networks"`
}

// RevenuePoint is one calendar day of the revenue trend.
type RevenuePoint struct {
	Date        string  `json:"date"`
	Electricity float64 `json:"electricity"`
	Water       float64 `json:"water"`
	Airtime     float64 `json:"airtime"`
	MobileMoney float64 `json:"mobileMoney"`
	Total       float64 `json:"total"`
}

// NetworkUsers is one entry of the network distribution.
type NetworkUsers struct {
	Network string `json:"network"`
	Users   int64  `json:"users"`
}

// Demographics is the user demographics payload. Age, gender,
// urban/rural and device figures are fixed-split projections over the
// real unique-user total.
type Demographics struct {
	TotalUsers     int64                     `json:"totalUsers"`
	ProvinceData   []dashboard.ProvinceUsers `json:"provinceData"`
	NetworkData    []NetworkUsers            `json:"networkData"`
	AgeGroups      []dashboard.SplitBand     `json:"ageGroups"`
	GenderData     []dashboard.SplitBand     `json:"genderData"`
	UrbanRuralData []dashboard.SplitBand     `json:"urbanRuralData"`
	DeviceData     []dashboard.SplitBand     `json:"deviceData"`
}
