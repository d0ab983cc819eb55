package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one row of ussd_transactions. Rows are written by the
// USSD gateway ingestion job; this service only reads them.
type Transaction struct {
	TransactionID  string              `db:"transaction_id" json:"transactionId"`
	SessionID      sql.NullString      `db:"session_id" json:"sessionId"`
	UssdString     string              `db:"ussd_string" json:"ussdString"`
	MenuLevel      sql.NullInt32       `db:"menu_level" json:"menuLevel"`
	SelectedOption sql.NullString      `db:"selected_option" json:"selectedOption"`
	InputValue     sql.NullString      `db:"input_value" json:"inputValue"`
	Type           sql.NullString      `db:"transaction_type" json:"transactionType"`
	Amount         decimal.NullDecimal `db:"transaction_amount" json:"transactionAmount"`
	Currency       sql.NullString      `db:"currency" json:"currency"`
	Status         sql.NullString      `db:"transaction_status" json:"transactionStatus"`
	FailureReason  sql.NullString      `db:"failure_reason" json:"failureReason"`
	Timestamp      sql.NullTime        `db:"transaction_timestamp" json:"transactionTimestamp"`
}

// Transaction type values as stored in ussd_transactions.transaction_type.
const (
	TypeElectricityToken    = "electricity_token"
	TypeWaterBillPayment    = "water_bill_payment"
	TypeAirtimePurchase     = "airtime_purchase"
	TypeMoneyTransfer       = "money_transfer"
	TypeBillPayment         = "bill_payment"
	TypeBalanceCheck        = "balance_check"
	TypeAccountRegistration = "account_registration"
)

// Transaction status values.
const (
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusTimeout   = "timeout"
	StatusCancelled = "cancelled"
)

// Session is one row of ussd_sessions.
type Session struct {
	SessionID       string         `db:"session_id" json:"sessionId"`
	MSISDN          string         `db:"msisdn" json:"msisdn"`
	NetworkProvider sql.NullString `db:"network_provider" json:"networkProvider"`
	Province        sql.NullString `db:"province" json:"province"`
	District        sql.NullString `db:"district" json:"district"`
	ServiceCode     string         `db:"service_code" json:"serviceCode"`
	SessionStart    time.Time      `db:"session_start" json:"sessionStart"`
	SessionEnd      sql.NullTime   `db:"session_end" json:"sessionEnd"`
	DurationSeconds sql.NullInt32  `db:"session_duration" json:"sessionDuration"`
	Status          sql.NullString `db:"session_status" json:"sessionStatus"`
}
