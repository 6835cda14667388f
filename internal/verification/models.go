// Package verification decides whether a donation account is safe to
// transfer to. It cross-checks the foundation registry and the fraud
// blacklist and resolves a traffic-light verdict.
package verification

// Status is the traffic-light verdict.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// MatchedType names which registry produced the verdict.
type MatchedType string

const (
	MatchedFoundation MatchedType = "FOUNDATION"
	MatchedBlacklist  MatchedType = "BLACKLIST"
	MatchedNone       MatchedType = "NONE"
)

// Fixed verdict messages shown to donors.
const (
	MessageSafe    = "บัญชีนี้เป็นมูลนิธิที่ได้รับการรับรอง ปลอดภัย 100% สามารถบริจาคได้อย่างมั่นใจ"
	MessageWarning = "ไม่พบข้อมูลบัญชีนี้ในระบบ กรุณาตรวจสอบอีกครั้งหรือติดต่อมูลนิธิโดยตรง"
	MessageDanger  = "บัญชีนี้อยู่ในรายชื่อมิจฉาชีพ ห้ามโอนเงิน!"
)

// Fallback display names when a matched record carries no holder name.
const (
	blacklistedAccountName = "บัญชีถูกรายงานว่าเป็นมิจฉาชีพ"
	unknownAccountName     = "ไม่พบข้อมูล"
)

// Input is one verification request after transport decoding.
type Input struct {
	AccountNumber string
	AccountName   string
	Bank          string
}

// Result is the verdict returned to the caller. It is never persisted
// directly; the log worker records its own entry.
type Result struct {
	Status        Status      `json:"status"`
	AccountName   string      `json:"accountName"`
	AccountNumber string      `json:"accountNumber"`
	Bank          string      `json:"bank"`
	Message       string      `json:"message"`
	MatchedType   MatchedType `json:"matchedType"`
}
