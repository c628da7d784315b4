package models

// ListingStatus is a forward-moving label, no transition graph is enforced.
type ListingStatus string

const (
	ListingStatusDraft       ListingStatus = "draft"
	ListingStatusPublished   ListingStatus = "published"
	ListingStatusUnderReview ListingStatus = "under_review"
	ListingStatusSold        ListingStatus = "sold"
)

type DocumentType string

const (
	DocumentTypePitchDeck          DocumentType = "pitch_deck"
	DocumentTypeFinancialStatement DocumentType = "financial_statement"
	DocumentTypeBusinessPlan       DocumentType = "business_plan"
	DocumentTypeMarketAnalysis     DocumentType = "market_analysis"
	DocumentTypeOther              DocumentType = "other"
)

func IsValidDocumentType(t DocumentType) bool {
	switch t {
	case DocumentTypePitchDeck, DocumentTypeFinancialStatement,
		DocumentTypeBusinessPlan, DocumentTypeMarketAnalysis, DocumentTypeOther:
		return true
	}
	return false
}

type AccessRequestStatus string

const (
	AccessRequestStatusPending  AccessRequestStatus = "pending"
	AccessRequestStatusApproved AccessRequestStatus = "approved"
	AccessRequestStatusRejected AccessRequestStatus = "rejected"
)
