package domain

// CustomerType distinguishes private persons from companies.
type CustomerType string

const (
	CustomerTypeIndividual CustomerType = "INDIVIDUAL"
	CustomerTypeBusiness   CustomerType = "BUSINESS"
)

func (t CustomerType) String() string { return string(t) }

func (t CustomerType) IsValid() bool {
	switch t {
	case CustomerTypeIndividual, CustomerTypeBusiness:
		return true
	}
	return false
}

// PolicyType is the insurance product category.
type PolicyType string

const (
	PolicyTypeAuto   PolicyType = "AUTO"
	PolicyTypeHome   PolicyType = "HOME"
	PolicyTypeLife   PolicyType = "LIFE"
	PolicyTypeHealth PolicyType = "HEALTH"
	PolicyTypeOther  PolicyType = "OTHER"
)

func (t PolicyType) String() string { return string(t) }

func (t PolicyType) IsValid() bool {
	switch t {
	case PolicyTypeAuto, PolicyTypeHome, PolicyTypeLife, PolicyTypeHealth, PolicyTypeOther:
		return true
	}
	return false
}

// PolicyStatus is the lifecycle state of a policy.
type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "ACTIVE"
	PolicyStatusPending   PolicyStatus = "PENDING"
	PolicyStatusExpired   PolicyStatus = "EXPIRED"
	PolicyStatusCancelled PolicyStatus = "CANCELLED"
)

func (s PolicyStatus) String() string { return string(s) }

func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusActive, PolicyStatusPending, PolicyStatusExpired, PolicyStatusCancelled:
		return true
	}
	return false
}

// ClaimStatus is the lifecycle state of a claim.
type ClaimStatus string

const (
	ClaimStatusOpen         ClaimStatus = "OPEN"
	ClaimStatusInProgress   ClaimStatus = "IN_PROGRESS"
	ClaimStatusRequiresInfo ClaimStatus = "REQUIRES_INFO"
	ClaimStatusResolved     ClaimStatus = "RESOLVED"
	ClaimStatusDenied       ClaimStatus = "DENIED"
)

func (s ClaimStatus) String() string { return string(s) }

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusOpen, ClaimStatusInProgress, ClaimStatusRequiresInfo,
		ClaimStatusResolved, ClaimStatusDenied:
		return true
	}
	return false
}

// IsTerminal reports whether the claim has been decided.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusResolved || s == ClaimStatusDenied
}

// DocumentType classifies stored documents.
type DocumentType string

const (
	DocumentTypePolicy         DocumentType = "POLICY"
	DocumentTypeClaim          DocumentType = "CLAIM"
	DocumentTypeIdentification DocumentType = "IDENTIFICATION"
	DocumentTypeContract       DocumentType = "CONTRACT"
	DocumentTypeOther          DocumentType = "OTHER"
)

func (t DocumentType) String() string { return string(t) }

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypePolicy, DocumentTypeClaim, DocumentTypeIdentification,
		DocumentTypeContract, DocumentTypeOther:
		return true
	}
	return false
}

// EntityKind identifies the kind of owned record.
type EntityKind string

const (
	EntityKindCustomer EntityKind = "customer"
	EntityKindPolicy   EntityKind = "policy"
	EntityKindClaim    EntityKind = "claim"
	EntityKindDocument EntityKind = "document"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindCustomer, EntityKindPolicy, EntityKindClaim, EntityKindDocument:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in an audit trail.
type AuditAction string

const (
	AuditActionCreated AuditAction = "CREATED"
	AuditActionUpdated AuditAction = "UPDATED"
	AuditActionDeleted AuditAction = "DELETED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreated, AuditActionUpdated, AuditActionDeleted:
		return true
	}
	return false
}
